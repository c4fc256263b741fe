package routes

import (
	"net/http"

	"food-ordering-api/handlers"
	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the request-independent settings the routes need.
type Options struct {
	CORSOrigins []string
	JWTSecret   []byte
	Registry    *prometheus.Registry
}

// NewEngine builds the gin engine with middleware and every route.
func NewEngine(h *handlers.Handler, opts Options) *gin.Engine {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.CORS(opts.CORSOrigins),
		middleware.NewMetrics(reg).Handler(),
		middleware.Identity(opts.JWTSecret),
	)

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Food Ordering API",
			"health":  "/health",
			"resources": []string{
				"restaurant", "product", "cuisine", "offer",
				"special_offer", "combo_offer", "order", "user",
			},
		})
	})

	SetupRoutes(r, h)
	return r
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")

	restaurant := api.Group("/restaurant")
	{
		restaurant.POST("", h.CreateRestaurant)
		restaurant.GET("", h.GetRestaurants)
		restaurant.PUT("", h.UpdateRestaurant)
		restaurant.DELETE("", h.DeleteRestaurant)
	}

	cuisine := api.Group("/cuisine")
	{
		cuisine.POST("", h.CreateCuisine)
		cuisine.GET("", h.GetCuisines)
		cuisine.PUT("", h.UpdateCuisine)
		cuisine.DELETE("", h.DeleteCuisine)
	}

	product := api.Group("/product")
	{
		product.POST("", h.CreateProduct)
		product.GET("", h.GetProducts)
		product.PUT("", h.UpdateProduct)
		product.DELETE("", h.DeleteProduct)
	}

	offer := api.Group("/offer")
	{
		offer.POST("", h.CreateOffer)
		offer.GET("", h.GetOffers)
		offer.PUT("", h.UpdateOffer)
		offer.DELETE("", h.DeleteOffer)
	}

	special := api.Group("/special_offer")
	{
		special.POST("", h.CreateSpecialOffer)
		special.GET("", h.GetSpecialOffers)
		special.PUT("", h.UpdateSpecialOffer)
		special.DELETE("", h.DeleteSpecialOffer)
	}

	combo := api.Group("/combo_offer")
	{
		combo.POST("", h.CreateComboOffer)
		combo.GET("", h.GetComboOffers)
		combo.PUT("", h.UpdateComboOffer)
		combo.DELETE("", h.DeleteComboOffer)
	}

	// orders are write-once apart from the payment flag; no delete
	order := api.Group("/order")
	{
		order.POST("", h.PlaceOrder)
		order.GET("", h.GetOrders)
		order.PUT("", h.UpdateOrderPayment)
		order.GET("/payment-states", handlers.GetPaymentStates)
	}

	user := api.Group("/user")
	{
		user.POST("", h.CreateUser)
		user.GET("", h.GetUsers)
		user.PUT("", h.UpdateUser)
		user.DELETE("", h.DeleteUser)
		user.GET("/me", middleware.AuthRequired(), h.GetMe)
	}
}
