package handlers

import (
	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
)

var productTable = models.Product{}.TableName()

type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Image        string  `json:"image"`
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	CuisineID    uint    `json:"cuisineId" binding:"required"`
	OfferID      *uint   `json:"offerId"`
	Specialities string  `json:"specialities"`
	Description  string  `json:"description"`
	IsPopular    bool    `json:"isPopular"`
	IsBengali    bool    `json:"isBengali"`
	IsSpecial    bool    `json:"isSpecial"`
}

type UpdateProductRequest struct {
	ID           uint     `json:"id" binding:"required"`
	Name         *string  `json:"name"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	Image        *string  `json:"image"`
	RestaurantID *uint    `json:"restaurantId"`
	CuisineID    *uint    `json:"cuisineId"`
	OfferID      *uint    `json:"offerId"`
	Specialities *string  `json:"specialities"`
	Description  *string  `json:"description"`
	IsPopular    *bool    `json:"isPopular"`
	IsBengali    *bool    `json:"isBengali"`
	IsSpecial    *bool    `json:"isSpecial"`
}

type productQuery struct {
	ID           *uint `form:"id"`
	RestaurantID *uint `form:"restaurantId"`
	CuisineID    *uint `form:"cuisineId"`
	OfferID      *uint `form:"offerId"`
	IsPopular    *bool `form:"isPopular"`
	IsBengali    *bool `form:"isBengali"`
	IsSpecial    *bool `form:"isSpecial"`
}

// CreateProduct adds a menu item under a restaurant and cuisine.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	create[models.Product](c, h, productTable, []store.Column{
		store.Set("name", req.Name),
		store.Set("price", req.Price),
		store.Set("image", req.Image),
		store.Set("restaurant_id", req.RestaurantID),
		store.Set("cuisine_id", req.CuisineID),
		store.Set("offer_id", store.Opt(req.OfferID)),
		store.Set("specialities", req.Specialities),
		store.Set("description", req.Description),
		store.Set("is_popular", req.IsPopular),
		store.Set("is_bengali", req.IsBengali),
		store.Set("is_special", req.IsSpecial),
	})
}

// GetProducts filters by any combination of owner keys and menu flags.
func (h *Handler) GetProducts(c *gin.Context) {
	var q productQuery
	if err := bindQuery(c, &q); err != nil {
		fail(c, err)
		return
	}
	if q.ID != nil {
		readOne[models.Product](c, h, productTable, *q.ID)
		return
	}
	readMany[models.Product](c, h, productTable, conds(
		eq("restaurant_id", q.RestaurantID),
		eq("cuisine_id", q.CuisineID),
		eq("offer_id", q.OfferID),
		eq("is_popular", q.IsPopular),
		eq("is_bengali", q.IsBengali),
		eq("is_special", q.IsSpecial),
	), "id DESC")
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	update[models.Product](c, h, productTable, req.ID, []store.Column{
		store.Set("name", store.Opt(req.Name)),
		store.Set("price", store.Opt(req.Price)),
		store.Set("image", store.Opt(req.Image)),
		store.Set("restaurant_id", store.Opt(req.RestaurantID)),
		store.Set("cuisine_id", store.Opt(req.CuisineID)),
		store.Set("offer_id", store.Opt(req.OfferID)),
		store.Set("specialities", store.Opt(req.Specialities)),
		store.Set("description", store.Opt(req.Description)),
		store.Set("is_popular", store.Opt(req.IsPopular)),
		store.Set("is_bengali", store.Opt(req.IsBengali)),
		store.Set("is_special", store.Opt(req.IsSpecial)),
	})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	remove[models.Product](c, h, productTable)
}
