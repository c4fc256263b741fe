package handlers

import (
	"net/http"
	"time"

	"food-ordering-api/models"
	"food-ordering-api/statemachine"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
)

var orderTable = models.Order{}.TableName()

type PlaceOrderRequest struct {
	ProductName    string   `json:"productName" binding:"required"`
	Number         string   `json:"number"`
	Amount         *float64 `json:"amount" binding:"required,gte=0"`
	Price          *float64 `json:"price" binding:"required,gte=0"`
	Quantity       int      `json:"quantity" binding:"required,min=1"`
	IsPaid         bool     `json:"isPaid"`
	StudentID      string   `json:"studentId"`
	RestaurantName string   `json:"restaurantName"`
	CuisineName    string   `json:"cuisineName"`
	Image          string   `json:"image"`
	UserID         string   `json:"userId" binding:"required"`
}

// UpdateOrderRequest only admits the payment flag; every other order
// column is write-once.
type UpdateOrderRequest struct {
	ID     uint  `json:"id" binding:"required"`
	IsPaid *bool `json:"isPaid" binding:"required"`
}

type orderQuery struct {
	ID             *uint   `form:"id"`
	UserID         *string `form:"userId"`
	RestaurantName *string `form:"restaurantName"`
	IsPaid         *bool   `form:"isPaid"`
}

// PlaceOrder stores an order snapshot with names copied as plain strings.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	create[models.Order](c, h, orderTable, []store.Column{
		store.Set("product_name", req.ProductName),
		store.Set("number", req.Number),
		store.Set("amount", *req.Amount),
		store.Set("price", *req.Price),
		store.Set("quantity", req.Quantity),
		store.Set("is_paid", req.IsPaid),
		store.Set("student_id", req.StudentID),
		store.Set("restaurant_name", req.RestaurantName),
		store.Set("cuisine_name", req.CuisineName),
		store.Set("image", req.Image),
		store.Set("user_id", req.UserID),
		store.Set("created_at", time.Now().UTC()),
	})
}

// GetOrders lists newest orders first.
func (h *Handler) GetOrders(c *gin.Context) {
	var q orderQuery
	if err := bindQuery(c, &q); err != nil {
		fail(c, err)
		return
	}
	if q.ID != nil {
		readOne[models.Order](c, h, orderTable, *q.ID)
		return
	}
	readMany[models.Order](c, h, orderTable, conds(
		eq("user_id", q.UserID),
		eq("restaurant_name", q.RestaurantName),
		eq("is_paid", q.IsPaid),
	), "created_at DESC, id DESC")
}

// UpdateOrderPayment marks an order paid. Paid orders never go back to
// unpaid, and repeating the current state writes nothing.
func (h *Handler) UpdateOrderPayment(c *gin.Context) {
	var req UpdateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	order, err := store.Get[models.Order](c.Request.Context(), h.exec, orderTable, req.ID)
	if err != nil {
		fail(c, err)
		return
	}

	from, to := models.PaymentStatusOf(order.IsPaid), models.PaymentStatusOf(*req.IsPaid)
	if err := statemachine.CanTransition(from, to); err != nil {
		fail(c, err)
		return
	}
	if from == to {
		respond(c, http.StatusOK, order)
		return
	}
	update[models.Order](c, h, orderTable, order.ID, []store.Column{
		store.Set("is_paid", true),
	})
}

// GetPaymentStates documents the payment state machine.
func GetPaymentStates(c *gin.Context) {
	terminal := []models.PaymentStatus{}
	for _, s := range models.PaymentStatuses {
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}
	respond(c, http.StatusOK, gin.H{
		"states":          models.PaymentStatuses,
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": terminal,
		"description":     "Order payment lifecycle: is_paid moves from false to true and never back",
	})
}
