package handlers

import (
	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
)

var (
	offerTable        = models.Offer{}.TableName()
	specialOfferTable = models.SpecialOffer{}.TableName()
	comboOfferTable   = models.ComboOffer{}.TableName()
)

// Discounts are pointers so that an explicit 0 passes the required rule.

type CreateOfferRequest struct {
	Title        string   `json:"title" binding:"required"`
	Image        string   `json:"image"`
	Discount     *float64 `json:"discount" binding:"required,gte=0"`
	RestaurantID *uint    `json:"restaurantId"`
}

type UpdateOfferRequest struct {
	ID           uint     `json:"id" binding:"required"`
	Title        *string  `json:"title"`
	Image        *string  `json:"image"`
	Discount     *float64 `json:"discount" binding:"omitempty,gte=0"`
	RestaurantID *uint    `json:"restaurantId"`
}

type offerQuery struct {
	ID           *uint `form:"id"`
	RestaurantID *uint `form:"restaurantId"`
}

func (h *Handler) CreateOffer(c *gin.Context) {
	var req CreateOfferRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	create[models.Offer](c, h, offerTable, []store.Column{
		store.Set("title", req.Title),
		store.Set("image", req.Image),
		store.Set("discount", *req.Discount),
		store.Set("restaurant_id", store.Opt(req.RestaurantID)),
	})
}

func (h *Handler) GetOffers(c *gin.Context) {
	var q offerQuery
	if err := bindQuery(c, &q); err != nil {
		fail(c, err)
		return
	}
	if q.ID != nil {
		readOne[models.Offer](c, h, offerTable, *q.ID)
		return
	}
	readMany[models.Offer](c, h, offerTable, conds(eq("restaurant_id", q.RestaurantID)), "id DESC")
}

func (h *Handler) UpdateOffer(c *gin.Context) {
	var req UpdateOfferRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	update[models.Offer](c, h, offerTable, req.ID, []store.Column{
		store.Set("title", store.Opt(req.Title)),
		store.Set("image", store.Opt(req.Image)),
		store.Set("discount", store.Opt(req.Discount)),
		store.Set("restaurant_id", store.Opt(req.RestaurantID)),
	})
}

func (h *Handler) DeleteOffer(c *gin.Context) {
	remove[models.Offer](c, h, offerTable)
}

// ── Special offers ───────────────────────────────────────────────────────────

type CreateSpecialOfferRequest struct {
	Name         string   `json:"name" binding:"required"`
	Type         string   `json:"type"`
	CuisineID    *uint    `json:"cuisineId"`
	RestaurantID uint     `json:"restaurantId" binding:"required"`
	Description  string   `json:"description"`
	Discount     *float64 `json:"discount" binding:"required,gte=0"`
	Image        string   `json:"image"`
}

type UpdateSpecialOfferRequest struct {
	ID           uint     `json:"id" binding:"required"`
	Name         *string  `json:"name"`
	Type         *string  `json:"type"`
	CuisineID    *uint    `json:"cuisineId"`
	RestaurantID *uint    `json:"restaurantId"`
	Description  *string  `json:"description"`
	Discount     *float64 `json:"discount" binding:"omitempty,gte=0"`
	Image        *string  `json:"image"`
}

type specialOfferQuery struct {
	ID           *uint `form:"id"`
	RestaurantID *uint `form:"restaurantId"`
	CuisineID    *uint `form:"cuisineId"`
}

func (h *Handler) CreateSpecialOffer(c *gin.Context) {
	var req CreateSpecialOfferRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	create[models.SpecialOffer](c, h, specialOfferTable, []store.Column{
		store.Set("name", req.Name),
		store.Set("type", req.Type),
		store.Set("cuisine_id", store.Opt(req.CuisineID)),
		store.Set("restaurant_id", req.RestaurantID),
		store.Set("description", req.Description),
		store.Set("discount", *req.Discount),
		store.Set("image", req.Image),
	})
}

func (h *Handler) GetSpecialOffers(c *gin.Context) {
	var q specialOfferQuery
	if err := bindQuery(c, &q); err != nil {
		fail(c, err)
		return
	}
	if q.ID != nil {
		readOne[models.SpecialOffer](c, h, specialOfferTable, *q.ID)
		return
	}
	readMany[models.SpecialOffer](c, h, specialOfferTable, conds(
		eq("restaurant_id", q.RestaurantID),
		eq("cuisine_id", q.CuisineID),
	), "id DESC")
}

func (h *Handler) UpdateSpecialOffer(c *gin.Context) {
	var req UpdateSpecialOfferRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	update[models.SpecialOffer](c, h, specialOfferTable, req.ID, []store.Column{
		store.Set("name", store.Opt(req.Name)),
		store.Set("type", store.Opt(req.Type)),
		store.Set("cuisine_id", store.Opt(req.CuisineID)),
		store.Set("restaurant_id", store.Opt(req.RestaurantID)),
		store.Set("description", store.Opt(req.Description)),
		store.Set("discount", store.Opt(req.Discount)),
		store.Set("image", store.Opt(req.Image)),
	})
}

func (h *Handler) DeleteSpecialOffer(c *gin.Context) {
	remove[models.SpecialOffer](c, h, specialOfferTable)
}

// ── Combo offers ─────────────────────────────────────────────────────────────

type CreateComboOfferRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type"`
	CuisineID    *uint  `json:"cuisineId"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Description  string `json:"description"`
	Image        string `json:"image"`
}

type UpdateComboOfferRequest struct {
	ID           uint    `json:"id" binding:"required"`
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	CuisineID    *uint   `json:"cuisineId"`
	RestaurantID *uint   `json:"restaurantId"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
}

func (h *Handler) CreateComboOffer(c *gin.Context) {
	var req CreateComboOfferRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	create[models.ComboOffer](c, h, comboOfferTable, []store.Column{
		store.Set("name", req.Name),
		store.Set("type", req.Type),
		store.Set("cuisine_id", store.Opt(req.CuisineID)),
		store.Set("restaurant_id", req.RestaurantID),
		store.Set("description", req.Description),
		store.Set("image", req.Image),
	})
}

func (h *Handler) GetComboOffers(c *gin.Context) {
	var q specialOfferQuery
	if err := bindQuery(c, &q); err != nil {
		fail(c, err)
		return
	}
	if q.ID != nil {
		readOne[models.ComboOffer](c, h, comboOfferTable, *q.ID)
		return
	}
	readMany[models.ComboOffer](c, h, comboOfferTable, conds(
		eq("restaurant_id", q.RestaurantID),
		eq("cuisine_id", q.CuisineID),
	), "id DESC")
}

func (h *Handler) UpdateComboOffer(c *gin.Context) {
	var req UpdateComboOfferRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	update[models.ComboOffer](c, h, comboOfferTable, req.ID, []store.Column{
		store.Set("name", store.Opt(req.Name)),
		store.Set("type", store.Opt(req.Type)),
		store.Set("cuisine_id", store.Opt(req.CuisineID)),
		store.Set("restaurant_id", store.Opt(req.RestaurantID)),
		store.Set("description", store.Opt(req.Description)),
		store.Set("image", store.Opt(req.Image)),
	})
}

func (h *Handler) DeleteComboOffer(c *gin.Context) {
	remove[models.ComboOffer](c, h, comboOfferTable)
}
