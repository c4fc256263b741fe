package handlers

import (
	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
)

var cuisineTable = models.Cuisine{}.TableName()

type CreateCuisineRequest struct {
	Name         string `json:"name" binding:"required"`
	Image        string `json:"image"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
}

type UpdateCuisineRequest struct {
	ID           uint    `json:"id" binding:"required"`
	Name         *string `json:"name"`
	Image        *string `json:"image"`
	RestaurantID *uint   `json:"restaurantId"`
}

type cuisineQuery struct {
	ID           *uint `form:"id"`
	RestaurantID *uint `form:"restaurantId"`
}

func (h *Handler) CreateCuisine(c *gin.Context) {
	var req CreateCuisineRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	create[models.Cuisine](c, h, cuisineTable, []store.Column{
		store.Set("name", req.Name),
		store.Set("image", req.Image),
		store.Set("restaurant_id", req.RestaurantID),
	})
}

func (h *Handler) GetCuisines(c *gin.Context) {
	var q cuisineQuery
	if err := bindQuery(c, &q); err != nil {
		fail(c, err)
		return
	}
	if q.ID != nil {
		readOne[models.Cuisine](c, h, cuisineTable, *q.ID)
		return
	}
	readMany[models.Cuisine](c, h, cuisineTable, conds(eq("restaurant_id", q.RestaurantID)), "id DESC")
}

func (h *Handler) UpdateCuisine(c *gin.Context) {
	var req UpdateCuisineRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	update[models.Cuisine](c, h, cuisineTable, req.ID, []store.Column{
		store.Set("name", store.Opt(req.Name)),
		store.Set("image", store.Opt(req.Image)),
		store.Set("restaurant_id", store.Opt(req.RestaurantID)),
	})
}

func (h *Handler) DeleteCuisine(c *gin.Context) {
	remove[models.Cuisine](c, h, cuisineTable)
}
