package handlers

import (
	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
)

var restaurantTable = models.Restaurant{}.TableName()

type CreateRestaurantRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	District string `json:"district" binding:"required"`
	Logo     string `json:"logo"`
	UserID   string `json:"userId" binding:"required"`
}

type UpdateRestaurantRequest struct {
	ID       uint    `json:"id" binding:"required"`
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	District *string `json:"district"`
	Logo     *string `json:"logo"`
	UserID   *string `json:"userId"`
}

type restaurantQuery struct {
	ID       *uint   `form:"id"`
	UserID   *string `form:"userId"`
	District *string `form:"district"`
}

// CreateRestaurant registers a restaurant for its owner.
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	create[models.Restaurant](c, h, restaurantTable, []store.Column{
		store.Set("name", req.Name),
		store.Set("address", req.Address),
		store.Set("district", req.District),
		store.Set("logo", req.Logo),
		store.Set("user_id", req.UserID),
	})
}

// GetRestaurants returns one restaurant by id, or the owner-scoped or full list.
func (h *Handler) GetRestaurants(c *gin.Context) {
	var q restaurantQuery
	if err := bindQuery(c, &q); err != nil {
		fail(c, err)
		return
	}
	if q.ID != nil {
		readOne[models.Restaurant](c, h, restaurantTable, *q.ID)
		return
	}
	readMany[models.Restaurant](c, h, restaurantTable, conds(
		eq("user_id", q.UserID),
		eq("district", q.District),
	), "id DESC")
}

func (h *Handler) UpdateRestaurant(c *gin.Context) {
	var req UpdateRestaurantRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	update[models.Restaurant](c, h, restaurantTable, req.ID, []store.Column{
		store.Set("name", store.Opt(req.Name)),
		store.Set("address", store.Opt(req.Address)),
		store.Set("district", store.Opt(req.District)),
		store.Set("logo", store.Opt(req.Logo)),
		store.Set("user_id", store.Opt(req.UserID)),
	})
}

// DeleteRestaurant removes only the restaurant row; its cuisines, products
// and offers are left in place.
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	remove[models.Restaurant](c, h, restaurantTable)
}
