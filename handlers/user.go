package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
)

var userTable = models.User{}.TableName()

type CreateUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	ClerkID string `json:"clerkId" binding:"required"`
	Phone   string `json:"phone"`
}

// UpdateUserRequest cannot change clerkId: the row mirrors that identity.
type UpdateUserRequest struct {
	ID    uint    `json:"id" binding:"required"`
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}

type userQuery struct {
	ID      *uint   `form:"id"`
	ClerkID *string `form:"clerkId"`
	Email   *string `form:"email"`
}

// CreateUser mirrors a profile from the identity provider.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	create[models.User](c, h, userTable, []store.Column{
		store.Set("name", req.Name),
		store.Set("email", req.Email),
		store.Set("clerk_id", req.ClerkID),
		store.Set("phone", req.Phone),
	})
}

// GetUsers treats id, clerkId and email as single-row lookups since each is
// unique.
func (h *Handler) GetUsers(c *gin.Context) {
	var q userQuery
	if err := bindQuery(c, &q); err != nil {
		fail(c, err)
		return
	}
	switch {
	case q.ID != nil:
		readOne[models.User](c, h, userTable, *q.ID)
	case q.ClerkID != nil || q.Email != nil:
		h.userBy(c, conds(eq("clerk_id", q.ClerkID), eq("email", q.Email)))
	default:
		readMany[models.User](c, h, userTable, nil, "id DESC")
	}
}

// GetMe returns the profile of the caller's bearer token subject.
func (h *Handler) GetMe(c *gin.Context) {
	clerkID := middleware.GetClerkID(c)
	h.userBy(c, []store.Cond{{Column: "clerk_id", Value: clerkID}})
}

func (h *Handler) userBy(c *gin.Context, filters []store.Cond) {
	user, err := store.First[models.User](c.Request.Context(), h.exec, userTable, filters)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	update[models.User](c, h, userTable, req.ID, []store.Column{
		store.Set("name", store.Opt(req.Name)),
		store.Set("email", store.Opt(req.Email)),
		store.Set("phone", store.Opt(req.Phone)),
	})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	remove[models.User](c, h, userTable)
}
