package handlers_test

import (
	"net/http"
	"strconv"
	"testing"

	"food-ordering-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuisineLifecycle(t *testing.T) {
	r := newTestEngine(t)

	code, env := call(t, r, http.MethodPost, "/api/cuisine", obj{"restaurantId": 5, "name": "Italian"})
	require.Equal(t, http.StatusCreated, code, env.Error)
	created := decode[models.Cuisine](t, env)
	require.NotZero(t, created.ID)
	assert.Equal(t, uint(5), created.RestaurantID)
	assert.Equal(t, "Italian", created.Name)
	id := strconv.Itoa(int(created.ID))

	code, env = call(t, r, http.MethodGet, "/api/cuisine?restaurantId=5", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []models.Cuisine{created}, decode[[]models.Cuisine](t, env))

	code, env = call(t, r, http.MethodPut, "/api/cuisine", obj{"id": created.ID, "image": "http://x/y.png"})
	require.Equal(t, http.StatusOK, code, env.Error)
	updated := decode[models.Cuisine](t, env)
	assert.Equal(t, "Italian", updated.Name)
	assert.Equal(t, "http://x/y.png", updated.Image)
	assert.Equal(t, uint(5), updated.RestaurantID)

	code, env = call(t, r, http.MethodDelete, "/api/cuisine", obj{"id": created.ID})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, updated, decode[models.Cuisine](t, env))

	code, env = call(t, r, http.MethodGet, "/api/cuisine?id="+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, env.Error)

	code, _ = call(t, r, http.MethodDelete, "/api/cuisine", obj{"id": created.ID})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCuisineCreateMissingFieldsInsertsNothing(t *testing.T) {
	r := newTestEngine(t)

	code, env := call(t, r, http.MethodPost, "/api/cuisine", obj{"name": "Thai"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required fields", env.Error)

	code, env = call(t, r, http.MethodPost, "/api/cuisine", obj{"restaurantId": 1, "name": ""})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required fields", env.Error)

	code, env = call(t, r, http.MethodGet, "/api/cuisine", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]models.Cuisine](t, env))
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestUpdateAndDeleteRequireID(t *testing.T) {
	r := newTestEngine(t)

	code, env := call(t, r, http.MethodPut, "/api/cuisine", obj{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required fields", env.Error)

	code, _ = call(t, r, http.MethodDelete, "/api/cuisine", obj{})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = call(t, r, http.MethodPut, "/api/cuisine", obj{"id": 404, "name": "x"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Not found", env.Error)
}

func TestMalformedInputIsRejected(t *testing.T) {
	r := newTestEngine(t)

	code, env := call(t, r, http.MethodPost, "/api/cuisine", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid request body", env.Error)

	code, env = call(t, r, http.MethodPost, "/api/cuisine", obj{"name": "Thai", "restaurantId": 1, "chef": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid request body", env.Error)

	code, env = call(t, r, http.MethodPost, "/api/cuisine", obj{"name": "Thai", "restaurantId": "one"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid request body", env.Error)

	code, env = call(t, r, http.MethodGet, "/api/cuisine?restaurantId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid query parameters", env.Error)

	code, env = call(t, r, http.MethodGet, "/api/cuisine?restaurantId=1&chef=x", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid query parameters", env.Error)
}

func TestRowFieldNameIsNotAFilter(t *testing.T) {
	r := newTestEngine(t)
	for _, rid := range []int{5, 6} {
		code, env := call(t, r, http.MethodPost, "/api/cuisine", obj{"name": "Thai", "restaurantId": rid})
		require.Equal(t, http.StatusCreated, code, env.Error)
	}

	code, env := call(t, r, http.MethodGet, "/api/cuisine?restaurant_id=5", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid query parameters", env.Error)

	code, env = call(t, r, http.MethodGet, "/api/cuisine?restaurantId=5", nil)
	require.Equal(t, http.StatusOK, code)
	list := decode[[]models.Cuisine](t, env)
	require.Len(t, list, 1)
	assert.Equal(t, uint(5), list[0].RestaurantID)
}
