package handlers_test

import (
	"net/http"
	"testing"

	"food-ordering-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, r http.Handler, userID, restaurant string) models.Order {
	t.Helper()
	code, env := call(t, r, http.MethodPost, "/api/order", obj{
		"productName":    "Khichuri",
		"number":         "01700000000",
		"amount":         240,
		"price":          120,
		"quantity":       2,
		"studentId":      "2019-1-60-001",
		"restaurantName": restaurant,
		"cuisineName":    "Bengali",
		"userId":         userID,
	})
	require.Equal(t, http.StatusCreated, code, env.Error)
	return decode[models.Order](t, env)
}

func TestOrderPaymentLifecycle(t *testing.T) {
	r := newTestEngine(t)
	order := placeOrder(t, r, "user_1", "Dhaba")
	assert.False(t, order.IsPaid)
	assert.False(t, order.CreatedAt.IsZero())

	code, env := call(t, r, http.MethodPut, "/api/order", obj{"id": order.ID, "isPaid": true})
	require.Equal(t, http.StatusOK, code, env.Error)
	paid := decode[models.Order](t, env)
	assert.True(t, paid.IsPaid)
	assert.Equal(t, order.ProductName, paid.ProductName)
	assert.Equal(t, order.Quantity, paid.Quantity)

	// repeating the current state is accepted and changes nothing
	code, env = call(t, r, http.MethodPut, "/api/order", obj{"id": order.ID, "isPaid": true})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[models.Order](t, env).IsPaid)

	code, env = call(t, r, http.MethodPut, "/api/order", obj{"id": order.ID, "isPaid": false})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.NotEmpty(t, env.Error)

	_, env = call(t, r, http.MethodGet, "/api/order?id="+itoa(order.ID), nil)
	assert.True(t, decode[models.Order](t, env).IsPaid)
}

func TestOrderUpdateOnlyAcceptsPaymentFlag(t *testing.T) {
	r := newTestEngine(t)
	order := placeOrder(t, r, "user_1", "Dhaba")

	code, env := call(t, r, http.MethodPut, "/api/order", obj{"id": order.ID, "isPaid": true, "quantity": 9})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid request body", env.Error)

	code, env = call(t, r, http.MethodPut, "/api/order", obj{"id": order.ID})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required fields", env.Error)

	code, _ = call(t, r, http.MethodPut, "/api/order", obj{"id": 999, "isPaid": true})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = call(t, r, http.MethodDelete, "/api/order", obj{"id": order.ID})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOrderCreateValidation(t *testing.T) {
	r := newTestEngine(t)

	code, env := call(t, r, http.MethodPost, "/api/order", obj{
		"productName": "Tea", "amount": 10, "price": 10, "quantity": 0, "userId": "u",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required fields", env.Error)

	code, env = call(t, r, http.MethodPost, "/api/order", obj{
		"productName": "Tea", "amount": 10, "price": 10, "quantity": -2, "userId": "u",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid request body", env.Error)

	code, env = call(t, r, http.MethodGet, "/api/order", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]models.Order](t, env))
}

func TestOrderFilters(t *testing.T) {
	r := newTestEngine(t)
	first := placeOrder(t, r, "user_1", "Dhaba")
	second := placeOrder(t, r, "user_1", "Cafe")
	placeOrder(t, r, "user_2", "Dhaba")

	code, _ := call(t, r, http.MethodPut, "/api/order", obj{"id": first.ID, "isPaid": true})
	require.Equal(t, http.StatusOK, code)

	_, env := call(t, r, http.MethodGet, "/api/order?userId=user_1", nil)
	mine := decode[[]models.Order](t, env)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	_, env = call(t, r, http.MethodGet, "/api/order?restaurantName=Dhaba&isPaid=false", nil)
	unpaid := decode[[]models.Order](t, env)
	require.Len(t, unpaid, 1)
	assert.Equal(t, "user_2", unpaid[0].UserID)

	code, env = call(t, r, http.MethodGet, "/api/order?isPaid=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid query parameters", env.Error)
}

func TestPaymentStatesEndpoint(t *testing.T) {
	r := newTestEngine(t)

	code, env := call(t, r, http.MethodGet, "/api/order/payment-states", nil)
	require.Equal(t, http.StatusOK, code)
	body := decode[obj](t, env)
	assert.Contains(t, body, "state_machine")
	assert.Equal(t, []any{"UNPAID", "PAID"}, body["states"])
	assert.Equal(t, []any{"PAID"}, body["terminal_states"])
}
