package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"food-ordering-api/logging"
	"food-ordering-api/statemachine"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoinits // bindJSON relies on unknown keys being rejected
func init() {
	binding.EnableDecoderDisallowUnknownFields = true
}

const (
	msgMissingFields = "Missing required fields"
	msgInvalidBody   = "Invalid request body"
	msgInvalidQuery  = "Invalid query parameters"
	msgInternal      = "Internal Server Error"
)

// Handler serves every resource over one injected Executor.
type Handler struct {
	exec store.Executor
}

func New(exec store.Executor) *Handler {
	return &Handler{exec: exec}
}

// badRequest carries a client input problem up to fail.
type badRequest struct {
	msg string
	err error
}

func (e *badRequest) Error() string { return e.msg }
func (e *badRequest) Unwrap() error { return e.err }

// statusFor is the one place error kinds become HTTP statuses.
func statusFor(err error) (int, string) {
	var br *badRequest
	var te *statemachine.TransitionError
	switch {
	case errors.As(err, &br):
		return http.StatusBadRequest, br.msg
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict, "Conflicts with an existing record"
	case errors.As(err, &te):
		return http.StatusUnprocessableEntity, te.Error()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// fail writes the error envelope. Server faults are logged and never
// described to the client.
func fail(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// bindJSON decodes and validates a request body. A failed required rule
// reports missing fields; anything else is a malformed body.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "required" {
					return &badRequest{msg: msgMissingFields, err: err}
				}
			}
		}
		return &badRequest{msg: msgInvalidBody, err: err}
	}
	return nil
}

// bindQuery decodes filters. Keys that are not a form tag of q are
// rejected.
func bindQuery(c *gin.Context, q any) error {
	allowed := formKeys(q)
	for key := range c.Request.URL.Query() {
		if !allowed[key] {
			return &badRequest{msg: msgInvalidQuery, err: fmt.Errorf("unknown query parameter %q", key)}
		}
	}
	if err := c.ShouldBindQuery(q); err != nil {
		return &badRequest{msg: msgInvalidQuery, err: err}
	}
	return nil
}

func formKeys(q any) map[string]bool {
	t := reflect.TypeOf(q)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	keys := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("form"), ",")
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}

// idRequest is the body of every Delete call.
type idRequest struct {
	ID uint `json:"id" binding:"required"`
}

// conds turns optional filters into equality conditions, skipping nil ones.
func conds(pairs ...store.Cond) []store.Cond {
	out := make([]store.Cond, 0, len(pairs))
	for _, p := range pairs {
		if p.Value != nil {
			out = append(out, p)
		}
	}
	return out
}

func eq[T any](column string, p *T) store.Cond {
	return store.Cond{Column: column, Value: store.Opt(p)}
}

// readOne answers an id-scoped lookup with the row or 404.
func readOne[T any](c *gin.Context, h *Handler, table string, id uint) {
	row, err := store.Get[T](c.Request.Context(), h.exec, table, id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, row)
}

// readMany answers a filtered or unfiltered listing with an array.
func readMany[T any](c *gin.Context, h *Handler, table string, filters []store.Cond, orderBy string) {
	rows, err := store.Find[T](c.Request.Context(), h.exec, table, filters, orderBy)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, rows)
}

// create inserts a row and answers 201 with the stored row.
func create[T any](c *gin.Context, h *Handler, table string, cols []store.Column) {
	ctx := c.Request.Context()
	id, err := store.Insert(ctx, h.exec, table, cols)
	if err != nil {
		fail(c, err)
		return
	}
	row, err := store.Get[T](ctx, h.exec, table, id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, row)
}

// update applies a coalescing update and answers with the updated row.
func update[T any](c *gin.Context, h *Handler, table string, id uint, cols []store.Column) {
	if err := store.Update(c.Request.Context(), h.exec, table, id, cols); err != nil {
		fail(c, err)
		return
	}
	readOne[T](c, h, table, id)
}

// remove deletes by the id in the body and answers with the deleted row.
func remove[T any](c *gin.Context, h *Handler, table string) {
	var req idRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	row, err := store.Delete[T](c.Request.Context(), h.exec, table, req.ID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, row)
}
