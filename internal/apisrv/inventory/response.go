package inventory

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	gerr "github.com/jekabolt/stockroom/internal/errors"
)

// errors

// MessageResponse is the {"message": ...} body used for errors and acknowledgements.
type MessageResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	Message string `json:"message"`
}

func (e *MessageResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &MessageResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

// ErrStore maps a store failure: unknown ids are 404, everything else 400.
func ErrStore(err error) render.Renderer {
	if errors.Is(err, gerr.ErrNotFound) {
		return &MessageResponse{
			Err:            err,
			HTTPStatusCode: http.StatusNotFound,
			Message:        err.Error(),
		}
	}
	return ErrInvalidRequest(err)
}

var (
	ErrMethodNotAllowed = &MessageResponse{HTTPStatusCode: http.StatusMethodNotAllowed, Message: "Method Not Allowed"}
	ErrRouteNotFound    = &MessageResponse{HTTPStatusCode: http.StatusNotFound, Message: "Resource not found"}
)

func NewMessageResponse(statusCode int, msg string) *MessageResponse {
	return &MessageResponse{HTTPStatusCode: statusCode, Message: msg}
}

// DataResponse wraps a payload as {"data": ...}.
type DataResponse[T any] struct {
	HTTPStatusCode int `json:"-"`
	Data           T   `json:"data"`
}

func NewDataResponse[T any](statusCode int, data T) *DataResponse[T] {
	return &DataResponse[T]{HTTPStatusCode: statusCode, Data: data}
}

func (d *DataResponse[T]) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, d.HTTPStatusCode)
	return nil
}

// HealthResponse reports whether the store answers.
type HealthResponse struct {
	HTTPStatusCode int    `json:"-"`
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
}

func (h *HealthResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, h.HTTPStatusCode)
	return nil
}
