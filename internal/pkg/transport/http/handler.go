package http

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/exception"
)

// MakeHandlerFunc wires an endpoint with its request decoder and response encoder.
// Errors from any stage are written through ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes a JSON body into T and runs its Bind hook when T implements render.Binder.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	var req T

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid request body",
			Cause:      err,
		}
	}

	if binder, ok := any(&req).(render.Binder); ok {
		if err := binder.Bind(r); err != nil {
			return nil, err
		}
	}

	return &req, nil
}
