// Package respondhttp bridges the response layer to net/http. It converts
// handlers that return (payload, apierror.Error) into http.Handlers and owns
// the raw JSON emission primitive.
package respondhttp

import (
	"encoding/json"
	"net/http"

	"github.com/oortega14/jsonapi-responses/api/apierror"

	"github.com/rs/zerolog"
)

// StatusCoder is implemented by payloads that carry their own HTTP status.
type StatusCoder interface {
	HTTPStatus() int
}

// Payloader is implemented by payloads that wrap the body to emit.
type Payloader interface {
	HTTPPayload() any
}

// Handler is an http.Handler that renders its return value as JSON. A nil
// payload with a nil error produces 204 No Content.
type Handler func(w http.ResponseWriter, r *http.Request) (any, apierror.Error)

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payload, apiErr := h(w, r)
	if apiErr != nil {
		RespondError(w, r, apiErr)
		return
	}

	if payload == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	status := http.StatusOK
	if coder, ok := payload.(StatusCoder); ok {
		status = coder.HTTPStatus()
	}
	body := payload
	if p, ok := payload.(Payloader); ok {
		body = p.HTTPPayload()
	}

	RespondJSON(w, status, body)
}

// Middleware adapts a request-mutating step to standard chi middleware.
func Middleware(fn func(w http.ResponseWriter, r *http.Request) (*http.Request, apierror.Error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			newReq, apiErr := fn(w, r)
			if apiErr != nil {
				RespondError(w, r, apiErr)
				return
			}
			next.ServeHTTP(w, newReq)
		})
	}
}

// RespondJSON writes payload as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError writes the API error envelope. Internal errors are logged
// through the request-scoped zerolog logger.
func RespondError(w http.ResponseWriter, r *http.Request, apiErr apierror.Error) {
	if apierror.IsInternal(apiErr) {
		zerolog.Ctx(r.Context()).Error().
			Str("code", apiErr.ErrorCode()).
			Int("status", apiErr.HTTPCode()).
			Msg(apiErr.Error())
	}
	RespondJSON(w, apiErr.HTTPCode(), apierror.ToResponse(apiErr))
}
