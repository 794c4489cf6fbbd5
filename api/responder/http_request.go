package responder

import (
	"context"
	"net/http"
)

// HTTPRequest adapts an *http.Request to the Request interface. The action
// name is supplied by the route, since HTTP itself carries no action
// concept.
type HTTPRequest struct {
	r      *http.Request
	action string
}

func NewHTTPRequest(r *http.Request, action string) HTTPRequest {
	return HTTPRequest{r: r, action: action}
}

func (h HTTPRequest) Context() context.Context {
	return h.r.Context()
}

func (h HTTPRequest) Action() string {
	return h.action
}

func (h HTTPRequest) Param(name string) string {
	return h.r.URL.Query().Get(name)
}

func (h HTTPRequest) Actor() any {
	return ActorFromContext(h.r.Context())
}

type actorContextKey struct{}

// WithActor stores the authenticated caller on the context. Authentication
// middleware is expected to call this; dispatch only reads it.
func WithActor(ctx context.Context, actor any) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) any {
	return ctx.Value(actorContextKey{})
}
