package responder

import (
	"net/http"

	"github.com/oortega14/jsonapi-responses/api/apierror"
	"github.com/oortega14/jsonapi-responses/pkg/respondhttp"

	"github.com/go-chi/chi/v5"
)

// RecordSource loads the records REST routes operate on. Persistence itself
// stays with the implementor; the router only threads records through
// dispatch.
type RecordSource interface {
	List(r *http.Request) (any, apierror.Error)
	Find(r *http.Request, id string) (any, apierror.Error)
	Create(r *http.Request) (any, apierror.Error)
	Update(r *http.Request, id string) (any, apierror.Error)
}

// RESTRoutes mounts the five CRUD actions of a resource on a chi router.
func RESTRoutes(d *Definition, src RecordSource) chi.Router {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/", restHandler(d, "index", src.List))
	r.Method(http.MethodPost, "/", restHandler(d, "create", src.Create))
	r.Method(http.MethodGet, "/{id}", restHandler(d, "show", byID(src.Find)))
	r.Method(http.MethodPatch, "/{id}", restHandler(d, "update", byID(src.Update)))
	r.Method(http.MethodDelete, "/{id}", restHandler(d, "destroy", byID(src.Find)))
	return r
}

func byID(load func(r *http.Request, id string) (any, apierror.Error)) func(*http.Request) (any, apierror.Error) {
	return func(r *http.Request) (any, apierror.Error) {
		return load(r, chi.URLParam(r, "id"))
	}
}

func restHandler(d *Definition, action string, load func(*http.Request) (any, apierror.Error)) respondhttp.Handler {
	return func(_ http.ResponseWriter, r *http.Request) (any, apierror.Error) {
		record, apiErr := load(r)
		if apiErr != nil {
			return nil, apiErr
		}
		result, apiErr := d.RenderWith(NewHTTPRequest(r, action), record)
		if apiErr != nil {
			return nil, apiErr
		}
		return result, nil
	}
}
