package responder

import (
	"net/http"

	"github.com/oortega14/jsonapi-responses/api/apierror"
	"github.com/oortega14/jsonapi-responses/api/serialize"
	"github.com/oortega14/jsonapi-responses/api/shared/pagination"
)

// RestActions are the base actions handlers are generated for by default.
var RestActions = []string{"index", "show", "create", "update", "destroy"}

// RestOptions configures GenerateRestHandlers.
type RestOptions struct {
	// Namespace prefixes the generated handler names ("<namespace>_<action>").
	Namespace string
	// Actions defaults to RestActions when empty.
	Actions []string
	// Context is merged as defaults under the per-request context.
	Context serialize.Context
}

// GenerateRestHandlers installs one handler per base action. Each generated
// handler delegates to an explicitly registered handler for the unnamespaced
// base action when one exists, and runs the built-in default behavior
// otherwise. For the unnamespaced case the delegation target is captured
// before installation, since the generated handler takes the base action's
// own slot.
func (d *Definition) GenerateRestHandlers(opts RestOptions) {
	actions := opts.Actions
	if len(actions) == 0 {
		actions = RestActions
	}

	for _, base := range actions {
		base := base
		name := base
		if opts.Namespace != "" {
			name = opts.Namespace + "_" + base
		}
		shadowed, hasShadowed := d.userHandler(base)

		d.RespondFor(name, func(inv Invocation) (*Result, apierror.Error) {
			if len(opts.Context) > 0 {
				inv.Context = opts.Context.Merge(inv.Context)
			}
			if name != base {
				if h, ok := inv.Definition.userHandler(base); ok {
					return h(inv)
				}
			} else if hasShadowed {
				return shadowed(inv)
			}
			if h, ok := builtinHandler(base); ok {
				return h(inv)
			}
			return nil, apierror.ActionNotImplemented(base)
		})
	}
}

// builtinHandler returns the default behavior for the five CRUD actions.
// These are always resolvable, even without any registration.
func builtinHandler(action string) (Handler, bool) {
	switch action {
	case "index":
		return defaultIndex, true
	case "show":
		return defaultShow, true
	case "create":
		return defaultCreate, true
	case "update":
		return defaultUpdate, true
	case "destroy":
		return defaultDestroy, true
	default:
		return nil, false
	}
}

func defaultIndex(inv Invocation) (*Result, apierror.Error) {
	data := serialize.List(inv.Serializer, inv.Record, inv.Context)

	var meta map[string]any
	if pagination.IsPaginated(inv.Record) {
		meta = pagination.Meta(inv.Record, inv.Context)
	} else if m := inv.Context.Meta(); len(m) > 0 {
		meta = m
	}

	return NewResult(serialize.Collection(data, meta), http.StatusOK), nil
}

func defaultShow(inv Invocation) (*Result, apierror.Error) {
	return NewResult(serialize.Item(inv.Serializer, inv.Record, inv.Context), http.StatusOK), nil
}

func defaultCreate(inv Invocation) (*Result, apierror.Error) {
	saver, ok := inv.Record.(Saver)
	if !ok {
		return nil, apierror.RecordMissingCapability("create", "Saver")
	}
	if !saver.Save(inv.Request.Context()) {
		return NewResult(serialize.ValidationErrors(validationMessages(inv.Record)), http.StatusUnprocessableEntity), nil
	}
	return NewResult(serialize.Item(inv.Serializer, inv.Record, inv.Context), http.StatusCreated), nil
}

func defaultUpdate(inv Invocation) (*Result, apierror.Error) {
	if v, ok := inv.Record.(Validatable); ok {
		if messages := v.ValidationErrors(); len(messages) > 0 {
			return NewResult(serialize.ValidationErrors(messages), http.StatusUnprocessableEntity), nil
		}
	}
	return NewResult(serialize.Item(inv.Serializer, inv.Record, inv.Context), http.StatusOK), nil
}

func defaultDestroy(inv Invocation) (*Result, apierror.Error) {
	deleter, ok := inv.Record.(Deleter)
	if !ok {
		return nil, apierror.RecordMissingCapability("destroy", "Deleter")
	}
	if !deleter.Delete(inv.Request.Context()) {
		return NewResult(serialize.ValidationErrors(validationMessages(inv.Record)), http.StatusUnprocessableEntity), nil
	}
	return NewResult(serialize.Message("Record deleted successfully."), http.StatusOK), nil
}
