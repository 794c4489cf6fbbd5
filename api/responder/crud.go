package responder

import (
	"net/http"

	"github.com/oortega14/jsonapi-responses/api/apierror"
	"github.com/oortega14/jsonapi-responses/api/serialize"
)

// CrudOptions configures DefineCrudHandlers: a batch of list-shaped and
// item-shaped actions sharing the two standard envelope behaviors.
type CrudOptions struct {
	ListActions []string
	ShowActions []string

	// CollectionContext and ItemContext compute extra context from the
	// invocation snapshot at dispatch time. Their result is merged into the
	// request context for that dispatch only; nil means nothing to merge.
	CollectionContext ContextFunc
	ItemContext       ContextFunc
}

// DefineCrudHandlers installs a list handler for every ListActions entry and
// an item handler for every ShowActions entry.
func (d *Definition) DefineCrudHandlers(opts CrudOptions) {
	for _, action := range opts.ListActions {
		d.RespondFor(action, crudListHandler(opts.CollectionContext))
	}
	for _, action := range opts.ShowActions {
		d.RespondFor(action, crudShowHandler(opts.ItemContext))
	}
}

func crudListHandler(contextFn ContextFunc) Handler {
	return func(inv Invocation) (*Result, apierror.Error) {
		inv.Context = mergeGenerated(inv, contextFn)
		data := serialize.List(inv.Serializer, inv.Record, inv.Context)
		return NewResult(serialize.Collection(data, nil), http.StatusOK), nil
	}
}

func crudShowHandler(contextFn ContextFunc) Handler {
	return func(inv Invocation) (*Result, apierror.Error) {
		inv.Context = mergeGenerated(inv, contextFn)
		item := serialize.Item(inv.Serializer, inv.Record, inv.Context)
		return NewResult(serialize.SingleItem(item), http.StatusOK), nil
	}
}

func mergeGenerated(inv Invocation, contextFn ContextFunc) serialize.Context {
	if contextFn == nil {
		return inv.Context
	}
	extra := contextFn(inv)
	if extra == nil {
		return inv.Context
	}
	return inv.Context.Merge(extra)
}
