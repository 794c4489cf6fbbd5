package responder

import (
	"net/http"

	"github.com/oortega14/jsonapi-responses/api/apierror"
	"github.com/oortega14/jsonapi-responses/api/serialize"
	"github.com/oortega14/jsonapi-responses/api/shared/pagination"
)

// Responder is the alternate dispatch path: a standalone object that owns
// its response logic instead of going through handler resolution.
type Responder interface {
	Render() (*Result, apierror.Error)
}

// ActionResponder is optionally implemented by responders that expose
// per-action methods. When dispatch receives an explicit action and the
// responder maps it, that method runs instead of Render.
type ActionResponder interface {
	RespondTo(action string) (ResponderAction, bool)
}

// ResponderAction is one action method of a responder.
type ResponderAction func() (*Result, apierror.Error)

// ResponderFactory builds a responder from the per-dispatch invocation.
type ResponderFactory func(inv Invocation) Responder

// BaseResponder wraps the invocation and provides the serialization helpers
// concrete responders build on. Its Render is abstract: embedders must
// override it or expose their actions through RespondTo.
type BaseResponder struct {
	inv Invocation
}

func NewBaseResponder(inv Invocation) BaseResponder {
	return BaseResponder{inv: inv}
}

func (b *BaseResponder) Render() (*Result, apierror.Error) {
	return nil, apierror.ResponderRenderNotImplemented()
}

func (b *BaseResponder) Invocation() Invocation {
	return b.inv
}

func (b *BaseResponder) Record() any {
	return b.inv.Record
}

func (b *BaseResponder) Context() serialize.Context {
	return b.inv.Context
}

func (b *BaseResponder) Serializer() serialize.Serializer {
	return b.inv.Serializer
}

// SerializeItem serializes the wrapped record, or the override when given.
func (b *BaseResponder) SerializeItem(record ...any) map[string]any {
	return serialize.Item(b.inv.Serializer, b.target(record), b.inv.Context)
}

// SerializeCollection serializes the wrapped record as a collection, or the
// override when given.
func (b *BaseResponder) SerializeCollection(records ...any) []map[string]any {
	return serialize.List(b.inv.Serializer, b.target(records), b.inv.Context)
}

// Collection reports whether the wrapped record is list-like.
func (b *BaseResponder) Collection() bool {
	return IsCollection(b.inv.Record)
}

func (b *BaseResponder) SingleItem() bool {
	return !b.Collection()
}

// Paginated reports whether the wrapped record carries pagination
// capabilities.
func (b *BaseResponder) Paginated() bool {
	return pagination.IsPaginated(b.inv.Record)
}

// JSON builds a raw result, the responder-side equivalent of the
// controller's JSON emission primitive.
func (b *BaseResponder) JSON(payload any, status int) (*Result, apierror.Error) {
	return NewResult(payload, status), nil
}

// CollectionWithMeta serializes a collection and attaches pagination
// metadata when the records are paginated, the additional meta when given,
// and no meta block otherwise.
func (b *BaseResponder) CollectionWithMeta(records any, additionalMeta map[string]any) (*Result, apierror.Error) {
	target := records
	if target == nil {
		target = b.inv.Record
	}

	var meta map[string]any
	if pagination.IsPaginated(target) {
		meta = pagination.Meta(target, b.inv.Context)
	} else if len(additionalMeta) > 0 {
		meta = additionalMeta
	}

	data := serialize.List(b.inv.Serializer, target, b.inv.Context)
	return NewResult(serialize.Collection(data, meta), http.StatusOK), nil
}

func (b *BaseResponder) target(override []any) any {
	if len(override) > 0 {
		return override[0]
	}
	return b.inv.Record
}
