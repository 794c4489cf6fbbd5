package responder

import (
	"context"
	"net/http"

	"github.com/oortega14/jsonapi-responses/api/apierror"
	"github.com/oortega14/jsonapi-responses/api/serialize"
	"github.com/oortega14/jsonapi-responses/utils/param"
)

// Request is what dispatch needs from the inbound request: its context, the
// action being handled, read access to request parameters and the
// authenticated caller.
type Request interface {
	Context() context.Context
	Action() string
	Param(name string) string
	Actor() any
}

// Invocation is the explicit per-dispatch snapshot handed to handlers,
// context generators and responders.
type Invocation struct {
	Definition *Definition
	Request    Request
	Record     any
	Serializer serialize.Serializer
	Context    serialize.Context
}

// Options tune one RenderWith call.
type Options struct {
	action     string
	ctx        serialize.Context
	serializer serialize.Serializer
	responder  ResponderFactory
}

type Option func(*Options)

// WithAction overrides the request's action name.
func WithAction(action string) Option {
	return func(o *Options) { o.action = action }
}

// WithContext supplies caller context overrides; they win over everything
// dispatch contributes.
func WithContext(sctx serialize.Context) Option {
	return func(o *Options) { o.ctx = sctx }
}

// WithSerializer overrides serializer resolution for this dispatch.
func WithSerializer(s serialize.Serializer) Option {
	return func(o *Options) { o.serializer = s }
}

// WithResponder hands the dispatch to a responder built from the invocation,
// bypassing handler resolution entirely.
func WithResponder(factory ResponderFactory) Option {
	return func(o *Options) { o.responder = factory }
}

// RenderWith is the dispatch entry point. It builds the request context,
// resolves the serializer and the handler, and returns the handler's result.
//
// An action no handler resolves for is not an error: it produces the
// structured "Action not supported" payload with a 400 status. Serializer
// resolution failures and handler faults are returned as apierror.Error
// values for the hosting framework to report.
func (d *Definition) RenderWith(req Request, record any, opts ...Option) (*Result, apierror.Error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	action := o.action
	if action == "" {
		action = req.Action()
	}

	sctx := serialize.NewContext().Merge(o.ctx)
	if actor := req.Actor(); actor != nil {
		sctx.SetDefault(serialize.ActorKey, actor)
	}
	if sctx.View() == "" {
		if view := req.Param(param.View.Name); view != "" {
			sctx[serialize.ViewKey] = view
		}
	}
	sctx.SetDefault(serialize.ClockKey, d.clock)

	serializer := o.serializer
	if serializer == nil {
		serializer = d.serializer
	}
	if serializer == nil && d.registry != nil {
		serializer, _ = d.registry.Resolve(d.name)
	}
	if serializer == nil {
		return nil, apierror.SerializerNotRegistered(d.name)
	}

	inv := Invocation{
		Definition: d,
		Request:    req,
		Record:     record,
		Serializer: serializer,
		Context:    sctx,
	}

	if o.responder != nil {
		return dispatchResponder(o.responder(inv), o.action)
	}

	h, ok := d.resolve(action)
	if !ok {
		d.logger.Debug().
			Str("action", action).
			Str("controller", d.name).
			Msg("no response handler resolved")
		payload := serialize.UnsupportedAction(action, d.name, HandlerName(action))
		return NewResult(payload, http.StatusBadRequest), nil
	}
	return h(inv)
}

// dispatchResponder prefers the responder's own method for the explicitly
// requested action and falls back to its Render.
func dispatchResponder(r Responder, action string) (*Result, apierror.Error) {
	if action != "" {
		if ar, ok := r.(ActionResponder); ok {
			if fn, ok := ar.RespondTo(action); ok {
				return fn()
			}
		}
	}
	return r.Render()
}
