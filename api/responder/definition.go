package responder

import (
	"github.com/oortega14/jsonapi-responses/api/apierror"
	"github.com/oortega14/jsonapi-responses/api/serialize"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Handler produces the response for one action. It receives the full
// invocation snapshot; the record, serializer and context live on it.
type Handler func(inv Invocation) (*Result, apierror.Error)

// ContextFunc computes extra per-request context from the invocation
// snapshot. A nil return means nothing to merge.
type ContextFunc func(inv Invocation) serialize.Context

// Definition is the configuration-time state of one controller: its name,
// alias map, handler registry and serializer resolution. All registration
// happens at setup; during request handling a Definition is only read, so
// concurrent dispatches need no synchronization.
type Definition struct {
	name   string
	parent *Definition

	aliases  map[string]string
	handlers map[string]Handler

	serializer serialize.Serializer
	registry   *serialize.Registry
	clock      clockwork.Clock
	logger     zerolog.Logger
}

type DefinitionOption func(*Definition)

// WithDefaultSerializer sets the serializer used when dispatch receives none.
func WithDefaultSerializer(s serialize.Serializer) DefinitionOption {
	return func(d *Definition) { d.serializer = s }
}

// WithSerializerRegistry resolves the serializer by the definition's name
// when no default serializer is set.
func WithSerializerRegistry(r *serialize.Registry) DefinitionOption {
	return func(d *Definition) { d.registry = r }
}

func WithLogger(logger zerolog.Logger) DefinitionOption {
	return func(d *Definition) { d.logger = logger }
}

func WithClock(clock clockwork.Clock) DefinitionOption {
	return func(d *Definition) { d.clock = clock }
}

func NewDefinition(name string, opts ...DefinitionOption) *Definition {
	d := &Definition{
		name:     name,
		aliases:  make(map[string]string),
		handlers: make(map[string]Handler),
		clock:    clockwork.NewRealClock(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Extend derives a child definition that inherits this definition's aliases,
// handlers and serializer resolution. Registrations on the child are never
// visible to the parent.
func (d *Definition) Extend(name string, opts ...DefinitionOption) *Definition {
	child := &Definition{
		name:       name,
		parent:     d,
		aliases:    make(map[string]string),
		handlers:   make(map[string]Handler),
		serializer: d.serializer,
		registry:   d.registry,
		clock:      d.clock,
		logger:     d.logger,
	}
	for _, opt := range opts {
		opt(child)
	}
	return child
}

func (d *Definition) Name() string {
	return d.name
}

// MapAction declares that action responds through target's handler. Aliases
// merge additively; the last registration per action wins.
func (d *Definition) MapAction(action, target string) {
	d.aliases[action] = target
}

func (d *Definition) MapActions(mapping map[string]string) {
	for action, target := range mapping {
		d.aliases[action] = target
	}
}

// RespondFor installs the handler for an action, replacing any previous one.
func (d *Definition) RespondFor(action string, h Handler) {
	d.handlers[action] = h
}

func (d *Definition) RespondForEach(actions []string, h Handler) {
	for _, action := range actions {
		d.RespondFor(action, h)
	}
}

// Handlers returns a copy of the installed handler registry, inherited
// entries included. It exists for introspection; dispatch never uses it.
func (d *Definition) Handlers() map[string]Handler {
	out := make(map[string]Handler)
	d.collect(func(def *Definition) {
		for action, h := range def.handlers {
			out[action] = h
		}
	})
	return out
}

// Aliases returns a copy of the alias map, inherited entries included.
func (d *Definition) Aliases() map[string]string {
	out := make(map[string]string)
	d.collect(func(def *Definition) {
		for action, target := range def.aliases {
			out[action] = target
		}
	})
	return out
}

// collect visits the definition chain root-first so nearer definitions
// overwrite inherited entries.
func (d *Definition) collect(visit func(*Definition)) {
	if d.parent != nil {
		d.parent.collect(visit)
	}
	visit(d)
}

// userHandler looks up an explicitly installed handler through the
// definition chain.
func (d *Definition) userHandler(action string) (Handler, bool) {
	for cur := d; cur != nil; cur = cur.parent {
		if h, ok := cur.handlers[action]; ok {
			return h, true
		}
	}
	return nil, false
}

// handler also consults the built-in CRUD defaults, which are always the
// last resort of a lookup.
func (d *Definition) handler(action string) (Handler, bool) {
	if h, ok := d.userHandler(action); ok {
		return h, true
	}
	return builtinHandler(action)
}

func (d *Definition) aliasTarget(action string) (string, bool) {
	for cur := d; cur != nil; cur = cur.parent {
		if target, ok := cur.aliases[action]; ok {
			return target, true
		}
	}
	return "", false
}
