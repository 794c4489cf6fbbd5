package responder

import (
	"context"

	"github.com/oortega14/jsonapi-responses/api/serialize"
)

type widget struct {
	ID   int
	Name string
}

type persistableWidget struct {
	widget
	saveOK   bool
	deleteOK bool
	errs     []string
	saved    bool
	deleted  bool
}

func (w *persistableWidget) Save(context.Context) bool {
	w.saved = true
	return w.saveOK
}

func (w *persistableWidget) Delete(context.Context) bool {
	w.deleted = true
	return w.deleteOK
}

func (w *persistableWidget) ValidationErrors() []string {
	return w.errs
}

// widgetPage is a paginated collection without a page size.
type widgetPage struct {
	items   []widget
	current int
	pages   int
	count   int
}

func (p widgetPage) Elements() []any {
	out := make([]any, len(p.items))
	for i, item := range p.items {
		out[i] = item
	}
	return out
}

func (p widgetPage) CurrentPage() int { return p.current }
func (p widgetPage) TotalPages() int  { return p.pages }
func (p widgetPage) TotalCount() int  { return p.count }

type sizedWidgetPage struct {
	widgetPage
	per int
}

func (p sizedWidgetPage) PerPage() int { return p.per }

func testSerializer() serialize.Serializer {
	return serialize.SerializerFunc(func(record any, sctx serialize.Context) map[string]any {
		var out map[string]any
		switch w := record.(type) {
		case widget:
			out = map[string]any{"id": w.ID, "name": w.Name}
		case *persistableWidget:
			out = map[string]any{"id": w.ID, "name": w.Name}
		default:
			out = map[string]any{}
		}
		if view := sctx.View(); view != "" {
			out["view"] = view
		}
		if actor := sctx.Actor(); actor != nil {
			out["actor"] = actor
		}
		return out
	})
}

type fakeRequest struct {
	ctx    context.Context
	action string
	params map[string]string
	actor  any
}

func (f fakeRequest) Context() context.Context {
	if f.ctx != nil {
		return f.ctx
	}
	return context.Background()
}

func (f fakeRequest) Action() string {
	return f.action
}

func (f fakeRequest) Param(name string) string {
	return f.params[name]
}

func (f fakeRequest) Actor() any {
	return f.actor
}

func testDefinition(name string) *Definition {
	return NewDefinition(name, WithDefaultSerializer(testSerializer()))
}
