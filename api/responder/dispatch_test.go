package responder

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/oortega14/jsonapi-responses/api/apierror"
	"github.com/oortega14/jsonapi-responses/api/serialize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWith_unsupportedAction(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")

	result, apiErr := d.RenderWith(fakeRequest{action: "unknown_action"}, widget{ID: 1})
	require.Nil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, result.Status)

	payload, ok := result.Payload.(*serialize.UnsupportedActionResponse)
	require.True(t, ok)
	assert.Equal(t, "Action not supported", payload.Error)
	assert.Equal(t, "unknown_action", payload.Details.Action)
	assert.Equal(t, "widgets", payload.Details.Controller)
	assert.Equal(t, "respond_for_unknown_action", payload.Details.RequiredMethod)
	assert.Len(t, payload.Suggestions, 2)
}

func TestRenderWith_unsupportedActionWireShape(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")

	result, apiErr := d.RenderWith(fakeRequest{action: "unknown_action"}, widget{ID: 1})
	require.Nil(t, apiErr)

	raw, err := json.Marshal(result.Payload)
	require.NoError(t, err)

	out := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Action not supported", out["error"])
	details := out["details"].(map[string]interface{})
	assert.Equal(t, "unknown_action", details["action"])
	assert.Equal(t, "widgets", details["controller"])
	assert.Equal(t, "respond_for_unknown_action", details["required_method"])
	assert.Len(t, out["suggestions"], 2)
}

func TestRenderWith_indexPaginationMeta(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")
	record := sizedWidgetPage{
		widgetPage: widgetPage{
			items:   []widget{{ID: 1}, {ID: 2}},
			current: 2,
			pages:   7,
			count:   13,
		},
		per: 2,
	}

	result, apiErr := d.RenderWith(fakeRequest{action: "index"}, record)
	require.Nil(t, apiErr)

	payload := result.Payload.(*serialize.CollectionResponse)
	require.Len(t, payload.Data, 2)
	assert.Equal(t, 2, payload.Meta["current_page"])
	assert.Equal(t, 7, payload.Meta["total_pages"])
	assert.Equal(t, 13, payload.Meta["total_count"])
	assert.Equal(t, 2, payload.Meta["per_page"])
}

func TestRenderWith_indexPaginationMetaOmitsPerPage(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")
	record := widgetPage{items: []widget{{ID: 1}}, current: 1, pages: 1, count: 1}

	result, apiErr := d.RenderWith(fakeRequest{action: "index"}, record)
	require.Nil(t, apiErr)

	payload := result.Payload.(*serialize.CollectionResponse)
	_, ok := payload.Meta["per_page"]
	assert.False(t, ok)
}

func TestRenderWith_indexContextMetaOnly(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")

	result, apiErr := d.RenderWith(
		fakeRequest{action: "index"},
		[]widget{{ID: 1}, {ID: 2}},
		WithContext(serialize.Context{serialize.MetaKey: map[string]any{"custom": "data"}}),
	)
	require.Nil(t, apiErr)

	payload := result.Payload.(*serialize.CollectionResponse)
	require.Len(t, payload.Data, 2)
	assert.Equal(t, map[string]any{"custom": "data"}, payload.Meta)
}

func TestRenderWith_indexPaginationMergesContextMeta(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")
	record := widgetPage{items: []widget{{ID: 1}}, current: 1, pages: 3, count: 9}

	result, apiErr := d.RenderWith(
		fakeRequest{action: "index"},
		record,
		WithContext(serialize.Context{serialize.MetaKey: map[string]any{"custom": "data"}}),
	)
	require.Nil(t, apiErr)

	payload := result.Payload.(*serialize.CollectionResponse)
	assert.Equal(t, "data", payload.Meta["custom"])
	assert.Equal(t, 9, payload.Meta["total_count"])
}

func TestRenderWith_indexNoMeta(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")

	result, apiErr := d.RenderWith(fakeRequest{action: "index"}, []widget{{ID: 1}})
	require.Nil(t, apiErr)

	payload := result.Payload.(*serialize.CollectionResponse)
	assert.Nil(t, payload.Meta)
}

func TestRenderWith_viewPrecedence(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")

	// explicit context view wins over the request parameter
	result, apiErr := d.RenderWith(
		fakeRequest{action: "show", params: map[string]string{"view": "b"}},
		widget{ID: 1},
		WithContext(serialize.Context{serialize.ViewKey: "a"}),
	)
	require.Nil(t, apiErr)
	item := result.Payload.(map[string]any)
	assert.Equal(t, "a", item["view"])

	// without an explicit view the parameter is used
	result, apiErr = d.RenderWith(
		fakeRequest{action: "show", params: map[string]string{"view": "b"}},
		widget{ID: 1},
	)
	require.Nil(t, apiErr)
	item = result.Payload.(map[string]any)
	assert.Equal(t, "b", item["view"])
}

func TestRenderWith_actorContribution(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")

	result, apiErr := d.RenderWith(
		fakeRequest{action: "show", actor: "user_42"},
		widget{ID: 1},
	)
	require.Nil(t, apiErr)
	item := result.Payload.(map[string]any)
	assert.Equal(t, "user_42", item["actor"])

	// caller-supplied context overrides the identity contribution
	result, apiErr = d.RenderWith(
		fakeRequest{action: "show", actor: "user_42"},
		widget{ID: 1},
		WithContext(serialize.Context{serialize.ActorKey: "override"}),
	)
	require.Nil(t, apiErr)
	item = result.Payload.(map[string]any)
	assert.Equal(t, "override", item["actor"])
}

func TestRenderWith_actionOptionOverridesRequest(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")
	d.RespondFor("featured", noopHandler("featured payload"))

	result, apiErr := d.RenderWith(
		fakeRequest{action: "index"},
		[]widget{},
		WithAction("featured"),
	)
	require.Nil(t, apiErr)
	assert.Equal(t, "featured payload", result.Payload)
}

func TestRenderWith_serializerNotRegistered(t *testing.T) {
	t.Parallel()
	d := NewDefinition("widgets")

	_, apiErr := d.RenderWith(fakeRequest{action: "index"}, []widget{})
	require.NotNil(t, apiErr)
	assert.Equal(t, apierror.SerializerNotRegisteredCode, apiErr.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPCode())
}

func TestRenderWith_serializerFromRegistry(t *testing.T) {
	t.Parallel()
	registry := serialize.NewRegistry()
	registry.Register("widgets", testSerializer())
	d := NewDefinition("widgets", WithSerializerRegistry(registry))

	result, apiErr := d.RenderWith(fakeRequest{action: "show"}, widget{ID: 4})
	require.Nil(t, apiErr)
	item := result.Payload.(map[string]any)
	assert.Equal(t, 4, item["id"])
}

func TestRenderWith_serializerOptionWins(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")
	override := serialize.SerializerFunc(func(any, serialize.Context) map[string]any {
		return map[string]any{"overridden": true}
	})

	result, apiErr := d.RenderWith(fakeRequest{action: "show"}, widget{ID: 1}, WithSerializer(override))
	require.Nil(t, apiErr)
	item := result.Payload.(map[string]any)
	assert.Equal(t, true, item["overridden"])
}

func TestRenderWith_handlerFaultPropagates(t *testing.T) {
	t.Parallel()
	d := testDefinition("widgets")
	cause := errors.New("downstream blew up")
	d.RespondFor("broken", func(Invocation) (*Result, apierror.Error) {
		return nil, apierror.Unexpected(cause)
	})

	_, apiErr := d.RenderWith(fakeRequest{action: "broken"}, widget{ID: 1})
	require.NotNil(t, apiErr)
	assert.Equal(t, apierror.UnexpectedErrorCode, apiErr.ErrorCode())
	assert.True(t, apierror.CauseMatches(apiErr, func(c error) bool {
		return errors.Is(c, cause)
	}))
}
