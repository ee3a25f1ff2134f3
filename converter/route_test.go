package converter

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/aws2openapi/internal/testutil"
	"github.com/erraggy/aws2openapi/oaserrors"
	"github.com/erraggy/aws2openapi/openapi"
)

// restService builds a rest-json description from operation bodies keyed by
// name. Every operation takes an empty input.
func restService(ops ...string) string {
	var b strings.Builder
	b.WriteString(`{"version": "2.0", "metadata": {"apiVersion": "2020-01-01", "endpointPrefix": "things",`)
	b.WriteString(`"protocol": "rest-json", "serviceFullName": "Things", "signatureVersion": "v4"}, "operations": {`)
	b.WriteString(strings.Join(ops, ","))
	b.WriteString(`}, "shapes": {"Empty": {"type": "structure", "members": {}}}}`)
	return b.String()
}

func restOperation(name, method, uri string, deprecated bool) string {
	return fmt.Sprintf(`%q: {"name": %q, "http": {"method": %q, "requestUri": %q}, "input": {"shape": "Empty"}, "deprecated": %t}`,
		name, name, method, uri, deprecated)
}

func TestRouteCollisions(t *testing.T) {
	t.Run("deprecated occupant moves to the shadow route", func(t *testing.T) {
		result := convertFixture(t, restService(
			restOperation("ListThingsOld", "GET", "/things", true),
			restOperation("ListThings", "GET", "/things", false),
		))
		doc := result.Document

		assert.Equal(t, "ListThings", operationAt(t, doc, "/things", "get").OperationID)
		assert.Equal(t, "ListThingsOld", operationAt(t, doc, "/things#deprecated!", "get").OperationID)
		assert.True(t, hasIssue(result, SeverityInfo, "moved to shadow route"))
	})

	t.Run("deprecated newcomer goes to the shadow route", func(t *testing.T) {
		result := convertFixture(t, restService(
			restOperation("ListThings", "GET", "/things", false),
			restOperation("ListThingsOld", "GET", "/things", true),
		))
		doc := result.Document

		assert.Equal(t, "ListThings", operationAt(t, doc, "/things", "get").OperationID)
		assert.Equal(t, "ListThingsOld", operationAt(t, doc, "/things#deprecated!", "get").OperationID)
	})

	t.Run("different verbs share a route", func(t *testing.T) {
		result := convertFixture(t, restService(
			restOperation("ListThings", "GET", "/things", false),
			restOperation("CreateThing", "POST", "/things", false),
		))
		item := result.Document.Paths.Value("/things")
		require.NotNil(t, item)
		assert.Len(t, item.Operations(), 2)
	})

	t.Run("two live operations abort", func(t *testing.T) {
		desc := testutil.ParseService(t, restService(
			restOperation("ListThings", "GET", "/things", false),
			restOperation("ListAllThings", "GET", "/things", false),
		))

		var gotResult *ConversionResult
		var gotErr error
		calls := 0
		ok := New().Convert(desc, func(result *ConversionResult, err error) {
			calls++
			gotResult, gotErr = result, err
		})

		assert.True(t, ok)
		assert.Equal(t, 1, calls)
		assert.Nil(t, gotResult)
		require.Error(t, gotErr)
		assert.True(t, errors.Is(gotErr, oaserrors.ErrRouteConflict))
		assert.True(t, errors.Is(gotErr, oaserrors.ErrConversion))

		var conflict *oaserrors.RouteConflictError
		require.True(t, errors.As(gotErr, &conflict))
		assert.Equal(t, "/things", conflict.Route)
		assert.Equal(t, "get", conflict.Method)
		assert.Equal(t, "ListThings", conflict.Existing)
		assert.Equal(t, "ListAllThings", conflict.Incoming)
		assert.False(t, conflict.Deprecated)
	})

	t.Run("occupied shadow route aborts", func(t *testing.T) {
		_, err := New().ConvertDocument(testutil.ParseService(t, restService(
			restOperation("ListThingsV1", "GET", "/things", true),
			restOperation("ListThingsV2", "GET", "/things", true),
			restOperation("ListThings", "GET", "/things", false),
		)))

		var conflict *oaserrors.RouteConflictError
		require.True(t, errors.As(err, &conflict))
		assert.True(t, conflict.Deprecated)
	})
}

func TestMissingHTTPBinding(t *testing.T) {
	result := convertFixture(t, restService(`"Ping": {"name": "Ping"}`))

	op := operationAt(t, result.Document, "/", "post")
	assert.Equal(t, "Ping", op.OperationID)
	assert.True(t, hasIssue(result, SeverityInfo, "no HTTP method"))
}

func TestUnsupportedMethodSkipped(t *testing.T) {
	result := convertFixture(t, restService(
		restOperation("Connect", "CONNECT", "/tunnel", false),
		restOperation("ListThings", "GET", "/things", false),
	))

	assert.False(t, result.Document.Paths.Has("/tunnel"))
	assert.True(t, result.Document.Paths.Has("/things"))
	assert.Equal(t, 1, result.WarningCount)
}

func TestRequiredLocationFragment(t *testing.T) {
	src := `{"version": "2.0",
  "metadata": {"apiVersion": "2020-01-01", "endpointPrefix": "things", "protocol": "rest-json", "serviceFullName": "Things"},
  "operations": {
    "GetThing": {"name": "GetThing", "http": {"method": "GET", "requestUri": "/things"}, "input": {"shape": "GetThingRequest"}},
    "GetThingByTag": {"name": "GetThingByTag", "http": {"method": "GET", "requestUri": "/things"}, "input": {"shape": "GetThingByTagRequest"}}
  },
  "shapes": {
    "GetThingRequest": {"type": "structure", "members": {}},
    "GetThingByTagRequest": {
      "type": "structure",
      "required": ["Tag", "Account"],
      "members": {
        "Tag": {"shape": "String", "location": "querystring", "locationName": "tag"},
        "Account": {"shape": "String", "location": "header", "locationName": "x-account"}
      }
    },
    "String": {"type": "string"}
  }
}`
	result := convertFixture(t, src)
	doc := result.Document

	operationAt(t, doc, "/things", "get")
	byTag := operationAt(t, doc, "/things#tag&x-account", "get")
	assert.Equal(t, "GetThingByTag", byTag.OperationID)
	require.NotNil(t, parameterNamed(byTag.Parameters, "tag"))
	assert.True(t, parameterNamed(byTag.Parameters, "tag").Required)
	assert.Equal(t, true, doc.Extra["x-hasEquivalentPaths"])
}

func TestLiteralQuery(t *testing.T) {
	action := &openapi.Operation{}
	route := literalQuery("/{Bucket}?uploads&list-type=2", action)

	assert.Equal(t, "/{Bucket}#uploads&list-type=2", route)
	require.Len(t, action.Parameters, 2)
	assert.Equal(t, "uploads", action.Parameters[0].Name)
	assert.Equal(t, "boolean", action.Parameters[0].Schema.Type)
	assert.Equal(t, "list-type", action.Parameters[1].Name)
	assert.Equal(t, []any{"2"}, action.Parameters[1].Schema.Enum)

	assert.Equal(t, "/plain", literalQuery("/plain", &openapi.Operation{}))
}

func TestSigningParametersPerPathItem(t *testing.T) {
	result := convertFixture(t, testutil.JSONService)
	doc := result.Document

	require.Equal(t, len(amzHeaders), doc.Components.Parameters.Len())
	for _, item := range doc.Paths.All() {
		require.Len(t, item.Parameters, len(amzHeaders))
		assert.Equal(t, "#/components/parameters/X-Amz-Content-Sha256", item.Parameters[0].Ref)
	}
}
