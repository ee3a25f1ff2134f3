package mcpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/aws2openapi/internal/testutil"
)

func TestServiceInput_LoadFile(t *testing.T) {
	inputCache.reset()
	path := testutil.WriteService(t, "sqs-2012-11-05.normal.json", testutil.QueryService)

	data, err := serviceInput{File: path}.load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testutil.QueryService, string(data))
}

func TestServiceInput_LoadContent(t *testing.T) {
	inputCache.reset()

	data, err := serviceInput{Content: testutil.JSONService}.load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testutil.JSONService, string(data))
	assert.Zero(t, inputCache.size(), "inline content is not cached")
}

func TestServiceInput_LoadErrors(t *testing.T) {
	path := testutil.WriteService(t, "sqs-2012-11-05.normal.json", testutil.QueryService)

	tests := []struct {
		name  string
		input serviceInput
	}{
		{"none provided", serviceInput{}},
		{"multiple provided", serviceInput{File: path, Content: "{}"}},
		{"file not found", serviceInput{File: filepath.Join(t.TempDir(), "missing.normal.json")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestServiceInput_InlineSizeLimit(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.MaxInlineSize = 8 })

	_, err := serviceInput{Content: strings.Repeat("x", 9)}.load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AWS2OPENAPI_MAX_INLINE_SIZE")
}

func TestServiceInput_LoadURL(t *testing.T) {
	inputCache.reset()
	withConfig(t, func(c *serverConfig) { c.AllowPrivateIPs = true })

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(testutil.JSONService))
	}))
	defer srv.Close()

	input := serviceInput{URL: srv.URL + "/apis/dynamodb-2012-08-10.normal.json"}
	assert.Equal(t, "dynamodb-2012-08-10.normal.json", input.filename())

	for range 2 {
		data, err := input.load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testutil.JSONService, string(data))
	}
	assert.Equal(t, int32(1), hits.Load(), "second load should be served from the cache")
}

func TestServiceInputFilename(t *testing.T) {
	assert.Equal(t, "sqs-2012-11-05.normal.json", serviceInput{File: "/x/apis/sqs-2012-11-05.normal.json"}.filename())
	assert.Equal(t, "", serviceInput{URL: "https://example.com/"}.filename())
	assert.Equal(t, "", serviceInput{Content: "{}"}.filename())
}

func TestInputCache_MissOnModifiedFile(t *testing.T) {
	inputCache.reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "svc-2020-01-01.normal.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"v": 1}`), 0o644))

	input := serviceInput{File: path}
	first, err := input.load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, inputCache.size())

	require.NoError(t, os.WriteFile(path, []byte(`{"v": 2}`), 0o644))
	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	second, err := input.load(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, string(first), string(second))
}

func TestInputCache_LRUEviction(t *testing.T) {
	inputCache.reset()

	for i := range 11 {
		inputCache.putWithTTL("key-"+string(rune('A'+i)), []byte("{}"), time.Minute)
		// Distinct insertion times for a deterministic eviction order.
		time.Sleep(time.Millisecond)
	}

	assert.Equal(t, 10, inputCache.size())
	assert.Nil(t, inputCache.get("key-A"), "expected oldest entry to be evicted")
	assert.NotNil(t, inputCache.get("key-K"))
}

func TestInputCache_Expiry(t *testing.T) {
	inputCache.reset()

	inputCache.putWithTTL("short", []byte("{}"), time.Nanosecond)
	inputCache.putWithTTL("long", []byte("{}"), time.Hour)
	time.Sleep(time.Millisecond)

	inputCache.sweep()
	assert.Equal(t, 1, inputCache.size())
	assert.Nil(t, inputCache.get("short"))
	assert.NotNil(t, inputCache.get("long"))
}
