package requestid

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWith(t *testing.T, m *Middleware, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	route, err := httpserver.NewRouteFromHandlerFunc("test", "/test",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}, m.Middleware())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	route.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_Generates(t *testing.T) {
	t.Parallel()

	rec := serveWith(t, New(), httptest.NewRequest(http.MethodGet, "/test", nil))

	id := rec.Header().Get(Header)
	require.NotEmpty(t, id)
	parsed, err := uuid.FromString(id)
	require.NoError(t, err)
	assert.Equal(t, byte(uuid.V4), parsed.Version())
}

func TestMiddleware_Unique(t *testing.T) {
	t.Parallel()

	m := New()
	first := serveWith(t, m, httptest.NewRequest(http.MethodGet, "/test", nil)).Header().Get(Header)
	second := serveWith(t, m, httptest.NewRequest(http.MethodGet, "/test", nil)).Header().Get(Header)
	assert.NotEqual(t, first, second)
}

func TestMiddleware_EchoesInbound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(Header, "abc-123")

	rec := serveWith(t, New(), req)
	assert.Equal(t, "abc-123", rec.Header().Get(Header))
}

func TestMiddleware_ReplacesOversizedInbound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(Header, strings.Repeat("a", maxInboundLength+1))

	m := NewWithGenerator(func() (string, error) { return "fresh", nil })
	rec := serveWith(t, m, req)
	assert.Equal(t, "fresh", rec.Header().Get(Header))
}

func TestMiddleware_GeneratorError(t *testing.T) {
	t.Parallel()

	m := NewWithGenerator(func() (string, error) { return "", errors.New("no entropy") })
	rec := serveWith(t, m, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(Header))
}

func TestNewWithGenerator_Nil(t *testing.T) {
	t.Parallel()

	m := NewWithGenerator(nil)
	rec := serveWith(t, m, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.NotEmpty(t, rec.Header().Get(Header))
}
