package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costar/collab"
	"github.com/katalvlaran/costar/internal/api"
	"github.com/katalvlaran/costar/internal/middleware"
	"github.com/katalvlaran/costar/oracle"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	orc, err := oracle.New([]collab.Group{
		{Key: "M1", Members: []string{"Kevin Bacon", "A"}},
		{Key: "M2", Members: []string{"A", "B"}},
		{Key: "Island", Members: []string{"X", "Y"}},
	}, "Kevin Bacon")
	require.NoError(t, err)

	return api.NewRouter(&api.RouterDeps{
		Log:         testLogger(),
		Oracles:     oracle.NewHolder(orc),
		CORSOrigins: []string{"https://ui.example"},
	})
}

func doRequest(h http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func TestQuery_Connected(t *testing.T) {
	w := doRequest(newTestRouter(t), http.MethodGet, "/v1/oracle/B")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "B", body["name"])
	assert.Equal(t, "Kevin Bacon", body["reference"])
	assert.Equal(t, "connected", body["kind"])
	assert.EqualValues(t, 2, body["distance"])
	assert.Equal(t, []any{
		"B was connected to A via M2",
		"A was connected to Kevin Bacon via M1",
	}, body["lines"])

	steps := body["steps"].([]any)
	require.Len(t, steps, 2)
	assert.Equal(t, map[string]any{"member": "B", "label": "M2", "next": "A"}, steps[0])
}

func TestQuery_Kinds(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path     string
		kind     string
		distance float64
	}{
		{"/v1/oracle/Kevin%20Bacon", "reference", 0},
		{"/v1/oracle/Y", "unreachable", -1},
		{"/v1/oracle/Nobody", "unknown", -1},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tt.path)
			require.Equal(t, http.StatusOK, w.Code)

			body := decode(t, w)
			assert.Equal(t, tt.kind, body["kind"])
			assert.Equal(t, tt.distance, body["distance"])
			assert.Equal(t, []any{}, body["steps"])
		})
	}
}

func TestQuery_BlankName(t *testing.T) {
	w := doRequest(newTestRouter(t), http.MethodGet, "/v1/oracle/%20%20")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, api.ErrCodeInvalidRequest, body["code"])
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), body["request_id"])
}

func TestStatsAndHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/v1/stats")
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)
	assert.EqualValues(t, 5, stats["nodes"])
	assert.EqualValues(t, 6, stats["edges"])
	assert.EqualValues(t, 3, stats["reachable"])
	assert.EqualValues(t, 2, stats["max_distance"])

	w = doRequest(r, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	health := decode(t, w)
	assert.Equal(t, "ok", health["status"])
	assert.EqualValues(t, 5, health["nodes"])
}

func TestComponent(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/v1/component/X")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 2, body["size"])
	assert.Equal(t, []any{"X", "Y"}, body["members"])

	w = doRequest(r, http.MethodGet, "/v1/component/Nobody")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, api.ErrCodeNotFound, decode(t, w)["code"])
}

func TestNoOracleLoaded(t *testing.T) {
	r := api.NewRouter(&api.RouterDeps{Log: testLogger(), Oracles: oracle.NewHolder(nil)})

	for _, path := range []string{"/healthz", "/v1/stats", "/v1/oracle/A"} {
		w := doRequest(r, http.MethodGet, path)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	doRequest(r, http.MethodGet, "/v1/oracle/A")

	w := doRequest(r, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "costar_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/oracle/A", http.NoBody)
	req.Header.Set("Origin", "https://ui.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)

	assert.Equal(t, "https://ui.example", w.Header().Get("Access-Control-Allow-Origin"))
}
