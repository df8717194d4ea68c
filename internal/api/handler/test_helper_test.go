package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/idosos/backend/internal/adapter/viacep"
	"github.com/idosos/backend/internal/api/dto"
	"github.com/idosos/backend/internal/api/middleware"
	"github.com/idosos/backend/internal/core/service"
	"github.com/idosos/backend/internal/infrastructure/sqlite"
	"github.com/idosos/backend/internal/logging"
	"github.com/idosos/backend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// testEnv holds all test dependencies
type testEnv struct {
	db       *sqlite.DB
	router   *gin.Engine
	provider *httptest.Server
}

// fakeProvider answers like ViaCEP for 01001000 and reports every other code as unknown
func fakeProvider() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/ws/01001000/json/":
			w.Write([]byte(`{"cep":"01001-000","logradouro":"Praça da Sé","bairro":"Sé","localidade":"São Paulo","uf":"SP"}`))
		case strings.HasPrefix(r.URL.Path, "/ws/abc"):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.Write([]byte(`{"erro": true}`))
		}
	}))
}

// setupTestEnv creates a test environment with in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err, "failed to create test database")

	provider := fakeProvider()

	logger := logging.Discard()
	m := metrics.New(prometheus.NewRegistry())

	elderService := service.NewElderService(sqlite.NewElderRepository(db), m, logger)
	addressService := service.NewAddressService(viacep.NewClient(provider.URL, 2*time.Second), m, logger)

	elderHandler := NewElderHandler(elderService)
	addressHandler := NewAddressHandler(addressService)
	systemHandler := NewSystemHandler(db, sqlite.MemoryPath)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandlerMiddleware(logger))

	router.GET("/", systemHandler.Home)
	router.GET("/teste", systemHandler.Probe)
	router.POST("/idosos", elderHandler.CreateElder)
	router.GET("/idosos", elderHandler.ListElders)
	router.GET("/idosos/:id", elderHandler.GetElder)
	router.DELETE("/idosos/:id", elderHandler.DeleteElder)
	router.GET("/cep/:code", addressHandler.LookupAddress)

	env := &testEnv{
		db:       db,
		router:   router,
		provider: provider,
	}
	t.Cleanup(env.cleanup)

	return env
}

// cleanup closes the test database and the fake provider
func (env *testEnv) cleanup() {
	env.provider.Close()
	if env.db != nil {
		env.db.Close()
	}
}

// makeRequest performs a request with an optional JSON body and returns the response
func (env *testEnv) makeRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err, "failed to create request")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// countElders returns the number of stored rows
func (env *testEnv) countElders(t *testing.T) int {
	t.Helper()

	var count int
	require.NoError(t, env.db.Get(&count, `SELECT COUNT(*) FROM elder`))
	return count
}

// parseJSON decodes the response body into T
func parseJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseErrorResponse parses the response body into ErrorResponse
func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	return parseJSON[dto.ErrorResponse](t, w)
}
