package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/mock"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type testHandler struct {
	*Handler
	movies  *mock.MockMovieService
	appInfo *mock.MockAppInfoService
	logs    *bytes.Buffer
}

// newTestHandler собирает Handler на моках сервисов; логи пишутся в буфер.
func newTestHandler(t *testing.T) *testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	movies := mock.NewMockMovieService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	buf := &bytes.Buffer{}
	log := &logger.Logger{Logger: zerolog.New(buf)}

	return &testHandler{
		Handler: NewHandler(&service.Services{MovieService: movies, AppInfoService: appInfo}, log),
		movies:  movies,
		appInfo: appInfo,
		logs:    buf,
	}
}

func (th *testHandler) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	th.Init().ServeHTTP(rec, req)
	return rec
}

// ── NewHandler ──────────────────────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	movies := mock.NewMockMovieService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	log := logger.Nop()

	h := NewHandler(&service.Services{MovieService: movies, AppInfoService: appInfo}, log)

	require.NotNil(t, h)
	assert.Same(t, movies, h.movies)
	assert.Same(t, appInfo, h.appInfo)
	assert.Same(t, log, h.logger)
}

// ── Init ────────────────────────────────────────────────────────────────────

func TestInit_StatusRoutes(t *testing.T) {
	th := newTestHandler(t)
	th.appInfo.EXPECT().GetStatus(gomock.Any()).Return(models.StatusResponse{Message: "Movie API is running"})

	rec := th.serve(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Movie API is running"}`, rec.Body.String())

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		rec = th.serve(httptest.NewRequest(method, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code, method)
	}
}

func TestInit_Version(t *testing.T) {
	th := newTestHandler(t)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.4.0")

	rec := th.serve(httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.4.0", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	rec := newTestHandler(t).serve(httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	rec := newTestHandler(t).serve(httptest.NewRequest(http.MethodPatch, "/movies/1", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestInit_RecoversFromPanic(t *testing.T) {
	th := newTestHandler(t)
	th.movies.EXPECT().ListMovies(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Movie, error) {
		panic("boom")
	})

	rec := th.serve(httptest.NewRequest(http.MethodGet, "/movies", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_AccessLogCarriesTraceID(t *testing.T) {
	th := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := th.serve(req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	assert.Contains(t, th.logs.String(), `"trace_id":"trace-42"`)
	assert.Contains(t, th.logs.String(), `"uri":"/health"`)
	assert.Contains(t, th.logs.String(), `"status":200`)
}
