package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/mock"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	h := NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())
	rr := httptest.NewRecorder()

	// Act
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", rr.Body.String())
}

func TestGetServerVersion_Gzip(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	h := NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	// Act
	h.Init().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", string(body))
}

func TestInit_RegistersEveryOperation(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	router := h.Init()

	registered := map[string]map[string]bool{}
	for _, route := range router.Routes() {
		registered[route.Pattern] = map[string]bool{}
		for method := range route.Handlers {
			registered[route.Pattern][method] = true
		}
	}

	for _, op := range expectedOperations {
		assert.True(t, registered["/node_api/"+op.name][op.method], "%s %s", op.method, op.name)
	}
	assert.True(t, registered["/api/version/"][http.MethodGet])
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	rr := httptest.NewRecorder()

	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/node_api/create", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
