package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/airlinehub/internal/pkg/apperrors"
	"github.com/yigit/airlinehub/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(router, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"airline not found", fmt.Errorf("lookup: %w", apperrors.ErrAirlineNotFound), http.StatusNotFound, `{"error":"Airline not found.","code":"RES_001"}`},
		{"plain not found", apperrors.ErrResourceNotFound, http.StatusNotFound, `{"error":"Resource not found.","code":"RES_001"}`},
		{"validation", apperrors.NewValidationError("name cannot be empty"), http.StatusBadRequest, `{"error":"name cannot be empty","code":"VAL_001"}`},
		{"bad request", apperrors.ErrInvalidAirlineID, http.StatusBadRequest, `{"error":"Invalid airline ID.","code":"REQ_001"}`},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, `{"error":"Internal server error.","code":"SRV_001"}`},
		{"foreign key", fmt.Errorf("insert: %w", apperrors.ErrAirportReference), http.StatusInternalServerError, `{"error":"Internal server error.","code":"SRV_001"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", func(c *gin.Context) { HandleAPIError(c, tt.err) })

			w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHandleBindError(t *testing.T) {
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var body struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleBindError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body.","code":"VAL_001","details":["name is required"]}`, w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w = serve(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"REQ_001"`)
}

func TestMetrics_LabelsByRoute(t *testing.T) {
	m := metrics.NewMetrics("test")
	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/api/airlines/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(router, httptest.NewRequest(http.MethodGet, "/api/airlines/1", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/api/airlines/2", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/airlines/:id", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "4xx")))
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestJSONFieldName(t *testing.T) {
	assert.Equal(t, "name", jsonFieldName("Name"))
	assert.Equal(t, "airportIds", jsonFieldName("AirportIDs"))
	assert.Equal(t, "", jsonFieldName(""))
}
