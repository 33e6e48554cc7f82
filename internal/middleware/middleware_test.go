package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name         string
		allowed      []string
		origin       string
		method       string
		expectHeader bool
		expectedCode int
	}{
		{name: "success: listed origin", allowed: []string{"http://localhost:5173"}, origin: "http://localhost:5173", method: http.MethodGet, expectHeader: true, expectedCode: http.StatusOK},
		{name: "success: wildcard", allowed: []string{"*"}, origin: "http://any.test", method: http.MethodGet, expectHeader: true, expectedCode: http.StatusOK},
		{name: "success: preflight", allowed: []string{"*"}, origin: "http://any.test", method: http.MethodOptions, expectHeader: true, expectedCode: http.StatusNoContent},
		{name: "failure: unlisted origin", allowed: []string{"http://localhost:5173"}, origin: "http://evil.test", method: http.MethodGet, expectHeader: false, expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(CORS(tt.allowed))
			router.GET("/boards", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/boards", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectHeader {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Logger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) {
		_ = c.Error(errors.New("ordered ids do not match"))
		c.Status(http.StatusBadRequest)
	})
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/bad", "/fail"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 1, logs.FilterMessage("Request completed").Len())
	warn := logs.FilterMessage("Client error").All()
	if assert.Len(t, warn, 1) {
		assert.Contains(t, warn[0].ContextMap()["errors"], "ordered ids do not match")
		assert.Equal(t, "/bad", warn[0].ContextMap()["route"])
	}
	assert.Equal(t, 1, logs.FilterMessage("Server error").Len())
}
