package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/moodlingo/moodlingo/app/core"
	"github.com/moodlingo/moodlingo/pkg/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := core.NewMetrics("moodlingo", "middleware_test")

	e := gin.New()
	e.GET("/metrics", metrics.GinHandler())
	e.Use(Metrics(m))
	e.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	e.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, path := range []string{"/ok", "/bad", "/bad"} {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()

	// 每个路由都有耗时直方图,只有 4xx/5xx 进错误计数
	assert.Contains(t, body, `moodlingo_middleware_test_api_response_time_count{api="/ok"} 1`)
	assert.Contains(t, body, `moodlingo_middleware_test_api_response_time_count{api="/bad"} 2`)
	assert.Contains(t, body, `moodlingo_middleware_test_api_error{api="/bad",method="GET",status="400"} 2`)
	assert.NotContains(t, body, `api="/ok",method="GET"`)
}
