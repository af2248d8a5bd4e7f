package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/wb_tariffs/internal/ports"
	"github.com/Gunvolt24/wb_tariffs/pkg/httpx"
)

// NewRouter — сборка роутера: recovery, request-id, логирование запросов,
// опциональный otel-трейсинг и операционные ручки сервиса.
func NewRouter(h *Handler, log ports.Logger, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(log))
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.POST("/sync", h.runSync)
	api.POST("/sheets/render", h.runSheetsRender)
	api.GET("/logs", h.listSyncLogs)

	return r
}
