// Package router 提供 HTTP 路由配置
package router

import (
	"cineplan-api/internal/config"
	"cineplan-api/internal/interfaces/http/handler"
	"cineplan-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router HTTP 路由器
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
}

// New 创建新的路由器并注册全部路由
func New(
	cfg *config.Config,
	healthHandler *handler.HealthHandler,
	projectHandler *handler.ProjectHandler,
	sceneHandler *handler.SceneHandler,
	locationHandler *handler.LocationHandler,
	characterHandler *handler.CharacterHandler,
	distanceHandler *handler.DistanceHandler,
	planHandler *handler.PlanHandler,
	rateLimiter middleware.RateLimiter,
) *Router {
	// 设置 Gin 模式
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine: engine,
		cfg:    cfg,
	}

	r.setupMiddleware(rateLimiter)
	r.setupRoutes(healthHandler)

	v1 := engine.Group("/v1")
	RegisterV1Routes(v1,
		projectHandler,
		sceneHandler,
		locationHandler,
		characterHandler,
		distanceHandler,
		planHandler,
	)

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware(rateLimiter middleware.RateLimiter) {
	// 基础中间件
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	// CORS 中间件
	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	// 追踪中间件
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	// 指标中间件
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}

	// 限流中间件
	r.engine.Use(middleware.RateLimit(r.cfg.Security.RateLimit, rateLimiter))
}

// setupRoutes 配置系统路由
func (r *Router) setupRoutes(healthHandler *handler.HealthHandler) {
	// 系统端点
	r.engine.GET("/health", healthHandler.Health)
	r.engine.GET("/ready", healthHandler.Ready)
	r.engine.GET("/live", healthHandler.Live)

	// Prometheus 指标端点
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
}
