package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/pkg/logger"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemController serves the sitemap and the health check.
type SystemController struct {
	db     Pinger
	routes func() gin.RoutesInfo
}

// NewSystemController creates a SystemController. routes is called on every
// sitemap request so it reflects the engine as finally built.
func NewSystemController(db Pinger, routes func() gin.RoutesInfo) *SystemController {
	return &SystemController{db: db, routes: routes}
}

// Sitemap lists every registered route
// @Summary Sitemap
// @Tags system
// @Produce json
// @Success 200 {object} dto.SitemapResponse
// @Router / [get]
func (c *SystemController) Sitemap(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SitemapResponse{Routes: BuildSitemap(c.routes())})
}

// BuildSitemap converts gin route info to the sitemap body, sorted by path
// then method.
func BuildSitemap(info gin.RoutesInfo) []dto.Route {
	routes := make([]dto.Route, 0, len(info))
	for _, r := range info {
		routes = append(routes, dto.Route{Method: r.Method, Path: r.Path})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}

// Health pings the database
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *SystemController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// NotFound answers requests that match no route.
func (c *SystemController) NotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
}

// MethodNotAllowed answers a known path requested with an unsupported method.
func (c *SystemController) MethodNotAllowed(ctx *gin.Context) {
	ctx.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "Method not allowed"})
}
