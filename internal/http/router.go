// Package http exposes the character sheet over a JSON REST API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpH "github.com/kapu/akin-sheet-go/internal/http/handlers"
	httpMW "github.com/kapu/akin-sheet-go/internal/http/middleware"
	"github.com/kapu/akin-sheet-go/internal/http/response"
	"github.com/kapu/akin-sheet-go/internal/service/sheet"
	"github.com/kapu/akin-sheet-go/pkg/errors"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Sheet          *sheet.Sheet
	DB             httpH.Pinger
	AllowedOrigins []string
	Logger         *zap.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(httpMW.Recovery(logger, func(c *gin.Context) {
		response.RespondError(c, errors.NewSheetError("internal server error", errors.CodeSheetError, http.StatusInternalServerError, nil))
	}))
	r.Use(httpMW.RequestLogger(logger.Named("http")))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	health := httpH.NewHealthHandler(cfg.DB, logger)
	r.GET("/", health.ServiceInfo)

	api := r.Group("/api")
	api.GET("/health", health.HealthCheck)

	if cfg.Sheet != nil {
		akin := httpH.NewAkinHandler(cfg.Sheet, logger)
		abilities := httpH.NewCollectionHandler(cfg.Sheet.Abilities)
		virtues := httpH.NewCollectionHandler(cfg.Sheet.Virtues)
		flaws := httpH.NewCollectionHandler(cfg.Sheet.Flaws)

		g := api.Group("/akin")
		{
			g.GET("", akin.GetState)
			g.PUT("", akin.UpsertProfile)

			g.POST("/abilities", abilities.Create)
			g.PUT("/abilities/:id", abilities.Update)
			g.DELETE("/abilities/:id", abilities.Delete)

			g.POST("/virtues", virtues.Create)
			g.PUT("/virtues/:id", virtues.Update)
			g.DELETE("/virtues/:id", virtues.Delete)

			g.POST("/flaws", flaws.Create)
			g.PUT("/flaws/:id", flaws.Update)
			g.DELETE("/flaws/:id", flaws.Delete)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, errors.NewSheetError("route not found", errors.CodeNotFound, http.StatusNotFound, nil))
	})

	return r
}
