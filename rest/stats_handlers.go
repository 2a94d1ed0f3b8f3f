package rest

import (
	"net/http"

	"guidelinex/di"

	"github.com/labstack/echo/v4"
)

func registerStatsRoutes(e *echo.Echo, container *di.ApplicationComponents) {
	e.GET("/api/stats", func(c echo.Context) error {
		stats, err := container.SystemStatsUsecase.GetStats(c.Request().Context())
		if err != nil {
			return handleError(c, err, "getStats")
		}
		return c.JSON(http.StatusOK, stats)
	})

	e.POST("/api/stats/visit", func(c echo.Context) error {
		container.SystemStatsUsecase.RecordVisit(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
}
