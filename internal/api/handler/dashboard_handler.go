package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authdash/dashboard-api/internal/core/ports"
)

// DashboardHandler serves the dashboard read endpoints. It is a thin shell
// over the configured DashboardProvider; it computes nothing itself.
type DashboardHandler struct {
	provider ports.DashboardProvider
}

func NewDashboardHandler(provider ports.DashboardProvider) *DashboardHandler {
	return &DashboardHandler{provider: provider}
}

// Stats returns the aggregate dashboard numbers.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	if _, err := CurrentUser(c); err != nil {
		return err
	}

	stats, err := h.provider.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// RecentActivities returns the ordered activity feed.
//
// @Summary      Recent activities
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Activity
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/recent-activities [get]
func (h *DashboardHandler) RecentActivities(c echo.Context) error {
	if _, err := CurrentUser(c); err != nil {
		return err
	}

	activities, err := h.provider.RecentActivities(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}
