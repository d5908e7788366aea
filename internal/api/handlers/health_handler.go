package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
	"gorm.io/gorm"
)

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	services := map[string]string{"database": "healthy"}
	status := "healthy"

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
		services["database"] = "unhealthy"
		status = "unhealthy"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, HealthResponse{
		Status:   status,
		Services: services,
	})
}

// Ready handles GET /ready. The service is ready once the store answers
// and holds the reference categories.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx := c.Request().Context()

	sqlDB, err := h.db.DB()
	if err != nil {
		return notReady(c, "database connection failed")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return notReady(c, "database ping failed")
	}

	var categories int64
	if err := h.db.WithContext(ctx).Model(&models.Category{}).Count(&categories).Error; err != nil {
		return notReady(c, "categories table unavailable")
	}
	if categories == 0 {
		return notReady(c, "no categories seeded")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func notReady(c echo.Context, reason string) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{
		"status": "not ready",
		"reason": reason,
	})
}
