package handlers

import (
	"context"
	"net/http"
	"time"

	"piercing-service/internal/services"
	"piercing-service/utils"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// DependencyCheck reports whether a backing service is reachable right now.
type DependencyCheck func(ctx context.Context) bool

// HealthDetail returns a status snapshot shown under "details" in /api/health.
type HealthDetail func() any

type CatalogHandler struct {
	catalog *services.CatalogService
	checks  map[string]DependencyCheck
	details map[string]HealthDetail
}

func NewCatalogHandler(catalog *services.CatalogService, checks map[string]DependencyCheck, details map[string]HealthDetail) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		checks:  checks,
		details: details,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.Engine) {
	apiGr := router.Group("/api")
	apiGr.GET("/health", h.Health)
	apiGr.GET("/pricing", h.GetPricing)
	apiGr.GET("/business-info", h.GetBusinessInfo)
	apiGr.GET("/jewelry-options/:piercing_type", h.GetJewelryOptions)
	apiGr.GET("/quote/:piercing_type", h.GetQuote)
}

// Health stays 200 while dependencies are down; the flags say which.
func (h *CatalogHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	dependencies := make(map[string]bool, len(h.checks))
	for name, check := range h.checks {
		dependencies[name] = check(ctx)
	}
	details := make(map[string]any, len(h.details))
	for name, detail := range h.details {
		details[name] = detail()
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"status":       "healthy",
		"dependencies": dependencies,
		"details":      details,
	}))
}

func (h *CatalogHandler) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(h.catalog.PricingInfo()))
}

func (h *CatalogHandler) GetBusinessInfo(c *gin.Context) {
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(h.catalog.BusinessInfo()))
}

func (h *CatalogHandler) GetJewelryOptions(c *gin.Context) {
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(h.catalog.JewelryOptions(c.Param("piercing_type"))))
}

func (h *CatalogHandler) GetQuote(c *gin.Context) {
	var at *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.CreateValidationErrorResponse("Request validation failed",
				[]utils.ValidationError{{Field: "date", Message: "must be an RFC 3339 timestamp"}}))
			return
		}
		at = &parsed
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(h.catalog.Quote(c.Param("piercing_type"), at)))
}
