package handlers

import (
	"net/http"

	"piercing-service/internal/models"
	"piercing-service/internal/services"
	"piercing-service/utils"

	"github.com/gin-gonic/gin"
)

type ReleaseFormHandler struct {
	releaseFormService services.IReleaseFormService
}

func NewReleaseFormHandler(releaseFormService services.IReleaseFormService) *ReleaseFormHandler {
	return &ReleaseFormHandler{
		releaseFormService: releaseFormService,
	}
}

func (h *ReleaseFormHandler) RegisterRoutes(router *gin.Engine) {
	apiGr := router.Group("/api")
	apiGr.POST("/release-form", h.SubmitReleaseForm)
}

func (h *ReleaseFormHandler) SubmitReleaseForm(c *gin.Context) {
	var req models.ReleaseFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.releaseFormService.SubmitReleaseForm(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(resp))
}
