package handlers

import (
	"net/http"

	"piercing-service/internal/models"
	"piercing-service/internal/services"
	"piercing-service/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService services.INotificationService
}

func NewNotificationHandler(notificationService services.INotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(router *gin.Engine) {
	apiGr := router.Group("/api")
	apiGr.POST("/send-sms", h.SendSMS)
	apiGr.POST("/send-reminder", h.SendReminder)
}

// SendSMS answers 200 whether or not the text went out; sms_sent tells.
func (h *NotificationHandler) SendSMS(c *gin.Context) {
	var req models.SMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.notificationService.SendAftercareSMS(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(resp))
}

func (h *NotificationHandler) SendReminder(c *gin.Context) {
	var req models.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.notificationService.SendDownsizeReminder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(resp))
}
