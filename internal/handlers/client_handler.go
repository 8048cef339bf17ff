package handlers

import (
	"net/http"

	"piercing-service/internal/models"
	"piercing-service/internal/services"
	"piercing-service/utils"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService services.IClientService
}

func NewClientHandler(clientService services.IClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

func (h *ClientHandler) RegisterRoutes(router *gin.Engine) {
	clientGr := router.Group("/api/clients")
	clientGr.POST("/lookup", h.LookupClients)
	clientGr.GET("/:client_id/piercings", h.GetClientPiercings)
}

func (h *ClientHandler) LookupClients(c *gin.Context) {
	var req models.ClientLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	clients, err := h.clientService.LookupClients(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if clients == nil {
		clients = []models.ClientRecord{}
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(clients))
}

func (h *ClientHandler) GetClientPiercings(c *gin.Context) {
	piercings, err := h.clientService.GetClientPiercings(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if piercings == nil {
		piercings = []models.PiercingRecord{}
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(piercings))
}
