package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kundli.app/kundli/internal/http/dto"
	"kundli.app/kundli/internal/service"
)

type InterpretHandler struct {
	interpretService service.InterpretService
}

func NewInterpretHandler(interpretService service.InterpretService) *InterpretHandler {
	return &InterpretHandler{interpretService: interpretService}
}

func (h *InterpretHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.interpretService.Interpret(ctx, req.Question, req.KundliData, req.UserName)
	if err != nil {
		// The service degrades internally; an error here is unexpected.
		slog.ErrorContext(ctx, "interpretation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to interpret chart"})
		return
	}

	c.JSON(http.StatusOK, dto.InterpretResponse{
		Response: result.Response,
		Cooldown: result.Cooldown,
	})
}
