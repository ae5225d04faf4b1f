package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kundli.app/kundli/internal/astro"
	"kundli.app/kundli/internal/ephem"
	"kundli.app/kundli/internal/http/dto"
	"kundli.app/kundli/internal/service"
)

type KundliHandler struct {
	kundliService service.KundliService
	dataset       json.RawMessage
}

func NewKundliHandler(kundliService service.KundliService, dataset json.RawMessage) *KundliHandler {
	return &KundliHandler{
		kundliService: kundliService,
		dataset:       dataset,
	}
}

func (h *KundliHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.KundliRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.kundliService.Build(ctx, service.BirthDetails{
		Date:      req.Date,
		Time:      req.Time,
		Lat:       *req.Lat,
		Lon:       *req.Lon,
		TZOffset:  *req.TZ,
		ChartType: astro.ChartType(req.ChartType),
	})
	if err != nil {
		if errors.Is(err, service.ErrBadBirthDetails) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, ephem.ErrUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "position backend unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute chart"})
		return
	}

	c.JSON(http.StatusOK, dto.ToKundliResponse(chart, h.dataset))
}
