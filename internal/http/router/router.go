package router

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"kundli.app/kundli/internal/http/handler"
	"kundli.app/kundli/internal/service"
)

type RouterConfig struct {
	Dataset json.RawMessage
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		kundliHandler := handler.NewKundliHandler(services.Kundli(), cfg.Dataset)
		interpretHandler := handler.NewInterpretHandler(services.Interpret())

		kundli := v1.Group("/kundli")
		{
			kundli.POST("", kundliHandler.Create)
			kundli.POST("/interpret", interpretHandler.Create)
		}
	}
}
