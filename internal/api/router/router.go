package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/charge-recovery/internal/api/handlers/recovery"
	"github.com/aliskhannn/charge-recovery/internal/middlewares"
)

func New(handler *recovery.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/recovery")
	{
		api.POST("/run", handler.Run)
		api.POST("/messages", handler.SendMessage)
		api.GET("/charges/:id/messages", handler.ChargeMessages)
		api.GET("/status", handler.Status)
	}

	return e
}
