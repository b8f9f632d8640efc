package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/interfaces/http/handler"
)

func RegisterRoutes(r *gin.Engine, orderHandler *handler.OrderHandler) {
	r.GET("/", orderHandler.ShowIntakeForm)
	r.POST("/", orderHandler.SubmitOrder)
	r.GET("/request/:id", orderHandler.ShowOrder)
}
