package panel

import "github.com/gin-gonic/gin"

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Index)
	r.POST("/accounts", h.AddAccount)
	r.POST("/scheduler/start", h.StartScheduler)
	r.POST("/app/stop", h.StopApp)
	r.GET("/logs", h.Logs)
}
