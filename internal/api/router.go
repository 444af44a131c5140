package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every store mutation and read path onto the
// router. The router is the view coordinator: each user intent maps to
// exactly one owning store's operation.
func RegisterRoutes(r *gin.Engine, app App) {
	r.Use(RequestIDMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/day", GetDayLog(app))
	r.PUT("/api/day", PutDayLog(app))

	r.GET("/api/habits", GetHabits(app))
	r.POST("/api/habits", PostHabit(app))
	r.POST("/api/habits/:id/toggle", ToggleHabit(app))
	r.DELETE("/api/habits/:id", DeleteHabit(app))

	r.GET("/api/journal", GetJournal(app))
	r.POST("/api/journal", PostJournal(app))

	r.GET("/api/rules", GetRules(app))
	r.POST("/api/rules", PostRule(app))
	r.DELETE("/api/rules/:id", DeleteRule(app))

	r.GET("/api/protocols", GetProtocols(app))
	r.POST("/api/protocols", PostProtocol(app))
	r.POST("/api/protocols/:id/toggle", ToggleProtocol(app))
	r.DELETE("/api/protocols/:id", DeleteProtocol(app))

	r.GET("/api/pillars", GetPillars(app))
	r.POST("/api/pillars/:key/increase", IncreasePillar(app))

	r.GET("/api/timer", GetTimer(app))
	r.POST("/api/timer/start", StartTimer(app))
	r.POST("/api/timer/pause", PauseTimer(app))
	r.POST("/api/timer/reset", ResetTimer(app))

	r.POST("/api/insight", PostInsight(app))
	r.GET("/api/identity/questions", GetIdentityQuestions(app))
}
