package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourname/axis/internal/service"
)

func GetHabits(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		habits, err := app.HabitRepo().ListHabits(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch habits")
			return
		}
		HandleSuccess(c, app.Logger(), habits, map[string]any{"capacity": service.MaxHabits})
	}
}

// PostHabit adds a habit. A blank title or a full collection is a silent
// no-op: the unchanged collection is returned.
func PostHabit(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.HabitRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		habits, err := service.AddHabit(c.Request.Context(), app.HabitRepo(), body.Title)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save habit")
			return
		}
		HandleSuccess(c, app.Logger(), habits, nil)
	}
}

func ToggleHabit(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		habits, err := service.ToggleHabit(c.Request.Context(), app.HabitRepo(), c.Param("id"), time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to toggle habit")
			return
		}
		HandleSuccess(c, app.Logger(), habits, nil)
	}
}

func DeleteHabit(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		habits, err := service.RemoveHabit(c.Request.Context(), app.HabitRepo(), c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to remove habit")
			return
		}
		HandleSuccess(c, app.Logger(), habits, nil)
	}
}
