package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourname/axis/internal/service"
)

func GetDayLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		log, err := service.ResolveDayLog(c.Request.Context(), app.DayLogRepo(), time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load day log")
			return
		}
		HandleSuccess(c, app.Logger(), log, nil)
	}
}

func PutDayLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.DayLogRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		log, err := service.UpdateDayLog(c.Request.Context(), app.DayLogRepo(), time.Now(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save day log")
			return
		}
		HandleSuccess(c, app.Logger(), log, nil)
	}
}
