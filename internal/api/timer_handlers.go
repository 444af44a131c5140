package api

import (
	"github.com/gin-gonic/gin"
)

func GetTimer(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), app.Timer().Snapshot(), nil)
	}
}

func StartTimer(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), app.Timer().Start(), nil)
	}
}

func PauseTimer(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), app.Timer().Pause(), nil)
	}
}

func ResetTimer(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), app.Timer().Reset(), nil)
	}
}
