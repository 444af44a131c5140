package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yourname/axis/internal/service"
)

func GetProtocols(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		protocols, err := app.ProtocolRepo().ListProtocols(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch protocols")
			return
		}
		HandleSuccess(c, app.Logger(), protocols, nil)
	}
}

func PostProtocol(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.ProtocolRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateProtocolRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		protocols, err := service.AddProtocol(c.Request.Context(), app.ProtocolRepo(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save protocol")
			return
		}
		HandleSuccess(c, app.Logger(), protocols, nil)
	}
}

func ToggleProtocol(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		protocols, err := service.ToggleProtocol(c.Request.Context(), app.ProtocolRepo(), c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to toggle protocol")
			return
		}
		HandleSuccess(c, app.Logger(), protocols, nil)
	}
}

func DeleteProtocol(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		protocols, err := service.RemoveProtocol(c.Request.Context(), app.ProtocolRepo(), c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to remove protocol")
			return
		}
		HandleSuccess(c, app.Logger(), protocols, nil)
	}
}
