package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yourname/axis/internal/service"
)

func GetRules(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		rules, err := app.RuleRepo().ListRules(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch rules")
			return
		}
		HandleSuccess(c, app.Logger(), rules, nil)
	}
}

func PostRule(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.RuleRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		rules, err := service.AddRule(c.Request.Context(), app.RuleRepo(), body.Title, body.Description)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save rule")
			return
		}
		HandleSuccess(c, app.Logger(), rules, nil)
	}
}

func DeleteRule(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		rules, err := service.RemoveRule(c.Request.Context(), app.RuleRepo(), c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to remove rule")
			return
		}
		HandleSuccess(c, app.Logger(), rules, nil)
	}
}
