package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yourname/axis/internal/insight"
	"github.com/yourname/axis/internal/service"
)

// PostInsight returns a behavioral tip for the given context. Upstream
// failures degrade to the fixed fallback string inside the insight
// service, so this handler only ever fails on a malformed request.
func PostInsight(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.InsightRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateInsightRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		tip := app.Insights().BehavioralInsight(c.Request.Context(), body.Context, insight.Kind(body.Kind))
		HandleSuccess(c, app.Logger(), nil, map[string]any{"insight": tip})
	}
}

func GetIdentityQuestions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		questions := app.Insights().IdentityQuestions(c.Request.Context())
		HandleSuccess(c, app.Logger(), questions, nil)
	}
}
