package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yourname/axis/internal/service"
)

// DefaultPillarDelta is the fixed step applied when a request carries no
// explicit delta.
const DefaultPillarDelta = 5

type pillarIncreaseRequest struct {
	Delta *int `json:"delta"`
}

func GetPillars(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		pillars, err := app.PillarRepo().GetPillars(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch pillars")
			return
		}
		HandleSuccess(c, app.Logger(), pillars, nil)
	}
}

func IncreasePillar(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		delta := DefaultPillarDelta
		var body pillarIncreaseRequest
		if err := c.ShouldBindJSON(&body); err == nil && body.Delta != nil {
			delta = *body.Delta
		}

		pillars, err := service.IncreasePillar(c.Request.Context(), app.PillarRepo(), c.Param("key"), delta)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to update pillar")
			return
		}
		HandleSuccess(c, app.Logger(), pillars, nil)
	}
}
