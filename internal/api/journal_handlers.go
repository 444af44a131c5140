package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourname/axis/internal/service"
)

func GetJournal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := app.JournalRepo().ListEntries(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch journal")
			return
		}
		HandleSuccess(c, app.Logger(), entries, nil)
	}
}

// PostJournal saves an entry. Long content blocks on the insight call so
// the entry comes back with its insight attached.
func PostJournal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.JournalRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		entries, err := service.SaveEntry(c.Request.Context(), app.JournalRepo(), app.Insights(), body.Content, time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save entry")
			return
		}
		HandleSuccess(c, app.Logger(), entries, nil)
	}
}
