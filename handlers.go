package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// gameHandler returns today's puzzle along with the caller's current
// progress. The puzzle is recomputed from scratch on every request; all
// users on the same UTC day see an identical puzzle.
func (app *App) gameHandler(c *gin.Context) {
	ctx := c.Request.Context()
	app.getOrCreateSession(c)

	dateKey := app.todayKey()
	progress := app.readProgress(c, dateKey)
	puzzle := buildDailyPuzzle(dateKey, app.loadCategoryPool(ctx))

	app.writeProgress(c, progress)
	c.JSON(http.StatusOK, gin.H{
		"words":            puzzle.Words,
		"categories":       puzzle.Categories,
		"game_date":        puzzle.DateKey,
		"found_categories": progress.FoundCategories,
		"mistakes":         progress.Mistakes,
		"remaining":        PuzzleCategories - len(progress.FoundCategories),
	})
}

// checkSelectionHandler evaluates a selection of words against today's
// puzzle and round-trips the updated progress through the cookie.
func (app *App) checkSelectionHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	reqID, _ := ctx.Value(requestIDKey).(string)

	var selection []string
	if err := c.ShouldBindJSON(&selection); err != nil {
		if reqID != "" {
			logWarn("[request_id=%v] Session %s submitted unreadable selection: %v", reqID, sessionID, err)
		} else {
			logWarn("Session %s submitted unreadable selection: %v", sessionID, err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "message": MsgSelectionCount})
		return
	}

	dateKey := app.todayKey()
	progress := app.readProgress(c, dateKey)
	puzzle := buildDailyPuzzle(dateKey, app.loadCategoryPool(ctx))

	result, updated := evaluateSelection(puzzle, progress, selection)
	app.writeProgress(c, updated)

	switch {
	case result.Valid:
		if reqID != "" {
			logInfo("[request_id=%v] Session %s matched category %q (%d remaining)", reqID, sessionID, result.CategoryName, result.Remaining)
		} else {
			logInfo("Session %s matched category %q (%d remaining)", sessionID, result.CategoryName, result.Remaining)
		}
		c.JSON(http.StatusOK, gin.H{
			"valid":         true,
			"category_name": result.CategoryName,
			"remaining":     result.Remaining,
			"game_complete": result.GameComplete,
		})
	case result.MistakeRecorded:
		if reqID != "" {
			logInfo("[request_id=%v] Session %s missed (%d mistakes)", reqID, sessionID, updated.Mistakes)
		} else {
			logInfo("Session %s missed (%d mistakes)", sessionID, updated.Mistakes)
		}
		c.JSON(http.StatusOK, gin.H{
			"valid":    false,
			"message":  result.Message,
			"mistakes": updated.Mistakes,
		})
	default:
		if reqID != "" {
			logWarn("[request_id=%v] Session %s submitted %d words, want %d", reqID, sessionID, len(selection), WordsPerCategory)
		} else {
			logWarn("Session %s submitted %d words, want %d", sessionID, len(selection), WordsPerCategory)
		}
		c.JSON(http.StatusOK, gin.H{"valid": false, "message": result.Message})
	}
}

// gameStatusHandler reports the caller's progress for today's puzzle.
func (app *App) gameStatusHandler(c *gin.Context) {
	app.getOrCreateSession(c)

	dateKey := app.todayKey()
	progress := app.readProgress(c, dateKey)

	c.JSON(http.StatusOK, gin.H{
		"found_categories": progress.FoundCategories,
		"total_categories": PuzzleCategories,
		"remaining":        PuzzleCategories - len(progress.FoundCategories),
		"game_date":        progress.GameDate,
	})
}

// dailyInfoHandler reports day-rollover status. The stored game date is
// returned as decoded, before any rollover, so clients can detect a new day.
func (app *App) dailyInfoHandler(c *gin.Context) {
	today := app.todayKey()

	token, err := c.Cookie(ProgressCookieName)
	if err != nil {
		token = ""
	}
	progress := decodeProgress(token)

	var currentDate any
	if progress.GameDate != "" {
		currentDate = progress.GameDate
	}

	c.JSON(http.StatusOK, gin.H{
		"today":             today,
		"current_game_date": currentDate,
		"is_new_day":        progress.GameDate != today,
		"game_complete":     len(progress.FoundCategories) == PuzzleCategories,
		"found_count":       len(progress.FoundCategories),
	})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	pool := app.loadCategoryPool(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"env":               map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"categories_loaded": len(pool),
		"uptime":            formatUptime(uptime),
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
	})
}
