package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getOrCreateSession retrieves the client ID from the cookie or creates a
// new one. The ID is an opaque token; all game state lives in the progress
// cookie.
func (app *App) getOrCreateSession(c *gin.Context) string {
	clientID, err := c.Cookie(SessionCookieName)
	if err != nil || len(clientID) < 10 {
		clientID = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		secure := app.IsProduction
		c.SetCookie(SessionCookieName, clientID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new client session: %s", clientID)
	}
	return clientID
}

// readProgress decodes the caller's progress cookie and rolls stale state
// over to an empty progress stamped with the given date key.
func (app *App) readProgress(c *gin.Context, dateKey string) UserProgress {
	token, err := c.Cookie(ProgressCookieName)
	if err != nil {
		token = ""
	}
	return rollOver(decodeProgress(token), dateKey)
}

// writeProgress re-encodes progress into the client-held cookie.
func (app *App) writeProgress(c *gin.Context, progress UserProgress) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := app.IsProduction
	c.SetCookie(ProgressCookieName, encodeProgress(progress), int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
}
