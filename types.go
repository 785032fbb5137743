package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// contextKey is the type used for request context values.
type contextKey string

// Category is a named group of exactly WordsPerCategory words that together
// form one correct selection. Immutable once constructed.
type Category struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// DailyPuzzle is the puzzle valid for one UTC calendar day: four word-disjoint
// categories and the shuffled union of their words. It is a pure function of
// the date key and the category pool and is recomputed on demand per request.
type DailyPuzzle struct {
	DateKey    string     `json:"game_date"`
	Categories []Category `json:"categories"`
	Words      []string   `json:"words"`
}

// FoundCategory is a snapshot of a correctly guessed category, storing the
// words exactly as the client submitted them.
type FoundCategory struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// UserProgress is a player's state for one daily puzzle. The server holds no
// copy; it round-trips through the progress cookie on every request.
type UserProgress struct {
	GameDate        string          `json:"game_date"`
	FoundCategories []FoundCategory `json:"found_categories"`
	Mistakes        int             `json:"mistakes"`
}

// SelectionResult is the outcome of evaluating one selection against the
// daily puzzle.
type SelectionResult struct {
	Valid           bool
	CategoryName    string
	Remaining       int
	GameComplete    bool
	Message         string
	MistakeRecorded bool
}

// App holds all application state and configuration.
type App struct {
	Store          CategorySource
	IsProduction   bool
	StartTime      time.Time
	CookieMaxAge   time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
	Now            func() time.Time // Overridable clock for tests
}

// now returns the current time via the injected clock, if any.
func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}
