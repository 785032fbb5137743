package main

// Puzzle dimension constants
const (
	PuzzleCategories = 4 // Categories per daily puzzle
	WordsPerCategory = 4 // Words per category
	PuzzleWordCount  = PuzzleCategories * WordsPerCategory
)

// Cookie configuration constants
const (
	SessionCookieName  = "client_id"
	ProgressCookieName = "game_progress"
)

// Route constants
const (
	RouteGame           = "/api/game"
	RouteCheckSelection = "/api/check_selection"
	RouteGameStatus     = "/api/game_status"
	RouteDailyInfo      = "/api/daily_info"
	RouteHealthz        = "/healthz"
)

// Message constants returned on invalid selections
const (
	MsgSelectionCount = "Select exactly 4 words."
	MsgNoCategory     = "These words do not form a category."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

// dateKeyLayout is the UTC day key format; puzzle identity rolls over at UTC midnight.
const dateKeyLayout = "2006-01-02"
