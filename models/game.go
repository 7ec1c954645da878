package models

// GameStatus is the session-level lifecycle.
type GameStatus string

const (
	StatusIdle      GameStatus = "idle"
	StatusReady     GameStatus = "ready"
	StatusRacing    GameStatus = "racing"
	StatusPaused    GameStatus = "paused"
	StatusCompleted GameStatus = "completed"
)
