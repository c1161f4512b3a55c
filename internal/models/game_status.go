package models

// GameStatus represents the current state of the game
type GameStatus string

const (
	StatusPlaying  GameStatus = "playing"
	StatusFinished GameStatus = "finished"
)
