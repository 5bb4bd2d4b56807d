package models

import "github.com/google/uuid"

// GameActionRecord is one journal entry, as pushed to the Redis queue and
// archived by the historian.
type GameActionRecord struct {
	GameID        uuid.UUID              `json:"game_id"`
	ActionIndex   int                    `json:"action_index"`
	ActionType    string                 `json:"action_type"`
	ActionPayload map[string]interface{} `json:"action_payload"`
	Moves         int                    `json:"moves"`
	Won           bool                   `json:"won"`
	Timestamp     int64                  `json:"timestamp"` // epoch millis
}

const (
	ActionGameStart = "game_start"
	ActionGameEnd   = "game_end"
	ActionGameQuit  = "game_quit"
)
