// internal/database/game.go
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jason-s-yu/solitario/internal/models"
)

// Game statuses stored in solitaire_games.status.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusQuit       = "quit"
	StatusAbandoned  = "abandoned"
)

const schema = `
	CREATE TABLE IF NOT EXISTS solitaire_games (
		id          UUID PRIMARY KEY,
		status      TEXT NOT NULL DEFAULT 'in_progress',
		moves       INTEGER NOT NULL DEFAULT 0,
		won         BOOLEAN NOT NULL DEFAULT FALSE,
		start_time  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		end_time    TIMESTAMPTZ
	);
	CREATE TABLE IF NOT EXISTS solitaire_actions (
		game_id        UUID NOT NULL REFERENCES solitaire_games(id),
		action_index   INTEGER NOT NULL,
		action_type    TEXT NOT NULL,
		action_payload JSONB,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (game_id, action_index)
	);
`

// EnsureSchema creates the journal tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// RecordActions persists a batch of journal records in a single transaction.
// Terminal records also close out the game row.
func RecordActions(ctx context.Context, db TxBeginner, recs []models.GameActionRecord) error {
	if len(recs) == 0 {
		return nil
	}
	err := pgx.BeginTxFunc(ctx, db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, rec := range recs {
			if err := insertActionTx(ctx, tx, rec); err != nil {
				return fmt.Errorf("action %d of game %v: %w", rec.ActionIndex, rec.GameID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("tx record actions: %w", err)
	}
	return nil
}

func insertActionTx(ctx context.Context, tx pgx.Tx, rec models.GameActionRecord) error {
	at := time.UnixMilli(rec.Timestamp)

	upsertGameQ := `
		INSERT INTO solitaire_games (id, status, start_time)
		VALUES ($1, 'in_progress', $2)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := tx.Exec(ctx, upsertGameQ, rec.GameID, at); err != nil {
		return err
	}

	payload, err := json.Marshal(rec.ActionPayload)
	if err != nil {
		return err
	}
	actionInsertQ := `
		INSERT INTO solitaire_actions (game_id, action_index, action_type, action_payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (game_id, action_index) DO NOTHING
	`
	if _, err := tx.Exec(ctx, actionInsertQ, rec.GameID, rec.ActionIndex, rec.ActionType, payload, at); err != nil {
		return err
	}

	var status string
	switch rec.ActionType {
	case models.ActionGameEnd:
		status = StatusCompleted
	case models.ActionGameQuit:
		status = StatusQuit
	default:
		return nil
	}
	finalizeQ := `
		UPDATE solitaire_games
		SET status = $2, moves = $3, won = $4, end_time = $5
		WHERE id = $1 AND status = 'in_progress'
	`
	_, err = tx.Exec(ctx, finalizeQ, rec.GameID, status, rec.Moves, rec.Won, at)
	return err
}

// MarkAbandoned flags a game that is still in progress as abandoned.
// It reports whether a row was changed.
func MarkAbandoned(ctx context.Context, db TxBeginner, gameID uuid.UUID) (bool, error) {
	var changed bool
	err := pgx.BeginTxFunc(ctx, db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			UPDATE solitaire_games
			SET status = 'abandoned', end_time = NOW()
			WHERE id = $1 AND status = 'in_progress'
		`
		tag, e := tx.Exec(ctx, q, gameID)
		if e != nil {
			return e
		}
		changed = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("mark game %v abandoned: %w", gameID, err)
	}
	return changed, nil
}
