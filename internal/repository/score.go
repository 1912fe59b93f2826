package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dodiwadhwa-maker/q-block-master/internal/apperror"
)

type HighScore struct {
	PlayerID string `json:"player_id"`
	Score    int    `json:"score"`
}

type ScoreRepository interface {
	UpdateHighScore(ctx context.Context, playerID string, score int) error
	GetHighScore(ctx context.Context, playerID string) (int, error)
	Leaderboard(ctx context.Context, limit int) ([]HighScore, error)
}

type scoreRepository struct {
	conn *sql.DB
}

func NewScoreRepository(conn *sql.DB) ScoreRepository {
	return &scoreRepository{
		conn: conn,
	}
}

// UpdateHighScore stores the score if it beats the player's previous
// best; lower scores leave the row alone.
func (that *scoreRepository) UpdateHighScore(ctx context.Context, playerID string, score int) error {
	query := `INSERT INTO high_scores (player_id, score) VALUES (?, ?)
		ON CONFLICT(player_id) DO UPDATE SET score = excluded.score WHERE excluded.score > high_scores.score`

	_, err := that.conn.ExecContext(ctx, query, playerID, score)
	if err != nil {
		return fmt.Errorf("can't save high score: %w", err)
	}

	return nil
}

func (that *scoreRepository) GetHighScore(ctx context.Context, playerID string) (int, error) {
	query := `SELECT score FROM high_scores WHERE player_id = ?`

	var score int

	err := that.conn.QueryRowContext(ctx, query, playerID).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperror.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("can't find high score: %w", err)
	}

	return score, nil
}

func (that *scoreRepository) Leaderboard(ctx context.Context, limit int) ([]HighScore, error) {
	query := `SELECT player_id, score FROM high_scores ORDER BY score DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't query leaderboard: %w", err)
	}
	defer rows.Close()

	var scores []HighScore
	for rows.Next() {
		var entry HighScore
		if err = rows.Scan(&entry.PlayerID, &entry.Score); err != nil {
			return nil, fmt.Errorf("can't scan leaderboard row: %w", err)
		}
		scores = append(scores, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read leaderboard rows: %w", err)
	}

	return scores, nil
}
