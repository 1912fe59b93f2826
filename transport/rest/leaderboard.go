package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dodiwadhwa-maker/q-block-master/internal/repository"
)

const defaultLeaderboardLimit = 10

type scoreRepo interface {
	Leaderboard(ctx context.Context, limit int) ([]repository.HighScore, error)
}

func leaderboardHandler(logger *slog.Logger, scores scoreRepo) http.HandlerFunc {
	log := logger.With("method", "leaderboardHandler")

	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLeaderboardLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		entries, err := scores.Leaderboard(r.Context(), limit)
		if err != nil {
			log.Error("failed to query leaderboard", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(entries); err != nil {
			log.Error("failed to encode leaderboard", "error", err)
		}
	}
}
