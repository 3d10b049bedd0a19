package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"abilitydraft-stats/internal/domain"
)

// ErrNoSnapshot is returned when no cached snapshot exists for a steam id.
var ErrNoSnapshot = errors.New("no snapshot for player")

// PlayerRepository stores historical snapshots of looked-up player
// profiles. Snapshots are append-only: each successful upstream fetch adds a
// row, and Latest serves the newest one when the upstream is unreachable.
type PlayerRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{db: sqlDB, logger: logger}
}

func (r *PlayerRepository) SaveSnapshot(ctx context.Context, p *domain.PlayerProfile) error {
	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate snapshot id: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO player_snapshots
			(id, steam_id, nickname, rating, region, global_rank, regional_rank, percentile, wins, losses, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.SteamID, p.Nickname, p.Rating, p.Region, p.GlobalRank, p.RegionalRank, p.Percentile, p.Wins, p.Losses, p.FetchedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("steam_id", p.SteamID).Msg("failed to save player snapshot")
		return fmt.Errorf("failed to save snapshot for %s: %w", p.SteamID, err)
	}

	r.logger.Debug().Str("steam_id", p.SteamID).Str("snapshot_id", id).Msg("player snapshot saved")
	return nil
}

func (r *PlayerRepository) Latest(ctx context.Context, steamID string) (*domain.PlayerProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT steam_id, nickname, rating, region, global_rank, regional_rank, percentile, wins, losses, fetched_at
		FROM player_snapshots
		WHERE steam_id = ?
		ORDER BY fetched_at DESC
		LIMIT 1`,
		steamID,
	)

	var p domain.PlayerProfile
	err := row.Scan(&p.SteamID, &p.Nickname, &p.Rating, &p.Region, &p.GlobalRank, &p.RegionalRank, &p.Percentile, &p.Wins, &p.Losses, &p.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot for %s: %w", steamID, err)
	}
	return &p, nil
}

// History returns snapshots for a player, newest first, for the historical
// rank trajectory view.
func (r *PlayerRepository) History(ctx context.Context, steamID string, limit int) ([]domain.PlayerProfile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT steam_id, nickname, rating, region, global_rank, regional_rank, percentile, wins, losses, fetched_at
		FROM player_snapshots
		WHERE steam_id = ?
		ORDER BY fetched_at DESC
		LIMIT ?`,
		steamID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", steamID, err)
	}
	defer rows.Close()

	var out []domain.PlayerProfile
	for rows.Next() {
		var p domain.PlayerProfile
		if err := rows.Scan(&p.SteamID, &p.Nickname, &p.Rating, &p.Region, &p.GlobalRank, &p.RegionalRank, &p.Percentile, &p.Wins, &p.Losses, &p.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
