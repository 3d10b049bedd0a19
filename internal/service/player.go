package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"abilitydraft-stats/internal/api"
	"abilitydraft-stats/internal/constants"
	"abilitydraft-stats/internal/domain"
	"abilitydraft-stats/internal/repository"
)

// ValidationError marks bad user input: malformed ids, too many ids. It is
// raised synchronously, before any network call.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type PlayerAPI interface {
	GetPlayer(ctx context.Context, steamID string) (*api.PlayerData, error)
}

// SnapshotStore is the snapshot persistence the lookup path needs,
// implemented by repository.PlayerRepository.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, p *domain.PlayerProfile) error
	Latest(ctx context.Context, steamID string) (*domain.PlayerProfile, error)
	History(ctx context.Context, steamID string, limit int) ([]domain.PlayerProfile, error)
}

type PlayerService struct {
	client PlayerAPI
	repo   SnapshotStore
	logger zerolog.Logger
}

func NewPlayerService(client *api.Client, repo *repository.PlayerRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{client: client, repo: repo, logger: logger}
}

// PlayerResult is the outcome of one id's lookup. Failures are local: an
// errored id carries its message here instead of suppressing its siblings.
type PlayerResult struct {
	SteamID   string      `json:"steamId"`
	Profile   *PlayerView `json:"profile,omitempty"`
	FromCache bool        `json:"fromCache,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// Lookup resolves a comma-separated list of steam ids. Input is validated
// before any network call; the per-id lookups then run in parallel and each
// settles independently.
func (s *PlayerService) Lookup(ctx context.Context, query string) ([]PlayerResult, error) {
	ids, err := parseSearchIDs(query)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Int("ids", len(ids)).Msg("looking up players")

	results := make([]PlayerResult, len(ids))
	g := new(errgroup.Group)
	for i, id := range ids {
		g.Go(func() error {
			results[i] = s.lookupOne(ctx, id)
			return nil
		})
	}
	// The closures never fail; Wait only synchronizes.
	_ = g.Wait()

	return results, nil
}

func (s *PlayerService) lookupOne(ctx context.Context, steamID string) PlayerResult {
	result := PlayerResult{SteamID: steamID}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	data, err := s.client.GetPlayer(apiCtx, steamID)
	if err == nil && data != nil {
		profile := &domain.PlayerProfile{
			SteamID:      data.SteamID,
			Nickname:     data.Nickname,
			Rating:       data.Rating,
			Region:       data.Region,
			GlobalRank:   data.GlobalRank,
			RegionalRank: data.RegionalRank,
			Percentile:   data.Percentile,
			Wins:         data.Wins,
			Losses:       data.Losses,
			FetchedAt:    time.Now(),
		}
		if saveErr := s.repo.SaveSnapshot(ctx, profile); saveErr != nil {
			s.logger.Warn().Err(saveErr).Str("steam_id", steamID).Msg("failed to save player snapshot")
		}
		result.Profile = playerViewFrom(profile)
		return result
	}

	if errors.Is(err, api.ErrNotFound) {
		result.Error = "player not found"
		return result
	}

	s.logger.Warn().Err(err).Str("steam_id", steamID).Msg("player lookup failed, trying cached snapshot")

	cached, cacheErr := s.repo.Latest(ctx, steamID)
	if cacheErr != nil {
		result.Error = "error loading player"
		return result
	}
	result.Profile = playerViewFrom(cached)
	result.FromCache = true
	return result
}

// History returns the stored rank trajectory for one player, newest first.
func (s *PlayerService) History(ctx context.Context, steamID string, limit int) ([]PlayerView, error) {
	if !isNumericID(steamID) {
		return nil, &ValidationError{msg: fmt.Sprintf("malformed id %q", steamID)}
	}

	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	snapshots, err := s.repo.History(dbCtx, steamID, limit)
	if err != nil {
		return nil, err
	}

	views := make([]PlayerView, len(snapshots))
	for i := range snapshots {
		views[i] = *playerViewFrom(&snapshots[i])
	}
	return views, nil
}

func playerViewFrom(p *domain.PlayerProfile) *PlayerView {
	return &PlayerView{
		SteamID:      p.SteamID,
		Nickname:     p.Nickname,
		Rating:       p.Rating,
		Region:       p.Region,
		GlobalRank:   p.GlobalRank,
		RegionalRank: p.RegionalRank,
		Percentile:   p.Percentile,
		Wins:         p.Wins,
		Losses:       p.Losses,
		FetchedAt:    p.FetchedAt.Format(time.RFC3339),
	}
}

func parseSearchIDs(query string) ([]string, error) {
	var ids []string
	for part := range strings.SplitSeq(query, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !isNumericID(part) {
			return nil, &ValidationError{msg: fmt.Sprintf("malformed id %q", part)}
		}
		ids = append(ids, part)
	}
	if len(ids) == 0 {
		return nil, &ValidationError{msg: "no ids given"}
	}
	if len(ids) > constants.MaxSearchIDs {
		return nil, &ValidationError{msg: fmt.Sprintf("too many ids: %d (max %d)", len(ids), constants.MaxSearchIDs)}
	}
	return ids, nil
}

func isNumericID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
