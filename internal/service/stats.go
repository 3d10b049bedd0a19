package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"abilitydraft-stats/internal/api"
	"abilitydraft-stats/internal/catalog"
	"abilitydraft-stats/internal/config"
	"abilitydraft-stats/internal/constants"
	"abilitydraft-stats/internal/domain"
	"abilitydraft-stats/internal/stats"
)

// StatsAPI is the slice of the upstream client the view assembly needs.
type StatsAPI interface {
	GetAbilityStats(ctx context.Context, patch string) ([]api.AbilityStatData, error)
	GetPickPositions(ctx context.Context, abilityID int32, patch string) ([]api.PickPositionData, error)
	GetPairStats(ctx context.Context, patch string) ([]api.PairStatData, error)
	GetTripletStats(ctx context.Context, patch string) ([]api.TripletStatData, error)
	GetHeroStats(ctx context.Context, patch string) ([]api.HeroStatData, error)
	GetFacetStats(ctx context.Context, patch string) ([]api.FacetStatData, error)
	GetLeaderboard(ctx context.Context, region string) ([]api.LeaderboardEntryData, error)
	GetRatingDistribution(ctx context.Context) ([]api.RatingBandData, error)
}

// StatsService assembles the dashboard views: upstream aggregates resolved
// against the catalog and run through the derived-metrics layer. Views are
// memoized per input identity with a TTL — an optimization against repeated
// fetches, not a correctness requirement; everything is recomputable from
// the immutable inputs.
type StatsService struct {
	client  StatsAPI
	catalog *catalog.Catalog
	cdnBase string
	logger  zerolog.Logger

	mu       sync.Mutex
	cache    map[string]cacheEntry
	cacheTTL time.Duration
}

type cacheEntry struct {
	at    time.Time
	value any
}

func NewStatsService(client *api.Client, cat *catalog.Catalog, cfg *config.Config, logger zerolog.Logger) *StatsService {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = constants.StatsCacheTTL
	}
	return &StatsService{
		client:   client,
		catalog:  cat,
		cdnBase:  cfg.CDNBaseURL,
		logger:   logger,
		cache:    make(map[string]cacheEntry),
		cacheTTL: ttl,
	}
}

// cached returns the memoized value for key when fresh, otherwise fills it.
// Methods cannot be generic, so this is a package-level helper.
func cached[T any](s *StatsService, key string, fill func() (T, error)) (T, error) {
	s.mu.Lock()
	if entry, ok := s.cache[key]; ok && time.Since(entry.at) < s.cacheTTL {
		s.mu.Unlock()
		return entry.value.(T), nil
	}
	s.mu.Unlock()

	value, err := fill()
	if err != nil {
		var zero T
		return zero, err
	}

	s.mu.Lock()
	s.cache[key] = cacheEntry{at: time.Now(), value: value}
	s.mu.Unlock()
	return value, nil
}

func (s *StatsService) slotView(abilityID int32, ownerHint *int32) SlotView {
	slot := s.catalog.Resolve(abilityID, ownerHint)
	return slotViewFrom(slot, s.catalog.SlotImageURL(s.cdnBase, abilityID))
}

func (s *StatsService) AbilitiesView(ctx context.Context, patch string) ([]AbilityRow, error) {
	return cached(s, "abilities:"+patch, func() ([]AbilityRow, error) {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()

		data, err := s.client.GetAbilityStats(apiCtx, patch)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch ability stats: %w", err)
		}

		rows := make([]AbilityRow, len(data))
		for i, d := range data {
			rows[i] = AbilityRow{
				Slot:            s.slotView(d.AbilityID, nil),
				Picks:           d.Picks,
				Wins:            d.Wins,
				Winrate:         100 * d.Winrate,
				AvgPickPosition: d.AvgPickPosition,
				WilsonLower:     100 * d.WilsonLower,
				WilsonUpper:     100 * d.WilsonUpper,
			}
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Picks > rows[j].Picks })

		s.logger.Debug().Str("patch", patch).Int("rows", len(rows)).Msg("ability view assembled")
		return rows, nil
	})
}

// PairsView builds the pair table: synergy against the solo-winrate
// baseline plus hidden-triple annotations. With excludeSameHero set, pairs
// whose members share a hero are dropped, and so are hidden companions that
// share a hero with either pair member.
func (s *StatsService) PairsView(ctx context.Context, patch string, excludeSameHero bool) ([]PairRow, error) {
	key := fmt.Sprintf("pairs:%s:%t", patch, excludeSameHero)
	return cached(s, key, func() ([]PairRow, error) {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()

		abilityStats, pairStats, tripletStats, err := s.fetchPairInputs(apiCtx, patch)
		if err != nil {
			return nil, err
		}

		solo := make(map[int32]*float64, len(abilityStats))
		for _, a := range abilityStats {
			pct := 100 * a.Winrate
			solo[a.AbilityID] = &pct
		}

		pairPicks := make(map[stats.PairKey]int, len(pairStats))
		for _, p := range pairStats {
			pairPicks[stats.NewPairKey(p.AbilityOne, p.AbilityTwo)] = p.Picks
		}

		triplets := make([]domain.TripletStat, len(tripletStats))
		for i, t := range tripletStats {
			triplets[i] = domain.TripletStat{
				AbilityOne:   t.AbilityOne,
				AbilityTwo:   t.AbilityTwo,
				AbilityThree: t.AbilityThree,
				Picks:        t.Picks,
				Winrate:      t.Winrate,
			}
		}

		detector := stats.NewTripleDetector(s.catalog.OwnerOf)
		hidden := detector.Detect(triplets, pairPicks)

		rows := make([]PairRow, 0, len(pairStats))
		for _, p := range pairStats {
			if excludeSameHero && detector.SharesHero(p.AbilityOne, p.AbilityTwo) {
				continue
			}

			pairKey := stats.NewPairKey(p.AbilityOne, p.AbilityTwo)
			pairWinrate := 100 * p.Winrate

			row := PairRow{
				SlotOne: s.slotView(p.AbilityOne, nil),
				SlotTwo: s.slotView(p.AbilityTwo, nil),
				Picks:   p.Picks,
				Wins:    p.Wins,
				Winrate: pairWinrate,
				Synergy: stats.Synergy(solo[p.AbilityOne], solo[p.AbilityTwo], pairWinrate),
			}

			for _, ht := range hidden[pairKey] {
				if excludeSameHero &&
					(detector.SharesHero(ht.HiddenID, pairKey.A) || detector.SharesHero(ht.HiddenID, pairKey.B)) {
					continue
				}
				tripletWinrate := 100 * ht.Winrate
				row.HiddenTriples = append(row.HiddenTriples, HiddenTripleRow{
					Hidden:       s.slotView(ht.HiddenID, nil),
					Picks:        ht.Picks,
					Winrate:      tripletWinrate,
					WinrateShift: tripletWinrate - pairWinrate,
				})
			}

			rows = append(rows, row)
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Picks > rows[j].Picks })

		s.logger.Debug().
			Str("patch", patch).
			Bool("exclude_same_hero", excludeSameHero).
			Int("rows", len(rows)).
			Msg("pair view assembled")
		return rows, nil
	})
}

func (s *StatsService) fetchPairInputs(ctx context.Context, patch string) ([]api.AbilityStatData, []api.PairStatData, []api.TripletStatData, error) {
	g, gCtx := errgroup.WithContext(ctx)

	var abilityStats []api.AbilityStatData
	var pairStats []api.PairStatData
	var tripletStats []api.TripletStatData

	g.Go(func() error {
		var err error
		abilityStats, err = s.client.GetAbilityStats(gCtx, patch)
		return err
	})
	g.Go(func() error {
		var err error
		pairStats, err = s.client.GetPairStats(gCtx, patch)
		return err
	})
	g.Go(func() error {
		var err error
		tripletStats, err = s.client.GetTripletStats(gCtx, patch)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch pair inputs: %w", err)
	}
	return abilityStats, pairStats, tripletStats, nil
}

func (s *StatsService) CurveView(ctx context.Context, abilityID int32, patch string) (*CurveView, error) {
	key := fmt.Sprintf("curve:%d:%s", abilityID, patch)
	return cached(s, key, func() (*CurveView, error) {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()

		data, err := s.client.GetPickPositions(apiCtx, abilityID, patch)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch pick positions: %w", err)
		}

		rows := make([]domain.PickPositionStat, len(data))
		for i, d := range data {
			rows[i] = domain.PickPositionStat{
				Pick:        d.Pick,
				Total:       d.Total,
				Wins:        d.Wins,
				Winrate:     d.Winrate,
				WilsonLower: d.WilsonLower,
				WilsonUpper: d.WilsonUpper,
			}
		}

		return &CurveView{
			Slot:   s.slotView(abilityID, nil),
			Points: stats.BuildCurve(rows),
		}, nil
	})
}

func (s *StatsService) HeroesView(ctx context.Context, patch string) ([]HeroRow, error) {
	return cached(s, "heroes:"+patch, func() ([]HeroRow, error) {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()

		data, err := s.client.GetHeroStats(apiCtx, patch)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch hero stats: %w", err)
		}

		rows := make([]HeroRow, len(data))
		for i, d := range data {
			row := HeroRow{
				HeroID:      d.HeroID,
				Name:        fmt.Sprintf("Hero #%d", d.HeroID),
				Picks:       d.Picks,
				Wins:        d.Wins,
				Winrate:     100 * d.Winrate,
				WilsonLower: 100 * d.WilsonLower,
				WilsonUpper: 100 * d.WilsonUpper,
			}
			if hero, ok := s.catalog.Hero(d.HeroID); ok {
				row.Name = hero.Name
				row.PortraitURL = catalog.HeroPortraitURL(s.cdnBase, hero.Picture)
			}
			rows[i] = row
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Picks > rows[j].Picks })
		return rows, nil
	})
}

func (s *StatsService) FacetsView(ctx context.Context, patch string) ([]FacetRow, error) {
	return cached(s, "facets:"+patch, func() ([]FacetRow, error) {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()

		data, err := s.client.GetFacetStats(apiCtx, patch)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch facet stats: %w", err)
		}

		rows := make([]FacetRow, len(data))
		for i, d := range data {
			row := FacetRow{
				HeroID:    d.HeroID,
				HeroName:  fmt.Sprintf("Hero #%d", d.HeroID),
				FacetSlot: d.FacetSlot,
				Name:      d.Name,
				IconURL:   catalog.FacetIconURL(s.cdnBase, d.Icon),
				Picks:     d.Picks,
				Wins:      d.Wins,
				Winrate:   100 * d.Winrate,
			}
			if hero, ok := s.catalog.Hero(d.HeroID); ok {
				row.HeroName = hero.Name
			}
			rows[i] = row
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Picks > rows[j].Picks })
		return rows, nil
	})
}

func (s *StatsService) LeaderboardView(ctx context.Context, region string) ([]LeaderboardRow, error) {
	return cached(s, "leaderboard:"+region, func() ([]LeaderboardRow, error) {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()

		data, err := s.client.GetLeaderboard(apiCtx, region)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
		}

		rows := make([]LeaderboardRow, len(data))
		for i, d := range data {
			rows[i] = LeaderboardRow{
				SteamID:    d.SteamID,
				Nickname:   d.Nickname,
				Rating:     d.Rating,
				Region:     d.Region,
				Rank:       d.Rank,
				Percentile: d.Percentile,
				Wins:       d.Wins,
				Losses:     d.Losses,
			}
		}
		return rows, nil
	})
}

func (s *StatsService) DistributionView(ctx context.Context) (*stats.DistributionSummary, error) {
	return cached(s, "distribution", func() (*stats.DistributionSummary, error) {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()

		data, err := s.client.GetRatingDistribution(apiCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch rating distribution: %w", err)
		}

		bands := make([]domain.RatingBand, len(data))
		for i, d := range data {
			bands[i] = domain.RatingBand{Rating: d.Rating, Count: d.Count}
		}
		sort.SliceStable(bands, func(i, j int) bool { return bands[i].Rating < bands[j].Rating })

		summary := stats.EstimateDistribution(bands)
		return &summary, nil
	})
}
