package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"abilitydraft-stats/internal/api"
	"abilitydraft-stats/internal/catalog"
	"abilitydraft-stats/internal/constants"
	"abilitydraft-stats/internal/domain"
	"abilitydraft-stats/internal/repository"
)

// CatalogAPI is the slice of the upstream client the catalog bootstrap
// needs.
type CatalogAPI interface {
	GetHeroes(ctx context.Context) ([]api.HeroData, error)
	GetAbilities(ctx context.Context) ([]api.AbilityData, error)
}

// CatalogService builds the process-wide reference catalog once at startup.
// Upstream is the source of truth; the sqlite copy is written on success and
// read back when upstream is unreachable. There is no reload: the catalog is
// immutable for the life of the process.
type CatalogService struct {
	client CatalogAPI
	repo   *repository.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(client *api.Client, repo *repository.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{client: client, repo: repo, logger: logger}
}

func (s *CatalogService) Bootstrap(ctx context.Context) (*catalog.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.BootstrapTimeout)
	defer cancel()

	heroes, abilities, err := s.fetchUpstream(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("upstream catalog fetch failed, falling back to local copy")
		return s.loadLocal(ctx)
	}

	if err := s.repo.ReplaceHeroes(ctx, heroes); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist hero catalog")
	}
	if err := s.repo.ReplaceAbilities(ctx, abilities); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist ability catalog")
	}

	cat := catalog.New(heroes, abilities)
	s.logger.Info().
		Int("heroes", cat.HeroCount()).
		Int("abilities", cat.AbilityCount()).
		Msg("reference catalog loaded from upstream")
	return cat, nil
}

func (s *CatalogService) fetchUpstream(ctx context.Context) ([]domain.Hero, []domain.Ability, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	g, gCtx := errgroup.WithContext(apiCtx)

	var heroData []api.HeroData
	var abilityData []api.AbilityData

	g.Go(func() error {
		var err error
		heroData, err = s.client.GetHeroes(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		abilityData, err = s.client.GetAbilities(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch reference catalog: %w", err)
	}

	heroes := make([]domain.Hero, len(heroData))
	for i, h := range heroData {
		heroes[i] = domain.Hero{
			ID:               h.ID,
			Name:             h.Name,
			ShortName:        h.ShortName,
			Picture:          h.Picture,
			PrimaryAttribute: h.PrimaryAttribute,
			AttackType:       h.AttackType,
		}
	}

	abilities := make([]domain.Ability, len(abilityData))
	for i, a := range abilityData {
		abilities[i] = domain.Ability{
			ID:                a.ID,
			Name:              a.Name,
			ShortName:         a.ShortName,
			HeroID:            a.HeroID,
			IsUltimate:        a.IsUltimate,
			HasScepterUpgrade: a.HasScepterUpgrade,
			HasShardUpgrade:   a.HasShardUpgrade,
			Icon:              a.Icon,
		}
	}

	return heroes, abilities, nil
}

func (s *CatalogService) loadLocal(ctx context.Context) (*catalog.Catalog, error) {
	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	heroes, err := s.repo.LoadHeroes(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load local hero catalog: %w", err)
	}
	abilities, err := s.repo.LoadAbilities(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load local ability catalog: %w", err)
	}
	if len(heroes) == 0 && len(abilities) == 0 {
		return nil, fmt.Errorf("no local catalog available")
	}

	cat := catalog.New(heroes, abilities)
	s.logger.Info().
		Int("heroes", cat.HeroCount()).
		Int("abilities", cat.AbilityCount()).
		Msg("reference catalog loaded from local copy")
	return cat, nil
}

// ProvideCatalog runs the bootstrap for DI consumers.
func ProvideCatalog(svc *CatalogService) (*catalog.Catalog, error) {
	return svc.Bootstrap(context.Background())
}
