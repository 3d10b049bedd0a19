package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"abilitydraft-stats/internal/constants"
	"abilitydraft-stats/internal/domain"
)

// CatalogRepository keeps a local copy of the hero/ability reference tables
// so the service can start when the upstream catalog endpoints are down.
type CatalogRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewCatalogRepository(sqlDB *sql.DB, logger zerolog.Logger) *CatalogRepository {
	return &CatalogRepository{db: sqlDB, logger: logger}
}

func (r *CatalogRepository) ReplaceHeroes(ctx context.Context, heroes []domain.Hero) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for i := 0; i < len(heroes); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(heroes))
		for _, h := range heroes[i:end] {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO heroes (id, name, short_name, picture, primary_attribute, attack_type, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (id) DO UPDATE SET
					name = excluded.name,
					short_name = excluded.short_name,
					picture = excluded.picture,
					primary_attribute = excluded.primary_attribute,
					attack_type = excluded.attack_type,
					updated_at = excluded.updated_at`,
				h.ID, h.Name, h.ShortName, h.Picture, h.PrimaryAttribute, h.AttackType, now,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert hero %d: %w", h.ID, err)
			}
		}
	}

	return tx.Commit()
}

func (r *CatalogRepository) ReplaceAbilities(ctx context.Context, abilities []domain.Ability) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for i := 0; i < len(abilities); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(abilities))
		for _, a := range abilities[i:end] {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO abilities (id, name, short_name, hero_id, is_ultimate, has_scepter_upgrade, has_shard_upgrade, icon, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (id) DO UPDATE SET
					name = excluded.name,
					short_name = excluded.short_name,
					hero_id = excluded.hero_id,
					is_ultimate = excluded.is_ultimate,
					has_scepter_upgrade = excluded.has_scepter_upgrade,
					has_shard_upgrade = excluded.has_shard_upgrade,
					icon = excluded.icon,
					updated_at = excluded.updated_at`,
				a.ID, a.Name, a.ShortName, a.HeroID, a.IsUltimate, a.HasScepterUpgrade, a.HasShardUpgrade, a.Icon, now,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert ability %d: %w", a.ID, err)
			}
		}
	}

	return tx.Commit()
}

func (r *CatalogRepository) LoadHeroes(ctx context.Context) ([]domain.Hero, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, short_name, picture, primary_attribute, attack_type FROM heroes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load heroes: %w", err)
	}
	defer rows.Close()

	var heroes []domain.Hero
	for rows.Next() {
		var h domain.Hero
		if err := rows.Scan(&h.ID, &h.Name, &h.ShortName, &h.Picture, &h.PrimaryAttribute, &h.AttackType); err != nil {
			return nil, fmt.Errorf("failed to scan hero: %w", err)
		}
		heroes = append(heroes, h)
	}
	return heroes, rows.Err()
}

func (r *CatalogRepository) LoadAbilities(ctx context.Context) ([]domain.Ability, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, short_name, hero_id, is_ultimate, has_scepter_upgrade, has_shard_upgrade, icon FROM abilities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load abilities: %w", err)
	}
	defer rows.Close()

	var abilities []domain.Ability
	for rows.Next() {
		var a domain.Ability
		if err := rows.Scan(&a.ID, &a.Name, &a.ShortName, &a.HeroID, &a.IsUltimate, &a.HasScepterUpgrade, &a.HasShardUpgrade, &a.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan ability: %w", err)
		}
		abilities = append(abilities, a)
	}
	return abilities, rows.Err()
}
