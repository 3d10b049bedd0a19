// Package catalog holds the static hero/ability reference tables and
// resolves raw draft slot ids against them. The catalog is built once at
// startup and never mutated afterwards, so it is safe to share without
// locking.
package catalog

import (
	"abilitydraft-stats/internal/domain"
)

type Catalog struct {
	heroes    map[int32]domain.Hero
	abilities map[int32]domain.Ability
}

func New(heroes []domain.Hero, abilities []domain.Ability) *Catalog {
	c := &Catalog{
		heroes:    make(map[int32]domain.Hero, len(heroes)),
		abilities: make(map[int32]domain.Ability, len(abilities)),
	}
	for _, h := range heroes {
		c.heroes[h.ID] = h
	}
	for _, a := range abilities {
		c.abilities[a.ID] = a
	}
	return c
}

func (c *Catalog) Hero(id int32) (domain.Hero, bool) {
	h, ok := c.heroes[id]
	return h, ok
}

func (c *Catalog) Ability(id int32) (domain.Ability, bool) {
	a, ok := c.abilities[id]
	return a, ok
}

func (c *Catalog) HeroCount() int    { return len(c.heroes) }
func (c *Catalog) AbilityCount() int { return len(c.abilities) }
