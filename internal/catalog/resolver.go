package catalog

import (
	"fmt"

	"abilitydraft-stats/internal/domain"
)

// Resolve maps a draft slot id to a display-friendly record. It is total
// over the full int32 domain: unknown ids degrade to a placeholder name,
// they never fail.
//
// Negative ids are hero bodies (abs(id) is the hero id). Positive ids are
// real abilities; the owner hero comes from the ability record, falling back
// to ownerHint when the record carries none.
func (c *Catalog) Resolve(abilityID int32, ownerHint *int32) domain.ResolvedSlot {
	if abilityID < 0 {
		return c.resolveHeroBody(abilityID)
	}
	return c.resolveAbility(abilityID, ownerHint)
}

func (c *Catalog) resolveHeroBody(abilityID int32) domain.ResolvedSlot {
	heroID := -abilityID
	slot := domain.ResolvedSlot{
		AbilityID:   abilityID,
		IsHeroBody:  true,
		HeroID:      &heroID,
		OwnerHeroID: &heroID,
	}
	if hero, ok := c.heroes[heroID]; ok {
		slot.Name = hero.Name
		slot.ShortName = hero.ShortName
		slot.HeroPicture = &hero.Picture
		slot.OwnerHeroName = &hero.Name
	} else {
		slot.Name = fmt.Sprintf("Hero #%d", heroID)
	}
	return slot
}

func (c *Catalog) resolveAbility(abilityID int32, ownerHint *int32) domain.ResolvedSlot {
	slot := domain.ResolvedSlot{AbilityID: abilityID}

	ability, ok := c.abilities[abilityID]
	if ok {
		slot.Name = ability.Name
		slot.ShortName = ability.ShortName
		slot.IsUltimate = ability.IsUltimate
	} else {
		slot.Name = fmt.Sprintf("Ability #%d", abilityID)
	}

	var ownerID int32
	switch {
	case ok && ability.HeroID != 0:
		ownerID = ability.HeroID
	case ownerHint != nil:
		ownerID = *ownerHint
	default:
		return slot
	}

	slot.OwnerHeroID = &ownerID
	if hero, found := c.heroes[ownerID]; found {
		slot.OwnerHeroName = &hero.Name
	}
	return slot
}

// OwnerOf reports the owning hero of a slot id, if one is known. Hero
// bodies always have an owner (themselves); abilities only when the catalog
// records one. This is the single ownership rule shared by every same-hero
// comparison, so pair and triple filtering can never diverge.
func (c *Catalog) OwnerOf(abilityID int32) (int32, bool) {
	if abilityID < 0 {
		return -abilityID, true
	}
	if ability, ok := c.abilities[abilityID]; ok && ability.HeroID != 0 {
		return ability.HeroID, true
	}
	return 0, false
}
