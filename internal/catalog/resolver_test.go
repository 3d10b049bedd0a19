package catalog

import (
	"testing"

	"abilitydraft-stats/internal/domain"
)

func testCatalog() *Catalog {
	heroes := []domain.Hero{
		{ID: 10, Name: "Axe", ShortName: "axe", Picture: "axe_full"},
		{ID: 20, Name: "Lina", ShortName: "lina", Picture: "lina_full"},
	}
	abilities := []domain.Ability{
		{ID: 100, Name: "Berserker's Call", ShortName: "axe_berserkers_call", HeroID: 10},
		{ID: 200, Name: "Laguna Blade", ShortName: "lina_laguna_blade", HeroID: 20, IsUltimate: true},
		{ID: 300, Name: "Orphaned Ability", ShortName: "orphan"},
	}
	return New(heroes, abilities)
}

func TestResolveHeroBody(t *testing.T) {
	c := testCatalog()

	slot := c.Resolve(-10, nil)
	if !slot.IsHeroBody {
		t.Error("negative id should resolve as hero body")
	}
	if slot.HeroID == nil || *slot.HeroID != 10 {
		t.Errorf("HeroID = %v, want 10", slot.HeroID)
	}
	if slot.Name != "Axe" {
		t.Errorf("Name = %q, want Axe", slot.Name)
	}
	if slot.OwnerHeroID == nil || *slot.OwnerHeroID != 10 {
		t.Errorf("OwnerHeroID = %v, want 10", slot.OwnerHeroID)
	}
	if slot.HeroPicture == nil || *slot.HeroPicture != "axe_full" {
		t.Errorf("HeroPicture = %v, want axe_full", slot.HeroPicture)
	}
}

func TestResolveUnknownHeroBody(t *testing.T) {
	c := testCatalog()

	slot := c.Resolve(-999, nil)
	if !slot.IsHeroBody {
		t.Error("negative id should resolve as hero body")
	}
	if slot.Name != "Hero #999" {
		t.Errorf("Name = %q, want placeholder Hero #999", slot.Name)
	}
	if slot.HeroID == nil || *slot.HeroID != 999 {
		t.Errorf("HeroID = %v, want 999", slot.HeroID)
	}
	if slot.HeroPicture != nil {
		t.Errorf("HeroPicture = %v, want absent", slot.HeroPicture)
	}
}

func TestResolveAbility(t *testing.T) {
	c := testCatalog()

	slot := c.Resolve(200, nil)
	if slot.IsHeroBody {
		t.Error("positive id should not resolve as hero body")
	}
	if slot.Name != "Laguna Blade" || !slot.IsUltimate {
		t.Errorf("slot = %+v, want Laguna Blade ultimate", slot)
	}
	if slot.OwnerHeroID == nil || *slot.OwnerHeroID != 20 {
		t.Errorf("OwnerHeroID = %v, want 20", slot.OwnerHeroID)
	}
	if slot.OwnerHeroName == nil || *slot.OwnerHeroName != "Lina" {
		t.Errorf("OwnerHeroName = %v, want Lina", slot.OwnerHeroName)
	}
	if slot.HeroID != nil {
		t.Errorf("HeroID = %v, want absent for a real ability", slot.HeroID)
	}
}

func TestResolveUnknownAbility(t *testing.T) {
	c := testCatalog()

	slot := c.Resolve(12345, nil)
	if slot.Name != "Ability #12345" {
		t.Errorf("Name = %q, want placeholder Ability #12345", slot.Name)
	}
	if slot.OwnerHeroID != nil {
		t.Errorf("OwnerHeroID = %v, want absent", slot.OwnerHeroID)
	}
}

func TestResolveOwnerHint(t *testing.T) {
	c := testCatalog()
	hint := int32(20)

	t.Run("hint fills a missing owner", func(t *testing.T) {
		slot := c.Resolve(300, &hint)
		if slot.OwnerHeroID == nil || *slot.OwnerHeroID != 20 {
			t.Errorf("OwnerHeroID = %v, want hinted 20", slot.OwnerHeroID)
		}
	})

	t.Run("recorded owner beats the hint", func(t *testing.T) {
		slot := c.Resolve(100, &hint)
		if slot.OwnerHeroID == nil || *slot.OwnerHeroID != 10 {
			t.Errorf("OwnerHeroID = %v, want recorded 10", slot.OwnerHeroID)
		}
	})

	t.Run("unknown ability with hint keeps the hint owner", func(t *testing.T) {
		slot := c.Resolve(12345, &hint)
		if slot.OwnerHeroID == nil || *slot.OwnerHeroID != 20 {
			t.Errorf("OwnerHeroID = %v, want hinted 20", slot.OwnerHeroID)
		}
	})
}

// Resolving an ability, then its owner as a hero body, must land on the
// same hero identity as the ability's own resolution — the two ownership
// code paths may never diverge.
func TestOwnershipRoundTrip(t *testing.T) {
	c := testCatalog()

	slot := c.Resolve(100, nil)
	if slot.OwnerHeroID == nil {
		t.Fatal("ability 100 should have an owner")
	}

	body := c.Resolve(-*slot.OwnerHeroID, nil)
	if body.OwnerHeroID == nil || *body.OwnerHeroID != *slot.OwnerHeroID {
		t.Errorf("hero body owner = %v, ability owner = %v, want identical", body.OwnerHeroID, slot.OwnerHeroID)
	}
	if body.OwnerHeroName == nil || slot.OwnerHeroName == nil || *body.OwnerHeroName != *slot.OwnerHeroName {
		t.Errorf("hero body name = %v, ability owner name = %v, want identical", body.OwnerHeroName, slot.OwnerHeroName)
	}

	ownerID, ok := c.OwnerOf(100)
	if !ok || ownerID != *slot.OwnerHeroID {
		t.Errorf("OwnerOf(100) = %d,%t, want %d", ownerID, ok, *slot.OwnerHeroID)
	}
	bodyOwner, ok := c.OwnerOf(-10)
	if !ok || bodyOwner != 10 {
		t.Errorf("OwnerOf(-10) = %d,%t, want 10,true", bodyOwner, ok)
	}
}

// The resolver is total: any id, including ones far outside the catalog,
// yields a placeholder rather than a panic.
func TestResolveIsTotal(t *testing.T) {
	c := testCatalog()

	for _, id := range []int32{0, 1, -1, 2147483647, -2147483647} {
		slot := c.Resolve(id, nil)
		if slot.Name == "" {
			t.Errorf("Resolve(%d) produced an empty name", id)
		}
		if (id < 0) != slot.IsHeroBody {
			t.Errorf("Resolve(%d).IsHeroBody = %t", id, slot.IsHeroBody)
		}
		if id < 0 && (slot.HeroID == nil || *slot.HeroID != -id) {
			t.Errorf("Resolve(%d).HeroID = %v, want %d", id, slot.HeroID, -id)
		}
	}
}
