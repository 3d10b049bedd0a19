package catalog

import "fmt"

// CDN path patterns for the static image assets recorded on reference
// entities. The frontend falls back to the entity's initial letter when an
// image 404s; the server just builds the URLs.

func HeroPortraitURL(cdnBase, picture string) string {
	if picture == "" {
		return ""
	}
	return fmt.Sprintf("%s/heroes/%s.png", cdnBase, picture)
}

func AbilityIconURL(cdnBase, shortName string) string {
	if shortName == "" {
		return ""
	}
	return fmt.Sprintf("%s/abilities/%s.png", cdnBase, shortName)
}

func FacetIconURL(cdnBase, icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf("%s/facets/%s.png", cdnBase, icon)
}

// SlotImageURL picks the right CDN path for a resolved slot: hero portrait
// for hero bodies, ability icon otherwise.
func (c *Catalog) SlotImageURL(cdnBase string, abilityID int32) string {
	if abilityID < 0 {
		if hero, ok := c.heroes[-abilityID]; ok {
			return HeroPortraitURL(cdnBase, hero.Picture)
		}
		return ""
	}
	if ability, ok := c.abilities[abilityID]; ok {
		return AbilityIconURL(cdnBase, ability.ShortName)
	}
	return ""
}
