package catalog

import "testing"

func TestSlotImageURL(t *testing.T) {
	c := testCatalog()
	base := "https://cdn.example.com/img"

	tests := []struct {
		name      string
		abilityID int32
		want      string
	}{
		{"hero body uses portrait", -10, "https://cdn.example.com/img/heroes/axe_full.png"},
		{"ability uses icon", 100, "https://cdn.example.com/img/abilities/axe_berserkers_call.png"},
		{"unknown hero body", -999, ""},
		{"unknown ability", 12345, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SlotImageURL(base, tt.abilityID); got != tt.want {
				t.Errorf("SlotImageURL(%d) = %q, want %q", tt.abilityID, got, tt.want)
			}
		})
	}
}

func TestImageURLHelpersEmptyKey(t *testing.T) {
	if got := HeroPortraitURL("base", ""); got != "" {
		t.Errorf("HeroPortraitURL with empty picture = %q, want empty", got)
	}
	if got := AbilityIconURL("base", ""); got != "" {
		t.Errorf("AbilityIconURL with empty short name = %q, want empty", got)
	}
	if got := FacetIconURL("base", "brawler"); got != "base/facets/brawler.png" {
		t.Errorf("FacetIconURL = %q", got)
	}
}
