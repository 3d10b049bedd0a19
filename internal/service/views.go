package service

import (
	"abilitydraft-stats/internal/domain"
	"abilitydraft-stats/internal/stats"
)

// SlotView is the JSON shape of a resolved draft slot. Optional fields are
// omitted entirely when the resolving branch has no data for them, so
// clients can tell "no data" from a zero value.
type SlotView struct {
	AbilityID     int32   `json:"abilityId"`
	AbilityName   string  `json:"abilityName"`
	ShortName     string  `json:"shortName,omitempty"`
	IsUltimate    bool    `json:"isUltimate"`
	IsHeroAbility bool    `json:"isHeroAbility"`
	HeroID        *int32  `json:"heroId,omitempty"`
	HeroPicture   *string `json:"heroPicture,omitempty"`
	OwnerHeroID   *int32  `json:"ownerHeroId,omitempty"`
	OwnerHeroName *string `json:"ownerHeroName,omitempty"`
	IconURL       string  `json:"iconUrl,omitempty"`
}

func slotViewFrom(slot domain.ResolvedSlot, iconURL string) SlotView {
	return SlotView{
		AbilityID:     slot.AbilityID,
		AbilityName:   slot.Name,
		ShortName:     slot.ShortName,
		IsUltimate:    slot.IsUltimate,
		IsHeroAbility: slot.IsHeroBody,
		HeroID:        slot.HeroID,
		HeroPicture:   slot.HeroPicture,
		OwnerHeroID:   slot.OwnerHeroID,
		OwnerHeroName: slot.OwnerHeroName,
		IconURL:       iconURL,
	}
}

// AbilityRow is one row of the ability stats table. Rates are percentages.
type AbilityRow struct {
	Slot            SlotView `json:"slot"`
	Picks           int      `json:"picks"`
	Wins            int      `json:"wins"`
	Winrate         float64  `json:"winrate"`
	AvgPickPosition float64  `json:"avgPickPosition"`
	WilsonLower     float64  `json:"wilsonLower"`
	WilsonUpper     float64  `json:"wilsonUpper"`
}

// HiddenTripleRow carries a flagged companion for a pair. WinrateShift is
// the triplet winrate minus the pair winrate, in percentage points,
// computed against the pair aggregate at assembly time.
type HiddenTripleRow struct {
	Hidden       SlotView `json:"hidden"`
	Picks        int      `json:"picks"`
	Winrate      float64  `json:"winrate"`
	WinrateShift float64  `json:"winrateShift"`
}

type PairRow struct {
	SlotOne       SlotView          `json:"slotOne"`
	SlotTwo       SlotView          `json:"slotTwo"`
	Picks         int               `json:"picks"`
	Wins          int               `json:"wins"`
	Winrate       float64           `json:"winrate"`
	Synergy       *float64          `json:"synergy"`
	HiddenTriples []HiddenTripleRow `json:"hiddenTriples,omitempty"`
}

type HeroRow struct {
	HeroID      int32   `json:"heroId"`
	Name        string  `json:"name"`
	PortraitURL string  `json:"portraitUrl,omitempty"`
	Picks       int     `json:"picks"`
	Wins        int     `json:"wins"`
	Winrate     float64 `json:"winrate"`
	WilsonLower float64 `json:"wilsonLower"`
	WilsonUpper float64 `json:"wilsonUpper"`
}

type FacetRow struct {
	HeroID    int32   `json:"heroId"`
	HeroName  string  `json:"heroName"`
	FacetSlot int     `json:"facetSlot"`
	Name      string  `json:"name"`
	IconURL   string  `json:"iconUrl,omitempty"`
	Picks     int     `json:"picks"`
	Wins      int     `json:"wins"`
	Winrate   float64 `json:"winrate"`
}

type LeaderboardRow struct {
	SteamID    string  `json:"steamId"`
	Nickname   string  `json:"nickname"`
	Rating     int     `json:"rating"`
	Region     string  `json:"region"`
	Rank       int     `json:"rank"`
	Percentile float64 `json:"percentile"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
}

type CurveView struct {
	Slot   SlotView           `json:"slot"`
	Points []stats.CurvePoint `json:"points"`
}

type PlayerView struct {
	SteamID      string  `json:"steamId"`
	Nickname     string  `json:"nickname"`
	Rating       int     `json:"rating"`
	Region       string  `json:"region"`
	GlobalRank   int     `json:"globalRank"`
	RegionalRank int     `json:"regionalRank"`
	Percentile   float64 `json:"percentile"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	FetchedAt    string  `json:"fetchedAt,omitempty"`
}

type SessionView struct {
	SteamID  string `json:"steamId"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar,omitempty"`
}
