package api

import (
	"context"
	"fmt"
	"net/url"
)

func withPatch(path, patch string) string {
	if patch == "" {
		return path
	}
	return path + "?patch=" + url.QueryEscape(patch)
}

func (c *Client) GetHeroes(ctx context.Context) ([]HeroData, error) {
	return doRequest[[]HeroData](ctx, c, "/api/v2/heroes")
}

func (c *Client) GetAbilities(ctx context.Context) ([]AbilityData, error) {
	return doRequest[[]AbilityData](ctx, c, "/api/v2/abilities")
}

func (c *Client) GetAbilityStats(ctx context.Context, patch string) ([]AbilityStatData, error) {
	return doRequest[[]AbilityStatData](ctx, c, withPatch("/api/v2/ability-stats", patch))
}

func (c *Client) GetPickPositions(ctx context.Context, abilityID int32, patch string) ([]PickPositionData, error) {
	path := fmt.Sprintf("/api/v2/ability-stats/%d/positions", abilityID)
	return doRequest[[]PickPositionData](ctx, c, withPatch(path, patch))
}

func (c *Client) GetPairStats(ctx context.Context, patch string) ([]PairStatData, error) {
	return doRequest[[]PairStatData](ctx, c, withPatch("/api/v2/pair-stats", patch))
}

func (c *Client) GetTripletStats(ctx context.Context, patch string) ([]TripletStatData, error) {
	return doRequest[[]TripletStatData](ctx, c, withPatch("/api/v2/triplet-stats", patch))
}

func (c *Client) GetHeroStats(ctx context.Context, patch string) ([]HeroStatData, error) {
	return doRequest[[]HeroStatData](ctx, c, withPatch("/api/v2/hero-stats", patch))
}

func (c *Client) GetFacetStats(ctx context.Context, patch string) ([]FacetStatData, error) {
	return doRequest[[]FacetStatData](ctx, c, withPatch("/api/v2/facet-stats", patch))
}

func (c *Client) GetLeaderboard(ctx context.Context, region string) ([]LeaderboardEntryData, error) {
	path := "/api/v2/leaderboard"
	if region != "" {
		path += "?region=" + url.QueryEscape(region)
	}
	return doRequest[[]LeaderboardEntryData](ctx, c, path)
}

func (c *Client) GetRatingDistribution(ctx context.Context) ([]RatingBandData, error) {
	return doRequest[[]RatingBandData](ctx, c, "/api/v2/rating-distribution")
}

func (c *Client) GetPlayer(ctx context.Context, steamID string) (*PlayerData, error) {
	return doRequest[*PlayerData](ctx, c, "/api/v2/players/"+url.PathEscape(steamID))
}

// GetSession returns the authenticated identity, or nil when nobody is
// logged in. Login/logout themselves are external redirects this service
// never proxies.
func (c *Client) GetSession(ctx context.Context) (*SessionData, error) {
	return doRequest[*SessionData](ctx, c, "/api/v2/session")
}

type HeroData struct {
	ID               int32  `json:"id"`
	Name             string `json:"name"`
	ShortName        string `json:"short_name"`
	Picture          string `json:"picture"`
	PrimaryAttribute string `json:"primary_attribute"`
	AttackType       string `json:"attack_type"`
}

type AbilityData struct {
	ID                int32  `json:"id"`
	Name              string `json:"name"`
	ShortName         string `json:"short_name"`
	HeroID            int32  `json:"hero_id"`
	IsUltimate        bool   `json:"is_ultimate"`
	HasScepterUpgrade bool   `json:"has_scepter_upgrade"`
	HasShardUpgrade   bool   `json:"has_shard_upgrade"`
	Icon              string `json:"icon"`
}

type AbilityStatData struct {
	AbilityID       int32   `json:"ability_id"`
	Picks           int     `json:"picks"`
	Wins            int     `json:"wins"`
	Winrate         float64 `json:"winrate"`
	AvgPickPosition float64 `json:"avg_pick_position"`
	WilsonLower     float64 `json:"wilson_lower"`
	WilsonUpper     float64 `json:"wilson_upper"`
}

type PickPositionData struct {
	Pick        int     `json:"pick"`
	Total       int     `json:"total"`
	Wins        int     `json:"wins"`
	Winrate     float64 `json:"winrate"`
	WilsonLower float64 `json:"wilson_lower"`
	WilsonUpper float64 `json:"wilson_upper"`
}

type PairStatData struct {
	AbilityOne int32   `json:"ability_one"`
	AbilityTwo int32   `json:"ability_two"`
	Picks      int     `json:"picks"`
	Wins       int     `json:"wins"`
	Winrate    float64 `json:"winrate"`
}

type TripletStatData struct {
	AbilityOne   int32   `json:"ability_one"`
	AbilityTwo   int32   `json:"ability_two"`
	AbilityThree int32   `json:"ability_three"`
	Picks        int     `json:"picks"`
	Winrate      float64 `json:"winrate"`
}

type HeroStatData struct {
	HeroID      int32   `json:"hero_id"`
	Picks       int     `json:"picks"`
	Wins        int     `json:"wins"`
	Winrate     float64 `json:"winrate"`
	WilsonLower float64 `json:"wilson_lower"`
	WilsonUpper float64 `json:"wilson_upper"`
}

type FacetStatData struct {
	HeroID    int32   `json:"hero_id"`
	FacetSlot int     `json:"facet_slot"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	Picks     int     `json:"picks"`
	Wins      int     `json:"wins"`
	Winrate   float64 `json:"winrate"`
}

type LeaderboardEntryData struct {
	SteamID    string  `json:"steam_id"`
	Nickname   string  `json:"nickname"`
	Rating     int     `json:"rating"`
	Region     string  `json:"region"`
	Rank       int     `json:"rank"`
	Percentile float64 `json:"percentile"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
}

type RatingBandData struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

type PlayerData struct {
	SteamID      string  `json:"steam_id"`
	Nickname     string  `json:"nickname"`
	Rating       int     `json:"rating"`
	Region       string  `json:"region"`
	GlobalRank   int     `json:"global_rank"`
	RegionalRank int     `json:"regional_rank"`
	Percentile   float64 `json:"percentile"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
}

type SessionData struct {
	SteamID  string `json:"steam_id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}
