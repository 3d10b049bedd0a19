package domain

import (
	"time"
)

type Hero struct {
	ID               int32
	Name             string
	ShortName        string
	Picture          string
	PrimaryAttribute string
	AttackType       string
}

type Ability struct {
	ID                int32
	Name              string
	ShortName         string
	HeroID            int32 // 0 when the catalog does not record an owner
	IsUltimate        bool
	HasScepterUpgrade bool
	HasShardUpgrade   bool
	Icon              string
}

// ResolvedSlot is a draft slot id resolved against the reference catalog.
// A negative ability id encodes "this slot was a hero body": the hero's
// innate self rather than a learnable ability. Pointer fields stay nil when
// the branch that produced the slot has no data for them, so consumers can
// tell "absent" from a zero value.
type ResolvedSlot struct {
	AbilityID     int32
	Name          string
	ShortName     string
	IsUltimate    bool
	IsHeroBody    bool
	HeroID        *int32
	HeroPicture   *string
	OwnerHeroID   *int32
	OwnerHeroName *string
}

// TripletStat is an upstream three-ability aggregate. Rates are fractions
// in [0,1] as delivered by the aggregation API.
type TripletStat struct {
	AbilityOne   int32
	AbilityTwo   int32
	AbilityThree int32
	Picks        int
	Winrate      float64
}

// PickPositionStat is one row of the sparse per-pick-slot series for an
// ability. Pick is 1-based.
type PickPositionStat struct {
	Pick        int
	Total       int
	Wins        int
	Winrate     float64
	WilsonLower float64
	WilsonUpper float64
}

// RatingBand counts players whose rating falls in the fixed-width bucket
// starting at Rating.
type RatingBand struct {
	Rating float64
	Count  int
}

type PlayerProfile struct {
	SteamID      string
	Nickname     string
	Rating       int
	Region       string
	GlobalRank   int
	RegionalRank int
	Percentile   float64
	Wins         int
	Losses       int
	FetchedAt    time.Time
}
