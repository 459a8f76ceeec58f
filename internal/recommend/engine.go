// Package recommend ranks catalog places against a travel plan or a
// long-term preference profile. It performs no I/O: candidates, the
// social context, and the clock all arrive materialized from the caller.
package recommend

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

// ErrInvalidRequest marks a malformed request: missing area, missing
// travel type, or an empty desired tag set. It is a caller bug, not a
// retryable condition. Check with errors.Is.
var ErrInvalidRequest = errors.New("invalid recommendation request")

// SocialContext carries a requester's trust graph, pre-fetched by the
// caller. A nil *SocialContext on the Request means the request is
// anonymous and the social step is skipped entirely.
type SocialContext struct {
	UserID string
	// Edges maps connection user id to trust strength in [0, 1].
	Edges map[string]float64
	// Endorsements maps place id to reviews left by the requester's
	// connections, ratings normalized to [0, 1].
	Endorsements map[string][]entity.PlaceEndorsement
}

// Request is one recommendation invocation. Exactly one of Plan or
// Profile drives the desired tags; Plan wins when both are set.
// Area is only consulted on the profile fallback path, since a plan
// carries its own area.
type Request struct {
	Plan    *entity.TravelPlan
	Profile *entity.UserProfile
	Area    string
	Social  *SocialContext
	Limit   int
	// Now anchors the open-now path. The engine never reads the wall
	// clock itself.
	Now time.Time
}

// ScoreBreakdown is the per-term decomposition of a final score.
type ScoreBreakdown struct {
	TagScore      float64 `json:"tag_score"`
	CategoryBonus float64 `json:"category_bonus"`
	TimingBonus   float64 `json:"timing_bonus"`
	SocialBonus   float64 `json:"social_bonus"`
}

// RecommendedPlace is a ranked catalog entry with its explanation.
type RecommendedPlace struct {
	Place       entity.Place   `json:"place"`
	Score       float64        `json:"score"`
	MatchedTags []string       `json:"matched_tags"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

// criteria is the normalized form of a Request, shared by the plan and
// the profile paths so steps 1-2 and 4-5 of the pipeline are identical.
type criteria struct {
	area          string
	tags          []string
	specialNeeds  []string
	category      entity.Category
	budgetCeiling entity.BudgetTier
	avoid         map[string]struct{}
	openNow       bool
}

// Recommend filters, scores and ranks candidates for the request.
//
// Candidates are expected to be pre-filtered by area by the accessor
// layer; the engine only re-applies eligibility rules it owns. An empty
// candidate list, or one fully eliminated by hard filters, yields an
// empty ranked list and no error.
func Recommend(req Request, candidates []entity.Place) ([]RecommendedPlace, error) {
	c, err := req.criteria()
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultMaxResults
	}

	maxBase := c.maxBaseScore()
	socialCap := socialBiasCap * maxBase

	ranked := make([]RecommendedPlace, 0, len(candidates))
	for _, place := range candidates {
		if !c.eligible(place, req.Now) {
			continue
		}

		var b ScoreBreakdown
		var matched []string
		for _, tag := range c.tags {
			if place.HasTag(tag) {
				matched = append(matched, tag)
				b.TagScore += tagWeight(tag)
			}
		}
		if c.category != "" && place.Category == c.category {
			b.CategoryBonus = categoryMatchBonus
		}
		if c.openNow && hasKnownWindow(place) {
			b.TimingBonus = openNowBonus
		}
		// Social bias can reorder peers but never rescues a place with
		// no tag overlap, so a connection's enthusiasm cannot outrank
		// an actual match.
		if req.Social != nil && b.TagScore > 0 {
			b.SocialBonus = socialBonus(req.Social, place.PlaceID, socialCap)
		}

		ranked = append(ranked, RecommendedPlace{
			Place:       place,
			Score:       b.TagScore + b.CategoryBonus + b.TimingBonus + b.SocialBonus,
			MatchedTags: matched,
			Breakdown:   b,
		})
	}

	// Total deterministic order: score descending, then place id.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Place.PlaceID < ranked[j].Place.PlaceID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (r Request) criteria() (criteria, error) {
	if r.Plan != nil {
		return planCriteria(r.Plan)
	}
	if r.Profile != nil {
		return profileCriteria(r.Profile, r.Area)
	}
	return criteria{}, fmt.Errorf("%w: neither plan nor profile supplied", ErrInvalidRequest)
}

func planCriteria(plan *entity.TravelPlan) (criteria, error) {
	if plan.Area == "" {
		return criteria{}, fmt.Errorf("%w: plan has no area", ErrInvalidRequest)
	}
	if plan.TravelType == "" {
		return criteria{}, fmt.Errorf("%w: plan has no travel type", ErrInvalidRequest)
	}
	tags := entity.DedupeTags(plan.ExperienceTags)
	if len(tags) == 0 {
		return criteria{}, fmt.Errorf("%w: plan has no experience tags", ErrInvalidRequest)
	}
	return criteria{
		area:          plan.Area,
		tags:          tags,
		specialNeeds:  plan.SpecialNeeds,
		category:      plan.Category,
		budgetCeiling: plan.BudgetCeiling,
		openNow:       plan.Dates.Type == entity.DateIntentNow,
	}, nil
}

func profileCriteria(profile *entity.UserProfile, area string) (criteria, error) {
	if area == "" {
		return criteria{}, fmt.Errorf("%w: profile fallback needs an area", ErrInvalidRequest)
	}
	tags := entity.DedupeTags(append(append([]string{}, profile.Activities...), profile.PlaceTypes...))
	if len(tags) == 0 {
		return criteria{}, fmt.Errorf("%w: profile has no activities or place types", ErrInvalidRequest)
	}
	avoid := make(map[string]struct{}, len(profile.AvoidPlaces))
	for _, a := range profile.AvoidPlaces {
		avoid[a] = struct{}{}
	}
	return criteria{
		area:          area,
		tags:          tags,
		budgetCeiling: profile.BudgetTier,
		avoid:         avoid,
	}, nil
}

// eligible is the hard filter: elimination, never a penalty. A place
// failing here is absent from the output regardless of tag overlap or
// social signal.
func (c criteria) eligible(place entity.Place, now time.Time) bool {
	if c.area != "" && place.Area != c.area {
		return false
	}
	if c.budgetCeiling.Known() && place.BudgetTier.Known() && !place.BudgetTier.Leq(c.budgetCeiling) {
		return false
	}
	for _, need := range c.specialNeeds {
		if !contains(place.Accessibility, need) {
			return false
		}
	}
	if _, avoided := c.avoid[string(place.Category)]; avoided {
		return false
	}
	if c.openNow && !place.OpenAt(now.Hour()) {
		return false
	}
	return true
}

// maxBaseScore is the highest base score any candidate could earn for
// these criteria. The social cap is defined relative to it.
func (c criteria) maxBaseScore() float64 {
	total := 0.0
	for _, tag := range c.tags {
		total += tagWeight(tag)
	}
	if c.category != "" {
		total += categoryMatchBonus
	}
	if c.openNow {
		total += openNowBonus
	}
	return total
}

func socialBonus(social *SocialContext, placeID string, bound float64) float64 {
	bonus := 0.0
	for _, e := range social.Endorsements[placeID] {
		strength, connected := social.Edges[e.UserID]
		if !connected {
			continue
		}
		bonus += strength * e.Rating
	}
	if bonus > bound {
		return bound
	}
	return bonus
}

func hasKnownWindow(place entity.Place) bool {
	return place.OpenHour != 0 || place.CloseHour != 0
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
