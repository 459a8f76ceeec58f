// Package chat implements the scripted preference-elicitation bot.
// It is keyword matching against a fixed script, not language
// understanding: tokens map to canonical profile values, and the next
// question always comes from the completeness scorer's suggestion.
package chat

import (
	"strconv"
	"strings"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/completeness"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

// Session is the caller-held conversation state: which profile field
// the last question asked about.
type Session struct {
	PendingField string `json:"pending_field"`
}

// Response is one scripted turn.
type Response struct {
	Reply     string  `json:"reply"`
	Session   Session `json:"session"`
	Done      bool    `json:"done"`
	NextField string  `json:"next_field,omitempty"`
}

// prompts is the question script, keyed by completeness field name.
var prompts = map[string]string{
	"display_name":       "What should we call you?",
	"age":                "How old are you?",
	"gender":             "How do you identify? You can skip this one.",
	"trip_style":         "What's your travel style? Think slow-travel, packed-itinerary, spontaneous...",
	"activities":         "Which activities do you enjoy on a trip? Name a couple.",
	"place_types":        "What kinds of places draw you in? Mountains, markets, beaches?",
	"avoid_places":       "Anything you'd rather we keep out of your results? Say none if nothing.",
	"food_preferences":   "What do you like to eat when traveling?",
	"food_restrictions":  "Any food restrictions we should respect? Say none if not.",
	"personality_traits": "How would friends describe you? Give me two words.",
	"budget_tier":        "What's your budget like: low, medium, or high?",
}

// keywordValues maps message tokens to (field, canonical value).
var keywordValues = map[string]struct{ field, value string }{
	"hike":        {"activities", "hiking"},
	"hiking":      {"activities", "hiking"},
	"trek":        {"activities", "hiking"},
	"museum":      {"activities", "museums"},
	"museums":     {"activities", "museums"},
	"art":         {"activities", "museums"},
	"nightlife":   {"activities", "nightlife"},
	"party":       {"activities", "nightlife"},
	"shopping":    {"activities", "shopping"},
	"swim":        {"activities", "swimming"},
	"swimming":    {"activities", "swimming"},
	"photography": {"activities", "photography"},

	"mountain":  {"place_types", "mountains"},
	"mountains": {"place_types", "mountains"},
	"beach":     {"place_types", "beaches"},
	"beaches":   {"place_types", "beaches"},
	"market":    {"place_types", "markets"},
	"markets":   {"place_types", "markets"},
	"city":      {"place_types", "cities"},
	"cities":    {"place_types", "cities"},

	"thai":       {"food_preferences", "thai"},
	"italian":    {"food_preferences", "italian"},
	"seafood":    {"food_preferences", "seafood"},
	"street":     {"food_preferences", "street-food"},
	"spicy":      {"food_preferences", "spicy"},
	"vegetarian": {"food_restrictions", "vegetarian"},
	"vegan":      {"food_restrictions", "vegan"},
	"halal":      {"food_restrictions", "halal"},
	"kosher":     {"food_restrictions", "kosher"},

	"curious":     {"personality_traits", "curious"},
	"introvert":   {"personality_traits", "introvert"},
	"extrovert":   {"personality_traits", "extrovert"},
	"adventurous": {"personality_traits", "adventurous"},
	"spontaneous": {"personality_traits", "spontaneous"},

	"cheap":    {"budget_tier", string(entity.BudgetLow)},
	"low":      {"budget_tier", string(entity.BudgetLow)},
	"medium":   {"budget_tier", string(entity.BudgetMedium)},
	"moderate": {"budget_tier", string(entity.BudgetMedium)},
	"high":     {"budget_tier", string(entity.BudgetHigh)},
	"luxury":   {"budget_tier", string(entity.BudgetHigh)},
	"splurge":  {"budget_tier", string(entity.BudgetHigh)},
}

// arrayFields are the profile fields where "none" is a valid answer,
// recorded as an explicit empty set rather than left unknown.
var arrayFields = map[string]bool{
	"activities":         true,
	"place_types":        true,
	"avoid_places":       true,
	"food_preferences":   true,
	"food_restrictions":  true,
	"personality_traits": true,
}

// Respond consumes one user message and produces the scripted reply.
// The profile is updated in place; the caller persists it.
func Respond(sess Session, profile *entity.UserProfile, message string) Response {
	tokens := tokenize(message)

	applied := applyKeywords(profile, tokens)
	applied = applyPendingScalar(sess, profile, tokens, message) || applied
	if isNone(tokens) && arrayFields[sess.PendingField] {
		setEmptySet(profile, sess.PendingField)
		applied = true
	}
	profile.Normalize()

	suggestion, more := completeness.SuggestNextField(profile)
	if !more {
		return Response{
			Reply: ack(applied) + "Your profile is all set. Ask me for recommendations any time!",
			Done:  true,
		}
	}
	return Response{
		Reply:     ack(applied) + prompts[suggestion.Field],
		Session:   Session{PendingField: suggestion.Field},
		NextField: suggestion.Field,
	}
}

func ack(applied bool) string {
	if applied {
		return "Got it. "
	}
	return "Sorry, I didn't catch anything there. "
}

func applyKeywords(p *entity.UserProfile, tokens []string) bool {
	applied := false
	for _, tok := range tokens {
		kv, ok := keywordValues[tok]
		if !ok {
			continue
		}
		applied = true
		switch kv.field {
		case "activities":
			p.Activities = append(p.Activities, kv.value)
		case "place_types":
			p.PlaceTypes = append(p.PlaceTypes, kv.value)
		case "food_preferences":
			p.FoodPreferences = append(p.FoodPreferences, kv.value)
		case "food_restrictions":
			p.FoodRestrictions = append(p.FoodRestrictions, kv.value)
		case "personality_traits":
			p.PersonalityTraits = append(p.PersonalityTraits, kv.value)
		case "budget_tier":
			p.BudgetTier = entity.BudgetTier(kv.value)
		}
	}
	return applied
}

// applyPendingScalar fills free-text scalar fields from the answer to
// the question we just asked.
func applyPendingScalar(sess Session, p *entity.UserProfile, tokens []string, message string) bool {
	switch sess.PendingField {
	case "display_name":
		trimmed := strings.TrimSpace(message)
		if trimmed != "" && p.DisplayName == "" {
			p.DisplayName = trimmed
			return true
		}
	case "age":
		for _, tok := range tokens {
			if n, err := strconv.Atoi(tok); err == nil && n > 0 && n < 120 {
				p.Age = n
				return true
			}
		}
	case "gender":
		trimmed := strings.TrimSpace(strings.ToLower(message))
		if trimmed != "" && !isNone(tokens) {
			p.Gender = trimmed
			return true
		}
	case "trip_style":
		trimmed := strings.TrimSpace(strings.ToLower(message))
		if trimmed != "" {
			p.TripStyle = strings.ReplaceAll(trimmed, " ", "-")
			return true
		}
	}
	return false
}

func setEmptySet(p *entity.UserProfile, field string) {
	switch field {
	case "activities":
		p.Activities = []string{}
	case "place_types":
		p.PlaceTypes = []string{}
	case "avoid_places":
		p.AvoidPlaces = []string{}
	case "food_preferences":
		p.FoodPreferences = []string{}
	case "food_restrictions":
		p.FoodRestrictions = []string{}
	case "personality_traits":
		p.PersonalityTraits = []string{}
	}
}

func isNone(tokens []string) bool {
	for _, tok := range tokens {
		if tok == "none" || tok == "nothing" || tok == "skip" {
			return true
		}
	}
	return false
}

func tokenize(message string) []string {
	return strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
