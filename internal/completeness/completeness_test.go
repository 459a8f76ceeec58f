package completeness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

// fullProfile has every scored field complete.
func fullProfile() *entity.UserProfile {
	return &entity.UserProfile{
		UserID:            "u1",
		DisplayName:       "Dana",
		Age:               29,
		Gender:            "female",
		BudgetTier:        entity.BudgetMedium,
		TripStyle:         "slow-travel",
		Activities:        []string{"hiking", "street-food"},
		PlaceTypes:        []string{"mountains", "markets"},
		FoodPreferences:   []string{"thai"},
		FoodRestrictions:  []string{},
		AvoidPlaces:       []string{},
		PersonalityTraits: []string{"curious", "introvert"},
	}
}

func TestFieldTableSumsTo100(t *testing.T) {
	sections := map[Section]int{}
	total := 0
	for _, f := range fieldTable {
		sections[f.Section] += f.Points
		total += f.Points
	}

	assert.Equal(t, 100, total)
	assert.Equal(t, 30, sections[SectionBasic])
	assert.Equal(t, 25, sections[SectionPreferences])
	assert.Equal(t, 20, sections[SectionFood])
	assert.Equal(t, 15, sections[SectionPersonality])
	assert.Equal(t, 10, sections[SectionBudget])
}

func TestScore_FullProfile(t *testing.T) {
	result := Score(fullProfile())

	assert.Equal(t, 100, result.Total)
	assert.True(t, result.IsComplete)
	assert.Empty(t, result.Missing)

	sum := 0
	for _, s := range result.Sections {
		assert.Equal(t, s.Possible, s.Earned)
		sum += s.Earned
	}
	assert.Equal(t, result.Total, sum)
}

func TestScore_EmptyProfile(t *testing.T) {
	result := Score(&entity.UserProfile{})

	assert.Zero(t, result.Total)
	assert.False(t, result.IsComplete)
	assert.Len(t, result.Missing, len(fieldTable))
}

func TestScore_SectionSubScoresSumToTotal(t *testing.T) {
	p := fullProfile()
	p.Gender = ""
	p.PersonalityTraits = nil

	result := Score(p)

	sum := 0
	for _, s := range result.Sections {
		sum += s.Earned
	}
	assert.Equal(t, result.Total, sum)
	assert.Equal(t, 75, result.Total)
}

func TestScore_Idempotent(t *testing.T) {
	p := fullProfile()
	p.PlaceTypes = []string{"mountains"}

	first := Score(p)
	second := Score(p)
	assert.Equal(t, first, second)
}

func TestScore_ArrayMinimums(t *testing.T) {
	// place_types needs two entries; one is not enough.
	p := fullProfile()
	p.PlaceTypes = []string{"mountains"}

	result := Score(p)

	assert.Equal(t, 94, result.Total)
	assert.Contains(t, result.Missing, "place_types")
	// place_types is optional, so the profile is still complete.
	assert.True(t, result.IsComplete)
}

func TestScore_AnsweredNoneIsNotUnknown(t *testing.T) {
	answered := fullProfile()
	answered.FoodRestrictions = []string{}

	unknown := fullProfile()
	unknown.FoodRestrictions = nil

	assert.Equal(t, 100, Score(answered).Total)
	assert.Equal(t, 92, Score(unknown).Total)
	assert.Contains(t, Score(unknown).Missing, "food_restrictions")
}

func TestScore_CompleteWithOptionalFieldsMissing(t *testing.T) {
	p := fullProfile()
	p.Gender = ""
	p.PersonalityTraits = nil
	p.AvoidPlaces = nil

	result := Score(p)

	assert.True(t, result.IsComplete)
	assert.Less(t, result.Total, 100)
}

func TestScore_IncompleteWhenRequiredFieldMissing(t *testing.T) {
	p := fullProfile()
	p.FoodPreferences = nil

	result := Score(p)

	assert.False(t, result.IsComplete)
	assert.Contains(t, result.Missing, "food_preferences")
}

func TestSuggestNextField(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *entity.UserProfile)
		expected string
	}{
		{
			name:     "empty profile suggests personality first on raw points",
			mutate:   func(p *entity.UserProfile) { *p = entity.UserProfile{} },
			expected: "personality_traits",
		},
		{
			name: "equal points break ties by section priority",
			mutate: func(p *entity.UserProfile) {
				// display_name (basic, 10) vs budget_tier (budget, 10).
				p.DisplayName = ""
				p.BudgetTier = ""
			},
			expected: "display_name",
		},
		{
			name:     "single missing optional field",
			mutate:   func(p *entity.UserProfile) { p.Gender = "" },
			expected: "gender",
		},
		{
			name:     "missing food preferences outweigh missing gender",
			mutate:   func(p *entity.UserProfile) { p.Gender = ""; p.FoodPreferences = nil },
			expected: "food_preferences",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fullProfile()
			tt.mutate(p)

			suggestion, ok := SuggestNextField(p)
			require.True(t, ok)
			assert.Equal(t, tt.expected, suggestion.Field)
			assert.NotEmpty(t, suggestion.Reason)
			assert.Positive(t, suggestion.Points)
		})
	}
}

func TestSuggestNextField_NoneWhenComplete(t *testing.T) {
	_, ok := SuggestNextField(fullProfile())
	assert.False(t, ok)
}
