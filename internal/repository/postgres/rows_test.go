package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

func TestProfileRow_NilVsEmptySetsSurviveRoundTrip(t *testing.T) {
	profile := &entity.UserProfile{
		UserID:           "6a1f0a2e-9a6c-4c0c-8d2a-3b9d2f1e4c5b",
		DisplayName:      "Dana",
		Activities:       []string{"hiking"},
		FoodRestrictions: []string{}, // explicitly none
		AvoidPlaces:      nil,        // never answered
	}

	row := profileRowFromEntity(profile)

	// Unknown maps to NULL, answered-empty to the [] document.
	assert.Nil(t, row.AvoidPlaces)
	require.NotNil(t, row.FoodRestrictions)
	assert.JSONEq(t, "[]", string(row.FoodRestrictions))

	back := row.toEntity()
	assert.Nil(t, back.AvoidPlaces)
	require.NotNil(t, back.FoodRestrictions)
	assert.Empty(t, back.FoodRestrictions)
	assert.Equal(t, []string{"hiking"}, back.Activities)
}

func TestPlaceRow_ToEntity(t *testing.T) {
	row := placeRow{
		PlaceID:       "p1",
		Name:          "Garden Cafe",
		Category:      "cafe",
		Tags:          datatypes.JSON(`["relaxing","quiet"]`),
		BudgetTier:    "low",
		Area:          "old-town",
		Accessibility: datatypes.JSON(`["wheelchair"]`),
		OpenHour:      8,
		CloseHour:     18,
		Rating:        4.4,
	}

	place := row.toEntity()

	assert.Equal(t, entity.CategoryCafe, place.Category)
	assert.Equal(t, entity.BudgetLow, place.BudgetTier)
	assert.Equal(t, []string{"relaxing", "quiet"}, place.Tags)
	assert.Equal(t, []string{"wheelchair"}, place.Accessibility)
	assert.True(t, place.OpenAt(12))
	assert.False(t, place.OpenAt(20))
}

func TestSetFromJSON_MalformedDocumentIsUnknown(t *testing.T) {
	assert.Nil(t, setFromJSON(datatypes.JSON(`{"not":"an array"}`)))
}
