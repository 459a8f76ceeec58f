package postgres

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
)

// Row models own the table shapes; entities never carry gorm tags.
// Set-valued fields are stored as JSON columns so the nil-vs-empty
// distinction of the domain model survives a round trip: a nil set maps
// to SQL NULL, an explicit empty set to the JSON document [].

type placeRow struct {
	PlaceID       string         `gorm:"column:place_id;primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name          string         `gorm:"column:name;size:255"`
	Description   string         `gorm:"column:description;type:text"`
	Category      string         `gorm:"column:category;size:50;index"`
	Tags          datatypes.JSON `gorm:"column:tags"`
	BudgetTier    string         `gorm:"column:budget_tier;size:20"`
	Area          string         `gorm:"column:area;size:100;index"`
	Accessibility datatypes.JSON `gorm:"column:accessibility"`
	OpenHour      int            `gorm:"column:open_hour"`
	CloseHour     int            `gorm:"column:close_hour"`
	Rating        float64        `gorm:"column:rating"`
}

func (placeRow) TableName() string { return "places" }

func (r placeRow) toEntity() entity.Place {
	return entity.Place{
		PlaceID:       r.PlaceID,
		Name:          r.Name,
		Description:   r.Description,
		Category:      entity.Category(r.Category),
		Tags:          setFromJSON(r.Tags),
		BudgetTier:    entity.BudgetTier(r.BudgetTier),
		Area:          r.Area,
		Accessibility: setFromJSON(r.Accessibility),
		OpenHour:      r.OpenHour,
		CloseHour:     r.CloseHour,
		Rating:        r.Rating,
	}
}

type profileRow struct {
	UserID            string         `gorm:"column:user_id;primaryKey;type:uuid"`
	DisplayName       string         `gorm:"column:display_name;size:100"`
	Age               int            `gorm:"column:age"`
	Gender            string         `gorm:"column:gender;size:30"`
	BudgetTier        string         `gorm:"column:budget_tier;size:20"`
	TripStyle         string         `gorm:"column:trip_style;size:50"`
	Activities        datatypes.JSON `gorm:"column:activities"`
	PlaceTypes        datatypes.JSON `gorm:"column:place_types"`
	FoodPreferences   datatypes.JSON `gorm:"column:food_preferences"`
	FoodRestrictions  datatypes.JSON `gorm:"column:food_restrictions"`
	AvoidPlaces       datatypes.JSON `gorm:"column:avoid_places"`
	PersonalityTraits datatypes.JSON `gorm:"column:personality_traits"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
}

func (profileRow) TableName() string { return "user_profiles" }

func (r profileRow) toEntity() entity.UserProfile {
	return entity.UserProfile{
		UserID:            r.UserID,
		DisplayName:       r.DisplayName,
		Age:               r.Age,
		Gender:            r.Gender,
		BudgetTier:        entity.BudgetTier(r.BudgetTier),
		TripStyle:         r.TripStyle,
		Activities:        setFromJSON(r.Activities),
		PlaceTypes:        setFromJSON(r.PlaceTypes),
		FoodPreferences:   setFromJSON(r.FoodPreferences),
		FoodRestrictions:  setFromJSON(r.FoodRestrictions),
		AvoidPlaces:       setFromJSON(r.AvoidPlaces),
		PersonalityTraits: setFromJSON(r.PersonalityTraits),
	}
}

func profileRowFromEntity(p *entity.UserProfile) profileRow {
	return profileRow{
		UserID:            p.UserID,
		DisplayName:       p.DisplayName,
		Age:               p.Age,
		Gender:            p.Gender,
		BudgetTier:        string(p.BudgetTier),
		TripStyle:         p.TripStyle,
		Activities:        jsonFromSet(p.Activities),
		PlaceTypes:        jsonFromSet(p.PlaceTypes),
		FoodPreferences:   jsonFromSet(p.FoodPreferences),
		FoodRestrictions:  jsonFromSet(p.FoodRestrictions),
		AvoidPlaces:       jsonFromSet(p.AvoidPlaces),
		PersonalityTraits: jsonFromSet(p.PersonalityTraits),
	}
}

type reviewRow struct {
	ReviewID  string    `gorm:"column:review_id;primaryKey;type:uuid;default:uuid_generate_v4()"`
	UserID    string    `gorm:"column:user_id;type:uuid;index"`
	PlaceID   string    `gorm:"column:place_id;type:uuid;index"`
	Stars     int       `gorm:"column:stars"`
	Title     string    `gorm:"column:title;size:255"`
	Body      string    `gorm:"column:body;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewRow) TableName() string { return "reviews" }

func (r reviewRow) toEntity() entity.Review {
	return entity.Review{
		ReviewID:  r.ReviewID,
		UserID:    r.UserID,
		PlaceID:   r.PlaceID,
		Stars:     r.Stars,
		Title:     r.Title,
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
	}
}

func reviewRowFromEntity(review *entity.Review) reviewRow {
	return reviewRow{
		ReviewID:  review.ReviewID,
		UserID:    review.UserID,
		PlaceID:   review.PlaceID,
		Stars:     review.Stars,
		Title:     review.Title,
		Body:      review.Body,
		CreatedAt: review.CreatedAt,
	}
}

func jsonFromSet(set []string) datatypes.JSON {
	if set == nil {
		return nil
	}
	b, err := json.Marshal(set)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func setFromJSON(doc datatypes.JSON) []string {
	if doc == nil {
		return nil
	}
	var out []string
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil
	}
	if out == nil {
		out = []string{}
	}
	return out
}
