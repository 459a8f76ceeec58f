package profile

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/completeness"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
)

type fakeProfileService struct {
	profiles map[string]*entity.UserProfile
	saved    *entity.UserProfile
}

func (f *fakeProfileService) GetProfile(userID string) (*entity.UserProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProfileService) SaveProfile(profile *entity.UserProfile) error {
	f.saved = profile
	return nil
}

func (f *fakeProfileService) ScoreProfile(userID string) (*completeness.ScoreResult, error) {
	p, err := f.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	result := completeness.Score(p)
	return &result, nil
}

func (f *fakeProfileService) SuggestNextField(userID string) (*completeness.FieldSuggestion, error) {
	p, err := f.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	suggestion, ok := completeness.SuggestNextField(p)
	if !ok {
		return nil, nil
	}
	return &suggestion, nil
}

func newContext(t *testing.T, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userID")
	c.SetParamValues(userID)
	return c, rec
}

func TestGetCompleteness(t *testing.T) {
	svc := &fakeProfileService{profiles: map[string]*entity.UserProfile{
		"u1": {UserID: "u1", DisplayName: "Dana"},
	}}
	api := ApiWrapper{ProfileService: svc}

	c, rec := newContext(t, http.MethodGet, "/api/v1/profile/u1/completeness", "", "u1")

	require.NoError(t, api.GetCompleteness(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":10`)
}

func TestGetCompleteness_UnknownProfileIs404(t *testing.T) {
	api := ApiWrapper{ProfileService: &fakeProfileService{}}

	c, rec := newContext(t, http.MethodGet, "/api/v1/profile/nope/completeness", "", "nope")

	require.NoError(t, api.GetCompleteness(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSuggestion_NoContentWhenComplete(t *testing.T) {
	svc := &fakeProfileService{profiles: map[string]*entity.UserProfile{
		"u1": {
			UserID: "u1", DisplayName: "Dana", Age: 29, Gender: "female",
			BudgetTier: entity.BudgetMedium, TripStyle: "slow-travel",
			Activities:        []string{"hiking", "museums"},
			PlaceTypes:        []string{"mountains", "markets"},
			FoodPreferences:   []string{"thai"},
			FoodRestrictions:  []string{},
			AvoidPlaces:       []string{},
			PersonalityTraits: []string{"curious", "introvert"},
		},
	}}
	api := ApiWrapper{ProfileService: svc}

	c, rec := newContext(t, http.MethodGet, "/api/v1/profile/u1/suggestion", "", "u1")

	require.NoError(t, api.GetSuggestion(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSaveProfile_PathOwnsIdentity(t *testing.T) {
	svc := &fakeProfileService{}
	api := ApiWrapper{ProfileService: svc}

	c, rec := newContext(t, http.MethodPut, "/api/v1/profile/u1",
		`{"user_id":"someone-else","display_name":"Dana"}`, "u1")

	require.NoError(t, api.SaveProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.saved)
	assert.Equal(t, "u1", svc.saved.UserID)
}
