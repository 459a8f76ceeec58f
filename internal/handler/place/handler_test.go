package place

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/recommend"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
)

type fakePlaceService struct {
	place      *entity.Place
	ranked     []recommend.RecommendedPlace
	recommends error
	lastUser   string
}

func (f *fakePlaceService) GetPlaceByID(id string) (*entity.Place, error) {
	if f.place == nil {
		return nil, repository.ErrNotFound
	}
	return f.place, nil
}

func (f *fakePlaceService) FindPlaces(filter entity.PlaceFilter) ([]entity.Place, error) {
	return nil, nil
}

func (f *fakePlaceService) Recommend(userID string, request *entity.RecommendationRequest) ([]recommend.RecommendedPlace, error) {
	f.lastUser = userID
	return f.ranked, f.recommends
}

type fakeReviewService struct{}

func (fakeReviewService) SubmitReview(review *entity.Review) error { return nil }
func (fakeReviewService) ListByPlace(placeID string) ([]entity.Review, error) {
	return []entity.Review{}, nil
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetPlaceById_NotFound(t *testing.T) {
	api := ApiWrapper{PlaceService: &fakePlaceService{}, ReviewService: fakeReviewService{}}
	c, rec := newContext(t, http.MethodGet, "/api/v1/place/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, api.GetPlaceById(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRecommendations_InvalidRequestIs400(t *testing.T) {
	svc := &fakePlaceService{recommends: recommend.ErrInvalidRequest}
	api := ApiWrapper{PlaceService: svc, ReviewService: fakeReviewService{}}

	c, rec := newContext(t, http.MethodPost, "/api/v1/place/recommendations", `{"plan":{}}`)

	require.NoError(t, api.GetRecommendations(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRecommendations_PassesRequesterHeader(t *testing.T) {
	svc := &fakePlaceService{ranked: []recommend.RecommendedPlace{}}
	api := ApiWrapper{PlaceService: svc, ReviewService: fakeReviewService{}}

	c, rec := newContext(t, http.MethodPost, "/api/v1/place/recommendations",
		`{"plan":{"area":"old-town","travel_type":"solo","experience_tags":["relaxing"]}}`)
	c.Request().Header.Set("X-User-ID", "u1")

	require.NoError(t, api.GetRecommendations(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", svc.lastUser)
}

func TestGetRecommendations_EmptyResultIs200(t *testing.T) {
	svc := &fakePlaceService{ranked: []recommend.RecommendedPlace{}}
	api := ApiWrapper{PlaceService: svc, ReviewService: fakeReviewService{}}

	c, rec := newContext(t, http.MethodPost, "/api/v1/place/recommendations",
		`{"plan":{"area":"old-town","travel_type":"solo","experience_tags":["relaxing"]}}`)

	require.NoError(t, api.GetRecommendations(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", strings.TrimSpace(rec.Body.String()))
}
