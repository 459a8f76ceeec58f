package place

import (
	"errors"
	"net/http"

	"github.com/labstack/echo"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/recommend"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
)

func (a *ApiWrapper) GetPlaceById(c echo.Context) error {
	id := c.Param("id")

	place, err := a.PlaceService.GetPlaceByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "place not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, place)
}

func (a *ApiWrapper) GetPlaces(c echo.Context) error {
	filter := entity.PlaceFilter{
		Area:     c.QueryParam("area"),
		Category: entity.Category(c.QueryParam("category")),
	}

	places, err := a.PlaceService.FindPlaces(filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, places)
}

func (a *ApiWrapper) GetPlaceReviews(c echo.Context) error {
	reviews, err := a.ReviewService.ListByPlace(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, reviews)
}

// GetRecommendations ranks places for the caller's travel plan, or for
// their stored profile when no plan is in the body. The requesting
// user id, when present, is set by the auth layer in X-User-ID.
func (a *ApiWrapper) GetRecommendations(c echo.Context) error {
	var request entity.RecommendationRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "malformed request body",
		})
	}

	userID := c.Request().Header.Get("X-User-ID")

	ranked, err := a.PlaceService.Recommend(userID, &request)
	if errors.Is(err, recommend.ErrInvalidRequest) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": err.Error(),
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, ranked)
}
