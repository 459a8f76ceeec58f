package profile

import (
	"errors"
	"net/http"

	"github.com/labstack/echo"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
)

func (a *ApiWrapper) GetProfile(c echo.Context) error {
	profile, err := a.ProfileService.GetProfile(c.Param("userID"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "profile not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, profile)
}

func (a *ApiWrapper) SaveProfile(c echo.Context) error {
	var profile entity.UserProfile
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "malformed request body",
		})
	}
	// The path owns the identity; the body cannot reassign it.
	profile.UserID = c.Param("userID")

	if err := a.ProfileService.SaveProfile(&profile); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, profile)
}

func (a *ApiWrapper) GetCompleteness(c echo.Context) error {
	result, err := a.ProfileService.ScoreProfile(c.Param("userID"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "profile not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, result)
}

func (a *ApiWrapper) GetSuggestion(c echo.Context) error {
	suggestion, err := a.ProfileService.SuggestNextField(c.Param("userID"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "profile not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
	}
	if suggestion == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, suggestion)
}
