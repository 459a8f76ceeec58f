package review

import (
	"errors"
	"net/http"

	"github.com/labstack/echo"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/model/entity"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
)

func (a *ApiWrapper) SubmitReview(c echo.Context) error {
	var review entity.Review
	if err := c.Bind(&review); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "malformed request body",
		})
	}
	review.UserID = c.Request().Header.Get("X-User-ID")

	if err := c.Validate(&review); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": err.Error(),
		})
	}

	if err := a.ReviewService.SubmitReview(&review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"message": "place not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
	}

	return c.JSON(http.StatusCreated, review)
}
