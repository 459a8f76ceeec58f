package chat

import (
	"net/http"

	"github.com/labstack/echo"

	script "github.com/iv4shk3v1ch/trust-travel-sub001/internal/chat"
)

type messageRequest struct {
	Message string         `json:"message" validate:"required"`
	Session script.Session `json:"session"`
}

func (a *ApiWrapper) PostMessage(c echo.Context) error {
	var request messageRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "malformed request body",
		})
	}
	if err := c.Validate(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": err.Error(),
		})
	}

	userID := c.Request().Header.Get("X-User-ID")
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"message": "chat requires a signed-in user",
		})
	}

	response, err := a.ChatService.HandleMessage(userID, request.Session, request.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, response)
}
