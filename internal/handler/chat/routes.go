package chat

import (
	"github.com/labstack/echo"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service/util"
)

type ApiWrapper struct {
	ChatService service.ChatService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper) {
	api := ApiWrapper{
		ChatService: servWrapper.ChatService,
	}
	api.registerRouter(e)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo) {
	group := e.Group("/api/v1/chat")
	group.POST("/message", a.PostMessage)
}
