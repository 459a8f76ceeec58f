package profile

import (
	"github.com/labstack/echo"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service/util"
)

type ApiWrapper struct {
	ProfileService service.ProfileService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper) {
	api := ApiWrapper{
		ProfileService: servWrapper.ProfileService,
	}
	api.registerRouter(e)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo) {
	group := e.Group("/api/v1/profile")
	group.GET("/:userID", a.GetProfile)
	group.PUT("/:userID", a.SaveProfile)
	group.GET("/:userID/completeness", a.GetCompleteness)
	group.GET("/:userID/suggestion", a.GetSuggestion)
}
