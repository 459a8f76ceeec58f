package review

import (
	"github.com/labstack/echo"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service/util"
)

type ApiWrapper struct {
	ReviewService service.ReviewService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper) {
	api := ApiWrapper{
		ReviewService: servWrapper.ReviewService,
	}
	api.registerRouter(e)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo) {
	group := e.Group("/api/v1/review")
	group.POST("", a.SubmitReview)
}
