package place

import (
	"github.com/labstack/echo"

	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/service/util"
)

type ApiWrapper struct {
	PlaceService  service.PlaceService
	ReviewService service.ReviewService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper) {
	api := ApiWrapper{
		PlaceService:  servWrapper.PlaceService,
		ReviewService: servWrapper.ReviewService,
	}
	api.registerRouter(e)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo) {
	group := e.Group("/api/v1/place")
	group.GET("", a.GetPlaces)
	group.GET("/:id", a.GetPlaceById)
	group.GET("/:id/reviews", a.GetPlaceReviews)
	group.POST("/recommendations", a.GetRecommendations)
}
