package util

import (
	"github.com/labstack/echo"

	"github.com/iv4shk3v1ch/trust-travel-sub001/config"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/handler/chat"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/handler/place"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/handler/profile"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/handler/review"
	serv "github.com/iv4shk3v1ch/trust-travel-sub001/internal/service/util"
)

func InitHandler(config *config.AppConfig, e *echo.Echo, servWrapper *serv.ServiceWrapper) {
	place.InitRoute(e, servWrapper)
	profile.InitRoute(e, servWrapper)
	review.InitRoute(e, servWrapper)
	chat.InitRoute(e, servWrapper)
}
