// Package authmeta talks to the external auth provider's user-metadata
// API. TrustTravel caches the latest travel plan there so the client
// can restore an in-progress plan after a redirect; the cache is
// best-effort and never read back by this service.
package authmeta

import (
	"net/http"

	"github.com/iv4shk3v1ch/trust-travel-sub001/config"
)

type Client struct {
	Client *http.Client
	Config *config.AppConfig
}

func New(config *config.AppConfig, client *http.Client) *Client {
	return &Client{
		Client: client,
		Config: config,
	}
}
