package api

import (
	"net/http"

	"github.com/hcasse/ltgen/internal/version"
	"github.com/hcasse/ltgen/server/result"
)

// HTTPGetInfo returns a HandlerFunc that retrieves information on the API and
// server. It requires no authentication.
func (api API) HTTPGetInfo() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetInfo)
}

func (api API) epGetInfo(req *http.Request) result.Result {
	resp := InfoModel{Version: version.Current}
	return result.OK(resp, "got API info")
}
