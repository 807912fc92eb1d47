package utils

import (
	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
)

// DefaultUserAgent is sent by clients created without an explicit agent.
const DefaultUserAgent = "movie-keeper-client"

// HTTPClient embeds *resty.Client so callers keep the full resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client speaking JSON through goccy/go-json.
// Every request carries Accept: application/json and the given User-Agent.
// Resty's own retries stay off: failed calls surface immediately and the
// caller decides whether to queue or retry them.
func NewHTTPClient(userAgent string) *HTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New().
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
