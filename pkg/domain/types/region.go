package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Region selects which Frontegg gateway the tool talks to
type Region string

const (
	RegionEU Region = "EU"
	RegionUS Region = "US"
	RegionAP Region = "AP"
)

// String returns the string representation
func (r Region) String() string {
	return string(r)
}

// gateway base URLs for the vendor auth endpoint
var gatewayURLs = map[Region]string{
	RegionEU: "https://api.frontegg.com",
	RegionUS: "https://api.us.frontegg.com",
	RegionAP: "https://api.ap.frontegg.com",
}

// identity service base URLs for user resources
var identityURLs = map[Region]string{
	RegionEU: "https://api.frontegg.com/identity",
	RegionUS: "https://api.us.frontegg.com/identity",
	RegionAP: "https://api.ap.frontegg.com/identity",
}

// GatewayURL returns the auth gateway base URL for the region
func (r Region) GatewayURL() string {
	return gatewayURLs[r]
}

// IdentityURL returns the identity service base URL for the region
func (r Region) IdentityURL() string {
	return identityURLs[r]
}

// ParseRegion parses a region string (case-insensitive)
func ParseRegion(raw string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := gatewayURLs[r]; !ok {
		return "", goerr.New("region must be one of: EU, US, AP", goerr.V("region", raw))
	}
	return r, nil
}
