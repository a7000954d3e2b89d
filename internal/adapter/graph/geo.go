package graph

import (
	"context"
	"net/url"

	"adpilot/internal/core/domain"
)

var geoTypes = map[string]domain.LocationType{
	"city":    domain.LocationCity,
	"country": domain.LocationCountry,
}

// SearchLocation returns the best geography match for query, or nil when
// the platform knows no city or country by that name.
func (c *Client) SearchLocation(ctx context.Context, acct domain.Account, query string) (*domain.Location, error) {
	res, err := c.get(ctx, acct.AccessToken, "search", url.Values{
		"type":           {"adgeolocation"},
		"q":              {query},
		"location_types": {`["city","country"]`},
		"limit":          {"1"},
	})
	if err != nil {
		return nil, err
	}

	first := res.Get("data.0")
	if !first.Exists() {
		return nil, nil
	}

	locType, ok := geoTypes[first.Get("type").String()]
	if !ok {
		return nil, nil
	}
	return &domain.Location{
		Key:         first.Get("key").String(),
		Name:        first.Get("name").String(),
		Type:        locType,
		CountryCode: first.Get("country_code").String(),
	}, nil
}
