package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const (
	distanceKilometer = "kilometer"

	// defaultRadiusKm applies to coordinate targeting without any radius.
	defaultRadiusKm = 10
	// minCityRadiusKm is the smallest radius the platform accepts for cities.
	minCityRadiusKm = 17
	// minCoordinateRadiusKm is the smallest radius asked for around a point.
	minCoordinateRadiusKm = 1
)

var coordinatePattern = regexp.MustCompile(`(-?\d{1,3}\.\d+)\s*,\s*(-?\d{1,3}\.\d+)`)

// Compile turns a completed draft into the platform targeting payload.
// Geography resolves in order: explicit latitude/longitude, then a
// coordinate hidden in the first location entry, then the declared type of
// that entry. Exactly one geography branch is ever populated.
func Compile(draft domain.DraftCampaign, customAudiences []string) (*domain.Targeting, error) {
	t := &domain.Targeting{
		Genders: compileGenders(draft.NormalizedGender()),
	}
	if draft.Age != nil {
		t.AgeMin = draft.Age.Min
		t.AgeMax = draft.Age.Max
	}

	geo, err := compileGeography(draft)
	if err != nil {
		return nil, err
	}
	t.GeoLocations = geo

	if len(draft.Interests) > 0 {
		t.FlexibleSpec = []domain.FlexibleSpec{{Interests: draft.Interests}}
	}
	for _, id := range customAudiences {
		if id == "" {
			continue
		}
		t.CustomAudiences = append(t.CustomAudiences, domain.AudienceRef{ID: id})
	}
	return t, nil
}

func compileGenders(g domain.Gender) []int {
	switch g {
	case domain.GenderMale:
		return []int{1}
	case domain.GenderFemale:
		return []int{2}
	default:
		return []int{1, 2}
	}
}

func compileGeography(draft domain.DraftCampaign) (domain.GeoLocations, error) {
	if draft.HasCoordinates() {
		radius := draft.RadiusKm
		if radius <= 0 {
			radius = defaultRadiusKm
		}
		return customLocation(*draft.Latitude, *draft.Longitude, radius), nil
	}
	if len(draft.Location) == 0 {
		return domain.GeoLocations{}, port.ErrNoGeography
	}

	first := draft.Location[0]
	if lat, lng, ok := sniffCoordinates(first); ok {
		radius := draft.RadiusKm
		if radius <= 0 {
			radius = first.Radius
		}
		if radius <= 0 {
			radius = defaultRadiusKm
		}
		return customLocation(lat, lng, radius), nil
	}

	switch first.Type {
	case domain.LocationCountry:
		code := first.CountryCode
		if code == "" {
			code = first.Key
		}
		if code == "" {
			return domain.GeoLocations{}, port.ErrNoGeography
		}
		return domain.GeoLocations{Countries: []string{code}}, nil
	default:
		radius := draft.RadiusKm
		if radius <= 0 {
			radius = first.Radius
		}
		if radius < minCityRadiusKm {
			radius = minCityRadiusKm
		}
		if first.Key == "" {
			return domain.GeoLocations{}, port.ErrNoGeography
		}
		return domain.GeoLocations{Cities: []domain.CityTarget{{
			Key:          first.Key,
			Radius:       radius,
			DistanceUnit: distanceKilometer,
		}}}, nil
	}
}

func customLocation(lat, lng, radius float64) domain.GeoLocations {
	return domain.GeoLocations{CustomLocations: []domain.CustomLocation{{
		Latitude:     lat,
		Longitude:    lng,
		Radius:       radius,
		DistanceUnit: distanceKilometer,
	}}}
}

// sniffCoordinates detects a "lat,lng" pair stored in a location entry. The
// key counts when it has a comma and both halves parse; the name counts when
// it contains a decimal pair.
func sniffCoordinates(loc domain.Location) (lat, lng float64, ok bool) {
	if strings.Contains(loc.Key, ",") {
		if lat, lng, ok = parseCoordinatePair(loc.Key); ok {
			return lat, lng, true
		}
	}
	if m := coordinatePattern.FindStringSubmatch(loc.Name); m != nil {
		return parseLatLng(m[1], m[2])
	}
	return 0, 0, false
}

// parseCoordinatePair parses a whole "lat,lng" string.
func parseCoordinatePair(s string) (lat, lng float64, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	return parseLatLng(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
}

func parseLatLng(a, b string) (lat, lng float64, ok bool) {
	lat, err := strconv.ParseFloat(a, 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(b, 64)
	if err != nil || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}
