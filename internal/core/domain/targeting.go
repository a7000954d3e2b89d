package domain

// Targeting is the platform targeting payload sent with an ad set.
type Targeting struct {
	AgeMin          int            `json:"age_min"`
	AgeMax          int            `json:"age_max"`
	Genders         []int          `json:"genders,omitempty"`
	GeoLocations    GeoLocations   `json:"geo_locations"`
	FlexibleSpec    []FlexibleSpec `json:"flexible_spec,omitempty"`
	CustomAudiences []AudienceRef  `json:"custom_audiences,omitempty"`
}

// GeoLocations holds exactly one of the geography shapes.
type GeoLocations struct {
	CustomLocations []CustomLocation `json:"custom_locations,omitempty"`
	Cities          []CityTarget     `json:"cities,omitempty"`
	Countries       []string         `json:"countries,omitempty"`
}

// CustomLocation is radius targeting around a coordinate.
type CustomLocation struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Radius       float64 `json:"radius"`
	DistanceUnit string  `json:"distance_unit"`
}

// CityTarget is a platform city key with a radius.
type CityTarget struct {
	Key          string  `json:"key"`
	Radius       float64 `json:"radius"`
	DistanceUnit string  `json:"distance_unit"`
}

// FlexibleSpec wraps interests; the platform rejects top-level interests.
type FlexibleSpec struct {
	Interests []Interest `json:"interests"`
}

// AudienceRef references a custom audience.
type AudienceRef struct {
	ID string `json:"id"`
}
