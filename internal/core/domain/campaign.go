package domain

import "strings"

// BudgetType selects how the ad set budget is expressed on the platform.
type BudgetType string

const (
	BudgetDaily    BudgetType = "daily"
	BudgetLifetime BudgetType = "lifetime"
)

// Gender is the audience gender requested by the operator.
type Gender string

const (
	GenderAll    Gender = "all"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// LocationType tells which geography branch a draft resolved to.
type LocationType string

const (
	LocationCoordinate LocationType = "coordinate"
	LocationCity       LocationType = "city"
	LocationCountry    LocationType = "country"
)

// AgeRange is an inclusive audience age bracket.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Location is one geography entry returned by the interpreter or the geo
// search. Upstream data does not cleanly separate named places from raw
// coordinates, so Key or Name may carry a "lat,lng" string.
type Location struct {
	Key         string       `json:"key,omitempty"`
	Name        string       `json:"name,omitempty"`
	Type        LocationType `json:"type,omitempty"`
	Radius      float64      `json:"radius,omitempty"`
	CountryCode string       `json:"countryCode,omitempty"`
}

// Interest is a platform interest used for detailed targeting.
type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ScheduleSlot is one weekly delivery window for lifetime budgets. Hours are
// hour-of-day; Days uses 0 for Sunday.
type ScheduleSlot struct {
	Days      []int `json:"days"`
	StartHour int   `json:"startHour"`
	EndHour   int   `json:"endHour"`
}

// DraftCampaign is the in-progress record assembled by the dialogue. Budgets
// are integers in the smallest currency unit.
type DraftCampaign struct {
	Name           string         `json:"name"`
	Objective      string         `json:"objective,omitempty"`
	Budget         int64          `json:"budget,omitempty"`
	BudgetType     BudgetType     `json:"budgetType,omitempty"`
	LifetimeBudget int64          `json:"lifetimeBudget,omitempty"`
	StartTime      string         `json:"startTime,omitempty"`
	EndTime        string         `json:"endTime,omitempty"`
	ScheduleSlots  []ScheduleSlot `json:"scheduleSlots,omitempty"`
	Age            *AgeRange      `json:"age,omitempty"`
	Gender         Gender         `json:"gender,omitempty"`
	LocationType   LocationType   `json:"locationType,omitempty"`
	Location       []Location     `json:"location,omitempty"`
	Latitude       *float64       `json:"latitude,omitempty"`
	Longitude      *float64       `json:"longitude,omitempty"`
	RadiusKm       float64        `json:"radiusKm,omitempty"`
	Interests      []Interest     `json:"interests,omitempty"`
	PostURL        string         `json:"postUrl,omitempty"`
	ResolvedPostID string         `json:"resolvedPostId,omitempty"`
	PageID         string         `json:"pageId,omitempty"`
}

// IsLifetime reports whether the draft uses a lifetime budget.
func (d DraftCampaign) IsLifetime() bool {
	return d.BudgetType == BudgetLifetime
}

// EffectiveBudget returns the amount the budget slot is judged on.
func (d DraftCampaign) EffectiveBudget() int64 {
	if d.IsLifetime() && d.LifetimeBudget > 0 {
		return d.LifetimeBudget
	}
	return d.Budget
}

// HasCoordinates reports whether explicit latitude and longitude are set.
func (d DraftCampaign) HasCoordinates() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// HasGeography reports whether any geography has been resolved.
func (d DraftCampaign) HasGeography() bool {
	return d.HasCoordinates() || len(d.Location) > 0
}

// NormalizedGender maps loosely spelled genders onto the known values.
func (d DraftCampaign) NormalizedGender() Gender {
	switch Gender(strings.ToLower(string(d.Gender))) {
	case GenderMale:
		return GenderMale
	case GenderFemale:
		return GenderFemale
	case GenderAll:
		return GenderAll
	}
	return ""
}
