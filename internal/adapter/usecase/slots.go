package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"adpilot/internal/core/domain"
)

const (
	minAudienceAge = 13
	maxAudienceAge = 65
)

var (
	amountPattern = regexp.MustCompile(`\d+(?:[.,]\d+)*`)
	numberPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	agePattern    = regexp.MustCompile(`(\d{1,2})\s*(?:-|–|—|~|đến|tới|to)\s*(\d{1,2})`)
	radiusHint    = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*km\b`)
	groupedDigits = regexp.MustCompile(`^\d{1,3}(?:[.,]\d{3})+$`)
)

// amountUnit is a multiplier suffix. Longer spellings come first.
type amountUnit struct {
	suffix string
	factor float64
}

var amountUnits = []amountUnit{
	{"triệu", 1e6},
	{"nghìn", 1e3},
	{"ngàn", 1e3},
	{"tr", 1e6},
	{"củ", 1e6},
	{"k", 1e3},
	{"m", 1e6},
}

var (
	genderAllVocab    = newVocabulary([]string{"tất cả", "cả hai", "cả 2", "nam nữ", "nam và nữ", "nam lẫn nữ", "all", "both"})
	genderFemaleVocab = newVocabulary([]string{"nữ", "phụ nữ", "chị em", "female", "women"})
	genderMaleVocab   = newVocabulary([]string{"nam", "đàn ông", "male", "men"})

	affirmVocab = newVocabulary([]string{
		"ok", "oke", "okay", "có", "đồng ý", "xác nhận", "ừ", "ừm", "được",
		"đúng", "chắc chắn", "yes", "y", "sure", "confirm",
	})
	negateVocab = newVocabulary([]string{
		"không", "ko", "hủy", "huỷ", "thôi", "bỏ qua", "no", "n", "cancel",
	})
)

// parseAmount extracts a money amount from a reply such as "200k",
// "1,5 triệu" or "300.000". Dots and commas grouping thousands are
// separators; a single short fraction is a decimal.
func parseAmount(s string) (int64, bool) {
	s = strings.ToLower(norm.NFC.String(s))
	loc := amountPattern.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}
	num := s[loc[0]:loc[1]]
	var value float64
	if groupedDigits.MatchString(num) {
		v, err := strconv.ParseFloat(strings.NewReplacer(".", "", ",", "").Replace(num), 64)
		if err != nil {
			return 0, false
		}
		value = v
	} else {
		v, ok := parseDecimal(num)
		if !ok {
			return 0, false
		}
		value = v
	}

	rest := strings.TrimLeftFunc(s[loc[1]:], unicode.IsSpace)
	for _, u := range amountUnits {
		if !strings.HasPrefix(rest, u.suffix) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(rest[len(u.suffix):])
		if unicode.IsLetter(next) {
			continue
		}
		value *= u.factor
		break
	}
	return int64(math.Round(value)), true
}

// parseNumber extracts the first decimal number, accepting a comma as the
// decimal separator.
func parseNumber(s string) (float64, bool) {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	return parseDecimal(m)
}

func parseDecimal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseAge reads a "min-max" age bracket.
func parseAge(s string) (*domain.AgeRange, bool) {
	m := agePattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return nil, false
	}
	lo, _ := strconv.Atoi(m[1])
	hi, _ := strconv.Atoi(m[2])
	if lo > hi || lo < minAudienceAge || hi > maxAudienceAge {
		return nil, false
	}
	return &domain.AgeRange{Min: lo, Max: hi}, true
}

// parseGender looks the reply up in the gender keyword sets. "nam nữ"
// contains both words, so the combined set is consulted first.
func parseGender(s string) (domain.Gender, bool) {
	tokens := tokenize(s)
	switch {
	case genderAllVocab.in(tokens):
		return domain.GenderAll, true
	case genderFemaleVocab.in(tokens):
		return domain.GenderFemale, true
	case genderMaleVocab.in(tokens):
		return domain.GenderMale, true
	}
	return "", false
}

// radiusFromText returns the value of a bare "<N> km" token.
func radiusFromText(s string) (float64, bool) {
	m := radiusHint.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	return parseDecimal(m[1])
}

// isNegative is checked before isAffirmative: "không đồng ý" is a refusal.
func isNegative(s string) bool {
	return negateVocab.in(tokenize(s))
}

func isAffirmative(s string) bool {
	return affirmVocab.in(tokenize(s))
}

// geographyType is the branch the targeting compiler will take for d, or
// "" when there is no geography yet.
func geographyType(d domain.DraftCampaign) domain.LocationType {
	if d.HasCoordinates() {
		return domain.LocationCoordinate
	}
	if len(d.Location) == 0 {
		return ""
	}
	first := d.Location[0]
	if _, _, ok := sniffCoordinates(first); ok {
		return domain.LocationCoordinate
	}
	if first.Type != "" {
		return first.Type
	}
	if d.LocationType != "" {
		return d.LocationType
	}
	return domain.LocationCity
}

// minRadius is the smallest radius accepted for a geography type. Country
// targeting takes no radius.
func minRadius(t domain.LocationType) float64 {
	switch t {
	case domain.LocationCity:
		return minCityRadiusKm
	case domain.LocationCoordinate:
		return minCoordinateRadiusKm
	}
	return 0
}

// effectiveRadius is the radius the draft currently carries.
func effectiveRadius(d domain.DraftCampaign) float64 {
	if d.RadiusKm > 0 {
		return d.RadiusKm
	}
	if !d.HasCoordinates() && len(d.Location) > 0 {
		return d.Location[0].Radius
	}
	return 0
}

// nextStage returns the single slot still missing from d, in fixed
// priority order, or confirming when the draft is complete.
func nextStage(d domain.DraftCampaign, minBudget int64) domain.Stage {
	switch {
	case d.EffectiveBudget() < minBudget || d.EffectiveBudget() <= 0:
		return domain.StageAwaitingBudget
	case d.Age == nil || d.Age.Min == 0 || d.Age.Max == 0:
		return domain.StageAwaitingAge
	case d.NormalizedGender() == "":
		return domain.StageAwaitingGender
	case !d.HasGeography():
		return domain.StageAwaitingLocation
	}
	if floor := minRadius(geographyType(d)); floor > 0 && effectiveRadius(d) < floor {
		return domain.StageAwaitingRadius
	}
	return domain.StageConfirming
}

// prefillRadius copies a "<N> km" hint from the raw text into a
// coordinate draft that has no radius yet.
func prefillRadius(d *domain.DraftCampaign, raw string) {
	if d.RadiusKm > 0 || geographyType(*d) != domain.LocationCoordinate {
		return
	}
	if km, ok := radiusFromText(raw); ok && km > 0 {
		d.RadiusKm = km
	}
}
