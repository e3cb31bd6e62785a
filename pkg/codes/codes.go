// Package codes holds the pure checks for identifiers that appear on an
// emergency report: national ID check digits, responder unit codes, vehicle
// plates and numeric ranges. Every function is total and side-effect free.
package codes

import (
	"regexp"
	"strings"
	"time"
)

// UnitKind selects the code grammar of a responder unit.
type UnitKind int

const (
	UnitFire UnitKind = iota
	UnitPolice
	UnitAmbulance
)

// PlateClass selects the plate grammar of a vehicle.
type PlateClass int

const (
	PlateNone PlateClass = iota
	PlateCar
	PlateMotorcycle
)

// CompanyUnitPrefixes are apparatus classes attached to a company; their
// number is the company digit 1..8.
var CompanyUnitPrefixes = []string{
	"B", "BX", "Q", "M", "MX", "R", "RX", "RB", "RH", "H", "X", "Z", "UT", "BR", "QR",
}

// CorpsUnitPrefixes are corps level units numbered freely.
var CorpsUnitPrefixes = []string{"K", "S"}

var (
	idCodeRe        = regexp.MustCompile(`^\d{7,8}-[0-9kK]$`)
	fireUnitRe      = regexp.MustCompile(`^(` + strings.Join(CompanyUnitPrefixes, "|") + `)-[1-8]$|^(` + strings.Join(CorpsUnitPrefixes, "|") + `)-\d+$`)
	policeUnitRe    = regexp.MustCompile(`^[A-Z]-\d+$`)
	ambulanceUnitRe = regexp.MustCompile(`^SAMU-\d+$`)
	carPlateRe      = regexp.MustCompile(`^[A-Z]{4}\d{2}$|^[A-Z]{2}\d{4}$`)
	motoPlateRe     = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]{2}$|^[A-Z]{2}\d{3}$`)
	digitsRe        = regexp.MustCompile(`^\d+$`)
	idCleanRe       = regexp.MustCompile(`[^0-9kK]`)
)

// ComputeCheckDigit returns the modulo-11 check symbol of a numeric string:
// "0".."9" or "K". It returns "" when digits is empty or not numeric.
func ComputeCheckDigit(digits string) string {
	if digits == "" || !digitsRe.MatchString(digits) {
		return ""
	}

	sum := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		if weight == 7 {
			weight = 2
		} else {
			weight++
		}
	}

	switch result := 11 - sum%11; result {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + result))
	}
}

// ValidateIDCode reports whether code has the NNNNNNNN-C shape and a
// matching check symbol. K is accepted in either case.
func ValidateIDCode(code string) bool {
	if !idCodeRe.MatchString(code) {
		return false
	}
	number, check, _ := strings.Cut(code, "-")
	return strings.EqualFold(check, ComputeCheckDigit(number))
}

// CleanIDCode strips separators and upper-cases the check symbol.
func CleanIDCode(code string) string {
	return strings.ToUpper(idCleanRe.ReplaceAllString(code, ""))
}

// FormatIDCode renders an ID code with thousands dots: 12.345.678-5.
// Input too short to carry a check symbol is returned cleaned.
func FormatIDCode(code string) string {
	clean := CleanIDCode(code)
	if len(clean) < 2 {
		return clean
	}
	digits, check := clean[:len(clean)-1], clean[len(clean)-1:]

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	if digits != "" {
		groups = append([]string{digits}, groups...)
	}
	return strings.Join(groups, ".") + "-" + check
}

// ValidateUnitCode matches code against the grammar of kind. Fire codes are
// compared upper-cased, the way the form stores them.
func ValidateUnitCode(code string, kind UnitKind) bool {
	switch kind {
	case UnitFire:
		return fireUnitRe.MatchString(strings.ToUpper(strings.TrimSpace(code)))
	case UnitPolice:
		return policeUnitRe.MatchString(code)
	case UnitAmbulance:
		return ambulanceUnitRe.MatchString(code)
	default:
		return false
	}
}

// ValidatePlate matches an upper-cased plate against the grammar of class.
// PlateNone never matches: callers decide whether a plate is required.
func ValidatePlate(plate string, class PlateClass) bool {
	plate = strings.ToUpper(plate)
	switch class {
	case PlateCar:
		return carPlateRe.MatchString(plate)
	case PlateMotorcycle:
		return motoPlateRe.MatchString(plate)
	default:
		return false
	}
}

// ValidateVolunteerCode reports whether code is a non-empty digit string.
func ValidateVolunteerCode(code string) bool {
	return digitsRe.MatchString(code)
}

const (
	MinAge  = 0
	MaxAge  = 120
	MinYear = 1900
)

// ValidateAge reports whether age lies in MinAge..MaxAge.
func ValidateAge(age int) bool {
	return InRange(age, MinAge, MaxAge)
}

// ValidateYear accepts model years from MinYear up to next year relative to now.
func ValidateYear(year int, now time.Time) bool {
	return InRange(year, MinYear, now.Year()+1)
}

// InRange reports lo <= v <= hi.
func InRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

// SplitUnitCode returns the prefix and number of a unit code such as "RX-6".
func SplitUnitCode(code string) (prefix, number string) {
	prefix, number, _ = strings.Cut(strings.ToUpper(strings.TrimSpace(code)), "-")
	return prefix, number
}

// IsCompanyUnitPrefix reports whether prefix is one of CompanyUnitPrefixes.
func IsCompanyUnitPrefix(prefix string) bool {
	return contains(CompanyUnitPrefixes, prefix)
}

// IsCorpsUnitPrefix reports whether prefix is one of CorpsUnitPrefixes.
func IsCorpsUnitPrefix(prefix string) bool {
	return contains(CorpsUnitPrefixes, prefix)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
