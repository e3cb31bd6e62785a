package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fireReport/internal/domain"
	"fireReport/pkg/codes"
)

// Placeholder stands in for any empty cell.
const Placeholder = "-"

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// FormatCondition renders "NO", "SÍ" or "SÍ - <detail>".
func FormatCondition(c domain.Condition) string {
	if !c.Present {
		return "NO"
	}
	if d := strings.TrimSpace(c.Detail); d != "" {
		return "SÍ - " + d
	}
	return "SÍ"
}

func FormatCoordinates(p *domain.LatLng) string {
	if p == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lng)
}

// FormatDateTime renders an ISO date and a HH:MM time as DD/MM/YYYY HH:MM.
func FormatDateTime(date, clock string) string {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(clock) == "" {
		return Placeholder
	}
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return Placeholder
	}
	return t.Format("02/01/2006 15:04")
}

// FormatCommand renders "name - rank", plus " - company" for ranks that
// belong to a company.
func FormatCommand(c domain.Command) string {
	if strings.TrimSpace(c.Name) == "" || c.Rank == "" {
		return Placeholder
	}
	out := c.Name + " - " + c.Rank.Label()
	if c.Rank.RequiresCompany() && c.Company != "" {
		out += " - " + c.Company.Label()
	}
	return out
}

func FormatIDCode(code string) string {
	if codes.ValidateIDCode(code) {
		return codes.FormatIDCode(code)
	}
	return orPlaceholder(code)
}

func formatAge(age *int) string {
	if age == nil {
		return Placeholder
	}
	return strconv.Itoa(*age)
}

func formatYear(year int) string {
	if year == 0 {
		return Placeholder
	}
	return strconv.Itoa(year)
}
