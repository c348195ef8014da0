package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser normalises due dates between their date-only form and the
// ISO-8601 datetimes exchanged with the task store.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "UTC", "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse reads a date or datetime string in any supported layout.
func (p *Parser) Parse(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range inputLayouts {
		t, err := time.ParseInLocation(layout, raw, p.location)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", raw)
}

// Date returns raw as a YYYY-MM-DD string in the parser's timezone.
// ok is false, and raw is returned untouched, when raw is not a date.
func (p *Parser) Date(raw string) (date string, ok bool) {
	t, err := p.Parse(raw)
	if err != nil {
		return raw, false
	}
	return p.startOfDay(t).Format(DateLayout), true
}

// DateTime returns the start of the day described by raw as an RFC3339
// datetime. ok is false, and raw is returned untouched, when raw is not a date.
func (p *Parser) DateTime(raw string) (datetime string, ok bool) {
	t, err := p.Parse(raw)
	if err != nil {
		return raw, false
	}
	return p.startOfDay(t).Format(time.RFC3339), true
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
