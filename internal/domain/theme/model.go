package theme

import (
	"errors"
	"strings"
)

// Theme represents a training-category tag used to classify workouts and to
// drive the calendar's filter dropdown.
type Theme struct {
	ID    string
	Code  string // stable key stored on workouts, e.g. "aerobic"
	Label string // display label, e.g. "Aerobic base"
	Color string // hex color for calendar chips
}

// Default catalog seeded on first start. Coaches can add their own on top.
var Defaults = []Theme{
	{Code: "aerobic", Label: "Aerobic base", Color: "#4caf50"},
	{Code: "threshold", Label: "Threshold", Color: "#ff9800"},
	{Code: "vo2max", Label: "VO2max", Color: "#f44336"},
	{Code: "strength", Label: "Strength", Color: "#795548"},
	{Code: "recovery", Label: "Recovery", Color: "#2196f3"},
	{Code: "technique", Label: "Technique", Color: "#9c27b0"},
}

// Validate checks the theme's invariants.
// PRE: none
// POST: returns nil if valid, error otherwise
func (t *Theme) Validate() error {
	if strings.TrimSpace(t.Code) == "" {
		return errors.New("theme code cannot be empty")
	}
	if strings.ContainsAny(t.Code, " \t") {
		return errors.New("theme code cannot contain whitespace")
	}
	if strings.TrimSpace(t.Label) == "" {
		return errors.New("theme label cannot be empty")
	}
	if t.Color != "" && !validHexColor(t.Color) {
		return errors.New("theme color must be a #rrggbb hex value")
	}
	return nil
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
