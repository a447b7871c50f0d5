package athlete

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Level constants for an athlete's competitive level.
const (
	LevelBeginner      = "beginner"
	LevelRegional      = "regional"
	LevelNational      = "national"
	LevelInternational = "international"
)

// ValidLevels contains all valid level values.
var ValidLevels = []string{LevelBeginner, LevelRegional, LevelNational, LevelInternational}

// Athlete holds the profile of a coached athlete.
type Athlete struct {
	ID        string
	AccountID string // linked login account, may be empty before invitation
	CoachID   string // account ID of the coach who manages this athlete
	Name      string
	Email     string
	Level     string
}

// Validate checks if the Athlete has valid data.
// PRE: Athlete struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (a *Athlete) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("athlete name cannot be empty")
	}
	if len(a.Name) > MaxNameLength {
		return errors.New("athlete name cannot exceed 100 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return errors.New("athlete email must be valid")
	}
	if a.Level != "" && !isValidLevel(a.Level) {
		return errors.New("level must be one of: beginner, regional, national, international")
	}
	return nil
}

func isValidLevel(level string) bool {
	for _, l := range ValidLevels {
		if level == l {
			return true
		}
	}
	return false
}
