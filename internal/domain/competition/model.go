package competition

import (
	"errors"
	"time"
)

// Max length constants.
const (
	MaxNameLength     = 200
	MaxLocationLength = 200
)

// Level constants for a competition's tier.
const (
	LevelLocal         = "local"
	LevelRegional      = "regional"
	LevelNational      = "national"
	LevelInternational = "international"
)

// ValidLevels contains all valid level values.
var ValidLevels = []string{LevelLocal, LevelRegional, LevelNational, LevelInternational}

// Domain errors
var (
	ErrEmptyProgramID  = errors.New("competition program ID cannot be empty")
	ErrEmptyName       = errors.New("competition name cannot be empty")
	ErrMissingDate     = errors.New("competition date is required")
	ErrInvalidTime     = errors.New("competition time must be HH:MM")
	ErrInvalidDistance = errors.New("competition distance must be positive")
	ErrInvalidLevel    = errors.New("level must be one of: local, regional, national, international")
)

// Competition represents a race or meet scheduled inside a program.
// IsMain flags the season's target race; advisory only, not enforced unique.
type Competition struct {
	ID             string
	ProgramID      string
	Name           string
	Date           time.Time // day granularity
	Time           string    // optional "HH:MM"
	Location       string
	DistanceMeters int
	Level          string
	IsMain         bool
	CreatedAt      time.Time
}

// Validate checks the competition's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (c *Competition) Validate() error {
	if c.ProgramID == "" {
		return ErrEmptyProgramID
	}
	if c.Name == "" {
		return ErrEmptyName
	}
	if len(c.Name) > MaxNameLength {
		return errors.New("competition name cannot exceed 200 characters")
	}
	if c.Date.IsZero() {
		return ErrMissingDate
	}
	if c.Time != "" && !validClock(c.Time) {
		return ErrInvalidTime
	}
	if len(c.Location) > MaxLocationLength {
		return errors.New("competition location cannot exceed 200 characters")
	}
	if c.DistanceMeters <= 0 {
		return ErrInvalidDistance
	}
	if c.Level != "" && !isValidLevel(c.Level) {
		return ErrInvalidLevel
	}
	return nil
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func isValidLevel(level string) bool {
	for _, l := range ValidLevels {
		if level == l {
			return true
		}
	}
	return false
}
