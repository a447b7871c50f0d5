package program

import (
	"errors"
	"time"
)

// Share grants an athlete read and feedback access to a program.
// One grant per (program, athlete) pair; revoking deletes the row.
type Share struct {
	ID        string
	ProgramID string
	AthleteID string
	GrantedBy string // account ID of the coach who shared
	CreatedAt time.Time
}

// Validate checks the share's invariants.
// PRE: none
// POST: returns nil if valid, error otherwise
func (s *Share) Validate() error {
	if s.ProgramID == "" {
		return errors.New("share program ID cannot be empty")
	}
	if s.AthleteID == "" {
		return errors.New("share athlete ID cannot be empty")
	}
	if s.GrantedBy == "" {
		return errors.New("share granter cannot be empty")
	}
	return nil
}
