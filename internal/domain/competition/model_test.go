package competition

import (
	"testing"
	"time"
)

// TestCompetition_Validate tests competition validation rules.
func TestCompetition_Validate(t *testing.T) {
	valid := Competition{
		ID:             "c1",
		ProgramID:      "p1",
		Name:           "Course de l'Escalade",
		Date:           time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC),
		Time:           "10:15",
		Location:       "Geneva",
		DistanceMeters: 7300,
		Level:          LevelNational,
		IsMain:         true,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid competition, got: %v", err)
	}

	tests := []struct {
		name    string
		modify  func(c *Competition)
		wantErr error
	}{
		{"no program", func(c *Competition) { c.ProgramID = "" }, ErrEmptyProgramID},
		{"no name", func(c *Competition) { c.Name = "" }, ErrEmptyName},
		{"no date", func(c *Competition) { c.Date = time.Time{} }, ErrMissingDate},
		{"bad time", func(c *Competition) { c.Time = "10h15" }, ErrInvalidTime},
		{"zero distance", func(c *Competition) { c.DistanceMeters = 0 }, ErrInvalidDistance},
		{"negative distance", func(c *Competition) { c.DistanceMeters = -500 }, ErrInvalidDistance},
		{"unknown level", func(c *Competition) { c.Level = "olympic" }, ErrInvalidLevel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.modify(&c)
			if err := c.Validate(); err != tc.wantErr {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	// Time and level are optional.
	bare := valid
	bare.Time = ""
	bare.Level = ""
	if err := bare.Validate(); err != nil {
		t.Errorf("optional fields empty should validate, got %v", err)
	}
}
