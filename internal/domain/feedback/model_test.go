package feedback

import "testing"

// TestFeedback_Validate tests feedback validation rules.
func TestFeedback_Validate(t *testing.T) {
	valid := Feedback{ID: "f1", WorkoutID: "w1", AthleteID: "ath1", Rating: 3, Comment: "Legs heavy on the last rep", Completed: true}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid feedback, got: %v", err)
	}

	tests := []struct {
		name    string
		modify  func(f *Feedback)
		wantErr error
	}{
		{"no workout", func(f *Feedback) { f.WorkoutID = "" }, ErrEmptyWorkoutID},
		{"no athlete", func(f *Feedback) { f.AthleteID = "" }, ErrEmptyAthleteID},
		{"rating too low", func(f *Feedback) { f.Rating = 0 }, ErrInvalidRating},
		{"rating too high", func(f *Feedback) { f.Rating = 6 }, ErrInvalidRating},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := valid
			tc.modify(&f)
			if err := f.Validate(); err != tc.wantErr {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
