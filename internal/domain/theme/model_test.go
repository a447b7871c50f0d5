package theme

import "testing"

// TestTheme_Validate tests theme validation rules.
func TestTheme_Validate(t *testing.T) {
	valid := Theme{ID: "t1", Code: "hills", Label: "Hill repeats", Color: "#8bc34a"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid theme, got: %v", err)
	}

	tests := []struct {
		name   string
		modify func(th *Theme)
	}{
		{"empty code", func(th *Theme) { th.Code = "" }},
		{"code with space", func(th *Theme) { th.Code = "hill repeats" }},
		{"empty label", func(th *Theme) { th.Label = " " }},
		{"bad color", func(th *Theme) { th.Color = "green" }},
		{"short hex", func(th *Theme) { th.Color = "#8bc" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th := valid
			tc.modify(&th)
			if err := th.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// TestDefaults_AreValid verifies every seeded theme passes validation.
func TestDefaults_AreValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, th := range Defaults {
		if err := th.Validate(); err != nil {
			t.Errorf("default theme %q invalid: %v", th.Code, err)
		}
		if seen[th.Code] {
			t.Errorf("duplicate default theme code %q", th.Code)
		}
		seen[th.Code] = true
	}
}
