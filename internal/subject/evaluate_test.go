package subject

import "testing"

func TestMeetsRequirement(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		input  int
		output int
		want   bool
	}{
		{"level 1 exact minimums", 1, 13, 2, true},
		{"level 1 above minimums", 1, 30, 10, true},
		{"level 1 input short", 1, 12, 2, false},
		{"level 1 output short", 1, 13, 1, false},
		{"level 1 both short", 1, 0, 0, false},
		{"level 2 exact minimums", 2, 25, 5, true},
		{"level 2 input short", 2, 24, 10, false},
		{"level 5 exact minimums", 5, 75, 25, true},
		{"overflow level uses top entry", 9, 75, 25, true},
		{"overflow level input short", 9, 74, 25, false},
		{"negative input never qualifies", 1, -5, 2, false},
		{"negative output never qualifies", 1, 13, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeetsRequirement(tt.level, tt.input, tt.output)
			if got != tt.want {
				t.Errorf("MeetsRequirement(%d, %d, %d) = %v, want %v",
					tt.level, tt.input, tt.output, got, tt.want)
			}
		})
	}
}

func TestMeetsRequirementSwappedCategoriesFail(t *testing.T) {
	// Total minutes alone are not enough: each category must clear its
	// own minimum.
	if MeetsRequirement(1, 2, 13) {
		t.Error("session with swapped input/output minutes should not qualify")
	}
}
