package levels

import "testing"

func TestConfigExactMatch(t *testing.T) {
	tests := []struct {
		level        int
		requiredDays int
		input        int
		output       int
	}{
		{1, 15, 13, 2},
		{2, 30, 25, 5},
		{3, 30, 45, 15},
		{4, 30, 60, 20},
		{5, 30, 75, 25},
	}

	for _, tt := range tests {
		cfg := Config(tt.level)
		if cfg.Level != tt.level {
			t.Errorf("Config(%d).Level = %d, want %d", tt.level, cfg.Level, tt.level)
		}
		if cfg.RequiredDays != tt.requiredDays {
			t.Errorf("Config(%d).RequiredDays = %d, want %d", tt.level, cfg.RequiredDays, tt.requiredDays)
		}
		if cfg.InputMinutes != tt.input {
			t.Errorf("Config(%d).InputMinutes = %d, want %d", tt.level, cfg.InputMinutes, tt.input)
		}
		if cfg.OutputMinutes != tt.output {
			t.Errorf("Config(%d).OutputMinutes = %d, want %d", tt.level, cfg.OutputMinutes, tt.output)
		}
	}
}

func TestConfigClampsOverflow(t *testing.T) {
	top := Config(MaxLevel())
	for _, level := range []int{6, 7, 42, 1000} {
		if got := Config(level); got != top {
			t.Errorf("Config(%d) = %+v, want highest entry %+v", level, got, top)
		}
	}
}

func TestConfigClampsBelowOne(t *testing.T) {
	first := Config(1)
	for _, level := range []int{0, -1, -99} {
		if got := Config(level); got != first {
			t.Errorf("Config(%d) = %+v, want level-1 entry %+v", level, got, first)
		}
	}
}

func TestMaxLevel(t *testing.T) {
	if MaxLevel() != 5 {
		t.Errorf("MaxLevel() = %d, want 5", MaxLevel())
	}
}
