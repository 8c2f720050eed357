package puzzle

import (
	"errors"
	"testing"
)

func TestDifficultyClues(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       int
	}{
		{Easy, 45},
		{Medium, 35},
		{Hard, 25},
		{Difficulty(99), 35},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			if got := tt.difficulty.Clues(); got != tt.want {
				t.Errorf("Clues() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDifficultyString(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       string
	}{
		{Easy, "easy"},
		{Medium, "medium"},
		{Hard, "hard"},
		{Difficulty(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.difficulty.String(); got != tt.want {
			t.Errorf("Difficulty(%d).String() = %q, want %q", tt.difficulty, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"medium", Medium, false},
		{"hard", Hard, false},
		{"EASY", Easy, false},
		{"Hard", Hard, false},
		{"  medium  ", Medium, false},
		{"extreme", Medium, true},
		{"", Medium, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownDifficulty) {
					t.Fatalf("ParseDifficulty(%q) error = %v, want ErrUnknownDifficulty", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevels(t *testing.T) {
	want := []Difficulty{Easy, Medium, Hard}
	got := Levels()
	if len(got) != len(want) {
		t.Fatalf("Levels() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Levels()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
