package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects how many clues a fresh puzzle keeps. It is chosen
// once when the puzzle is built and never changes afterwards.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Levels returns all difficulties in ascending order of hardness.
func Levels() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Clues returns the number of filled cells a fresh puzzle of this
// difficulty keeps. Unrecognized values fall back to the Medium count.
func (d Difficulty) Clues() int {
	switch d {
	case Easy:
		return 45
	case Hard:
		return 25
	default:
		return 35
	}
}

// String returns the lowercase name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a name into a Difficulty.
// Matching is case-insensitive; unknown names are an error.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}
