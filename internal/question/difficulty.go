package question

import "github.com/neonrift/neonrift/internal/rng"

// Op is an arithmetic operator symbol.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
)

// Solve applies op to a and b. Division is floor division; callers are
// responsible for picking operands with an exact quotient.
func Solve(a, b int, op Op) int {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return a + b
	}
}

// Difficulty describes how hard the next question should be. It is
// recomputed before every question from the player level and in-run
// performance, independent of the mission's static parameters.
type Difficulty struct {
	Intensity    int // Clamped to [1, 30]
	NumericRange int // Upper bound for generated operands
	Operators    []Op
}

// Scale computes the difficulty for the next question.
// With no answers yet, accuracy defaults to 0.75 so the opening questions
// sit slightly above the floor for the player's level.
func Scale(level, correct, total, combo int) Difficulty {
	accuracy := 0.75
	if total > 0 {
		accuracy = float64(correct) / float64(total)
	}

	intensity := rng.Clamp(level+int(accuracy*4)+combo/3, 1, 30)

	ops := []Op{OpAdd, OpSub}
	switch {
	case intensity >= 12:
		ops = []Op{OpAdd, OpSub, OpMul, OpDiv}
	case intensity >= 6:
		ops = []Op{OpAdd, OpSub, OpMul}
	}

	return Difficulty{
		Intensity:    intensity,
		NumericRange: 10 + intensity*3,
		Operators:    ops,
	}
}
