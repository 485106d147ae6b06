package question

import (
	"fmt"
	"strconv"

	"github.com/neonrift/neonrift/internal/config"
	"github.com/neonrift/neonrift/internal/mission"
	"github.com/neonrift/neonrift/internal/rng"
)

// logicOps is the candidate set for operator-repair questions.
// Division is a decoy only; generated prompts use +, - and *.
var logicOps = []string{"+", "-", "*", "/"}

// patternSteps are the allowed arithmetic-sequence increments.
var patternSteps = []int{2, 3, 4, 5}

// Generator produces questions for a run. It owns no run state beyond the
// RNG; the echo buffer belongs to the run and is passed in per call.
type Generator struct {
	cfg config.QuestionConfig
	rng *rng.Source
}

// NewGenerator creates a generator with the given tuning and RNG source.
func NewGenerator(cfg config.QuestionConfig, src *rng.Source) *Generator {
	return &Generator{cfg: cfg, rng: src}
}

// Generate produces the next question for the mission at the given
// difficulty. glitchBoost is the event-driven addition to the glitch
// probability (0 outside a glitch storm).
func (g *Generator) Generate(m mission.Mission, d Difficulty, buf *EchoBuffer, glitchBoost float64) Question {
	arch := m.Archetype
	boss := false
	if arch == mission.Boss {
		// Boss rifts re-dispatch to a random standard archetype and
		// compound the arithmetic path with a third term.
		arch = rng.Pick(g.rng, []mission.Archetype{
			mission.Arithmetic, mission.Comparison, mission.Memory, mission.Pattern, mission.Logic,
		})
		boss = true
	}

	var q Question
	switch arch {
	case mission.Comparison:
		q = g.comparison(d)
	case mission.Memory:
		q = g.memory(d, buf)
	case mission.Pattern:
		q = g.pattern(d)
	case mission.Logic:
		q = g.logicBreach(d)
	default:
		q = g.arithmetic(d, buf, boss)
	}

	if g.rng.Float64() < g.cfg.GlitchChance+glitchBoost {
		q.Glitched = true
		q.Label = "AI Glitch"
	}
	return q
}

// arithmetic builds "a op b" with operands in [2, range]. When division is
// drawn, operands are regenerated as an exact multiple so the quotient is
// a clean integer. Boss questions append a third additive term.
func (g *Generator) arithmetic(d Difficulty, buf *EchoBuffer, boss bool) Question {
	max := d.NumericRange
	op := rng.Pick(g.rng, d.Operators)

	var a, b, answer int
	if op == OpDiv {
		b = g.rng.Range(2, maxOf(2, max/4))
		quotient := g.rng.Range(2, maxOf(2, max/b))
		a = b * quotient
		answer = quotient
	} else {
		a = g.rng.Range(2, max)
		b = g.rng.Range(2, max)
		answer = Solve(a, b, op)
	}

	prompt := fmt.Sprintf("%d %s %d", a, op, b)
	if boss {
		c := g.rng.Range(2, maxOf(6, max/2))
		prompt = fmt.Sprintf("(%s) + %d", prompt, c)
		answer += c
	}

	mode := ModeChoices
	var choices []string
	if g.rng.Float64() < g.cfg.FreeTextChance {
		mode = ModeFreeText
	} else {
		choices = g.buildChoices(answer, max)
	}

	buf.Push(Echo{Prompt: prompt, Answer: answer})

	return Question{
		Kind:    KindArithmetic,
		Label:   "Arithmetic Burst",
		Prompt:  prompt,
		Answer:  strconv.Itoa(answer),
		Mode:    mode,
		Choices: choices,
	}
}

// comparison asks which of two values is larger. Operands are forced
// distinct so the correct choice is unambiguous and the decoy sits above
// the maximum.
func (g *Generator) comparison(d Difficulty) Question {
	max := d.NumericRange
	a := g.rng.Range(1, max)
	b := g.rng.Range(1, max)
	for b == a {
		b = g.rng.Range(1, max)
	}

	larger := a
	if b > a {
		larger = b
	}
	decoy := larger + g.rng.Range(1, 6)

	choices := rng.Shuffle(g.rng, []string{
		strconv.Itoa(a), strconv.Itoa(b), strconv.Itoa(decoy),
	})

	return Question{
		Kind:    KindComparison,
		Label:   "Comparison Challenge",
		Prompt:  "Which is larger?",
		Answer:  strconv.Itoa(larger),
		Mode:    ModeChoices,
		Choices: choices,
	}
}

// memory replays a previously solved prompt when the buffer holds at least
// two entries; otherwise it falls back to a fresh arithmetic question.
func (g *Generator) memory(d Difficulty, buf *EchoBuffer) Question {
	if buf.Len() < 2 || g.rng.Float64() >= g.cfg.MemoryChance {
		return g.arithmetic(d, buf, false)
	}

	echo := rng.Pick(g.rng, buf.Entries())
	return Question{
		Kind:    KindMemory,
		Label:   "Memory Echo",
		Prompt:  fmt.Sprintf("Memory Echo: %s = ?", echo.Prompt),
		Answer:  strconv.Itoa(echo.Answer),
		Mode:    ModeChoices,
		Choices: g.buildChoices(echo.Answer, d.NumericRange),
	}
}

// pattern shows the first four terms of an arithmetic sequence and asks
// for the fifth.
func (g *Generator) pattern(d Difficulty) Question {
	base := g.rng.Range(2, maxOf(6, d.NumericRange/2))
	step := rng.Pick(g.rng, patternSteps)
	answer := base + step*4

	prompt := fmt.Sprintf("Complete the sequence: %d, %d, %d, %d, ?",
		base, base+step, base+step*2, base+step*3)

	return Question{
		Kind:    KindPattern,
		Label:   "Pattern Recognition",
		Prompt:  prompt,
		Answer:  strconv.Itoa(answer),
		Mode:    ModeChoices,
		Choices: g.buildChoices(answer, d.NumericRange),
	}
}

// logicBreach shows a completed equation with the operator hidden; the
// answer is the operator symbol.
func (g *Generator) logicBreach(d Difficulty) Question {
	max := maxOf(6, d.NumericRange/2)
	a := g.rng.Range(2, max)
	b := g.rng.Range(2, max)
	op := rng.Pick(g.rng, []Op{OpAdd, OpSub, OpMul})
	result := Solve(a, b, op)

	choices := make([]string, len(logicOps))
	copy(choices, logicOps)

	return Question{
		Kind:     KindLogic,
		Label:    "Logic Breach",
		Prompt:   fmt.Sprintf("Repair the breach: %d ? %d = %d", a, b, result),
		Answer:   string(op),
		Mode:     ModeChoices,
		Choices:  choices,
		Glitched: true,
	}
}

// buildChoices seeds the set with the correct answer, then adds decoys
// offset by up to ±range/4 until the deduplicated set is full. The offset
// window widens if the draw keeps colliding, so the loop always ends.
func (g *Generator) buildChoices(answer, numericRange int) []string {
	want := g.cfg.DecoyCount + 1
	spread := maxOf(1, numericRange/4)

	set := map[string]bool{strconv.Itoa(answer): true}
	ordered := []string{strconv.Itoa(answer)}

	attempts := 0
	for len(ordered) < want {
		candidate := strconv.Itoa(answer + g.rng.Range(-spread, spread))
		if !set[candidate] {
			set[candidate] = true
			ordered = append(ordered, candidate)
		}
		attempts++
		if attempts%20 == 0 {
			spread++
		}
	}

	return rng.Shuffle(g.rng, ordered)
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
