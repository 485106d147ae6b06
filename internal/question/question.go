// Package question generates the timed questions a run presents: speed
// arithmetic, comparisons, memory echoes, sequence patterns and operator
// repair, with difficulty scaled to the player's in-run performance.
package question

import (
	"strconv"
	"strings"
)

// Kind identifies the question family. It drives achievement counters and
// stays stable even when a glitch overlay relabels the question.
type Kind int

const (
	KindArithmetic Kind = iota
	KindComparison
	KindMemory
	KindPattern
	KindLogic
)

// Mode is the presentation mode. A question is either free-text input or
// multiple choice; Choices is non-nil exactly when the mode is choices.
type Mode int

const (
	ModeFreeText Mode = iota
	ModeChoices
)

// Question is one generated challenge.
type Question struct {
	Kind     Kind
	Label    string   // Display label, e.g. "Arithmetic Burst" or "AI Glitch"
	Prompt   string
	Answer   string   // Canonical answer
	Mode     Mode
	Choices  []string // nil for free-text questions
	Glitched bool     // Glitch styling flag; never changes Answer or Choices
}

// Check reports whether raw matches the answer. Input is trimmed, and
// numeric answers are compared by value so "07" matches "7".
func (q Question) Check(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if want, err := strconv.Atoi(q.Answer); err == nil {
		got, err := strconv.Atoi(trimmed)
		return err == nil && got == want
	}
	return trimmed == q.Answer
}

// Echo is one solved (prompt, answer) pair remembered for memory missions.
type Echo struct {
	Prompt string
	Answer int
}

// EchoBuffer is the bounded FIFO of recently solved questions in a run.
type EchoBuffer struct {
	entries []Echo
	cap     int
}

// NewEchoBuffer creates a buffer holding at most capacity entries.
func NewEchoBuffer(capacity int) *EchoBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &EchoBuffer{cap: capacity}
}

// Push appends an echo, dropping the oldest entry when full.
func (b *EchoBuffer) Push(e Echo) {
	b.entries = append(b.entries, e)
	if len(b.entries) > b.cap {
		b.entries = b.entries[1:]
	}
}

// Len returns the number of buffered echoes.
func (b *EchoBuffer) Len() int {
	return len(b.entries)
}

// Entries returns the buffered echoes, oldest first.
func (b *EchoBuffer) Entries() []Echo {
	return b.entries
}
