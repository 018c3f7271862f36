package analysis

import "github.com/bryanwahyu/automaton-legal/internal/domain/persona"

// Task is one persona bound to one input text, ready for execution.
// Prompt is the persona template after substitution; Input is set only when
// the template has no placeholder and the text travels as a side channel.
type Task struct {
	Persona        persona.Persona
	Prompt         string
	Input          string
	Description    string
	ExpectedOutput string
}
