package persona

import (
	"errors"
	"strings"
)

// ErrNotSupported is returned when an analysis type is not in the registry.
var ErrNotSupported = errors.New("analysis type not supported")

// Type identifies one analysis capability.
type Type string

const (
	TypeAmbiguity  Type = "ambiguity"
	TypeFramework  Type = "framework"
	TypeSummary    Type = "summary"
	TypeObligation Type = "obligation"
	TypeRisk       Type = "risk"
)

// InputPlaceholder is the single substitution point a prompt template may carry.
const InputPlaceholder = "{input}"

// DefaultModel is the completion model every persona targets unless overridden.
const DefaultModel = "gpt-3.5-turbo"

// Persona is an immutable analysis configuration bound to one Type.
type Persona struct {
	Type           Type   `json:"type"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Goal           string `json:"goal"`
	Backstory      string `json:"backstory"`
	Prompt         string `json:"-"`
	Description    string `json:"description"`
	ExpectedOutput string `json:"expected_output"`
	Model          string `json:"model"`
}

// HasPlaceholder reports whether the input is substituted into the prompt
// rather than passed alongside it.
func (p Persona) HasPlaceholder() bool {
	return strings.Contains(p.Prompt, InputPlaceholder)
}

// ParseType trims and lowercases s. It does not check membership.
func ParseType(s string) Type {
	return Type(strings.ToLower(strings.TrimSpace(s)))
}
