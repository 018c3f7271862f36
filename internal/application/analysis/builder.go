package analysis

import (
	"strings"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/analysis"
	"github.com/bryanwahyu/automaton-legal/internal/domain/persona"
	"github.com/bryanwahyu/automaton-legal/internal/logger"
)

const previewRunes = 500

// Builder binds personas to input text.
type Builder struct {
	Log *logger.Logger
}

// Build looks up the persona for t and binds text to it. Templates with the
// input placeholder get text substituted there; the rest carry it as Input.
func (b *Builder) Build(t persona.Type, text string) (*domain.Task, error) {
	p, err := persona.Lookup(t)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Persona:        p,
		Prompt:         p.Prompt,
		Description:    p.Description,
		ExpectedOutput: p.ExpectedOutput,
	}
	if p.HasPlaceholder() {
		task.Prompt = strings.Replace(p.Prompt, persona.InputPlaceholder, text, 1)
	} else {
		task.Input = text
	}

	logger.OrNop(b.Log).Debug("analysis task built",
		"analysis_type", string(t),
		"input_len", len(text),
		"input_preview", preview(text, previewRunes),
	)
	return task, nil
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
