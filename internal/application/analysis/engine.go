package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domai "github.com/bryanwahyu/automaton-legal/internal/domain/ai"
	domain "github.com/bryanwahyu/automaton-legal/internal/domain/analysis"
	"github.com/bryanwahyu/automaton-legal/internal/infra/ai/prompt"
)

// Engine runs exactly one task per call against the completion service.
type Engine struct {
	Client domai.Completer
	// Model, when set, replaces every persona's declared model.
	Model string
}

// Run sends the task to the completion service. The output is returned as-is;
// checking it against the expected-output description is left to callers.
func (e *Engine) Run(ctx context.Context, task *domain.Task) (domain.RawResult, error) {
	if task == nil {
		return nil, errors.New("nil analysis task")
	}
	model := task.Persona.Model
	if e.Model != "" {
		model = e.Model
	}

	c, err := e.Client.Complete(ctx, domai.Request{
		Model:  model,
		System: prompt.System(task.Persona.Role, task.Persona.Goal, task.Persona.Backstory),
		Prompt: prompt.Task(task.Prompt, task.Input, task.Description, task.ExpectedOutput),
	})
	if err != nil {
		if errors.Is(err, domai.ErrCompletionService) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domai.ErrCompletionService, err)
	}
	if c == nil || (strings.TrimSpace(c.Text) == "" && c.FinishReason == "") {
		return nil, fmt.Errorf("%w: empty response", domai.ErrCompletionService)
	}

	return domain.StructuredResult{
		Raw:          c.Text,
		Model:        c.Model,
		FinishReason: c.FinishReason,
		TotalTokens:  c.Usage.TotalTokens,
	}, nil
}
