package prompt

import (
	"fmt"
	"strings"
)

// System builds the generation context for a persona.
func System(role, goal, backstory string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s.", strings.TrimSpace(role))
	if goal = strings.TrimSpace(goal); goal != "" {
		fmt.Fprintf(&b, "\nYour personal goal is: %s", goal)
	}
	if backstory = strings.TrimSpace(backstory); backstory != "" {
		fmt.Fprintf(&b, "\n%s", backstory)
	}
	return b.String()
}

// Task builds the user message for one bound task. input is the side-channel
// text for personas whose template has no placeholder and may be empty.
func Task(filled, input, description, expected string) string {
	var b strings.Builder
	b.WriteString(filled)
	if description != "" {
		fmt.Fprintf(&b, "\n\nCurrent Task: %s", description)
	}
	if input != "" {
		fmt.Fprintf(&b, "\n\nContract text:\n%s", input)
	}
	if expected != "" {
		fmt.Fprintf(&b, "\n\nThis is the expected criteria for your final answer: %s", expected)
	}
	return b.String()
}
