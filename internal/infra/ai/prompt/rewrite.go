package prompt

import "fmt"

// Rewrite asks for the contract with every flagged ambiguity replaced.
func Rewrite(original, findings string) string {
	return fmt.Sprintf("You are a legal contract editor. Given the following contract text and a list of ambiguities with suggested improvements, "+
		"rewrite the contract by replacing all ambiguous terms and sentences with the suggested improvements. "+
		"Keep the structure and meaning of the contract intact, but make it as clear and unambiguous as possible.\n\n"+
		"Contract Text:\n%s\n\nAmbiguities and Suggestions:\n%s\n\nRephrased Contract:", original, findings)
}
