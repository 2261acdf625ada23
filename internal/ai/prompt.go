package ai

import "strings"

const systemInstruction = "You are a helpful assistant that tailors resume text based on user input."

// BuildPrompt wraps the user's request in the tailoring instruction.
func BuildPrompt(input string) string {
	return systemInstruction + "\n\nTailor my resume for: " + strings.TrimSpace(input)
}
