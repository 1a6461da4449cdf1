package prompter

import (
	"strings"
)

// Context merges note content with the style preference and optional custom
// instructions into the user message sent to the completion service.
func Context(content, style, instructions string) string {
	var sb strings.Builder

	sb.WriteString("Content to visualize:\n")
	sb.WriteString(content)
	sb.WriteString("\n\n")

	sb.WriteString("Style preference: ")
	sb.WriteString(style)
	sb.WriteString("\n")

	if instructions != "" {
		sb.WriteString("Additional instructions: ")
		sb.WriteString(instructions)
	}

	sb.WriteString("\n\n")

	sb.WriteString("Create a detailed visual description for an immersive background image that:\n")
	sb.WriteString("- Captures the essence and mood of the content\n")
	sb.WriteString("- Creates an atmospheric environment for writing\n")
	sb.WriteString("- Is suitable as a subtle background (not too distracting)\n")
	sb.WriteString("- Follows the specified style preferences\n")

	return strings.TrimSpace(sb.String())
}
