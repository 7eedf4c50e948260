package usecase

import (
	"fmt"
	"strings"
)

const maxPromptText = 8000

// analyzePrompt asks for a structured qualitative read of one resume.
// Output format mirrors what parseAdvisorAdvice expects.
func analyzePrompt(text, targetRole string) string {
	var sb strings.Builder
	sb.WriteString("You are a resume reviewer. Assess the resume below")
	if targetRole != "" {
		sb.WriteString(fmt.Sprintf(" for a %s role", targetRole))
	}
	sb.WriteString(".\n\nRespond in exactly this format:\n")
	sb.WriteString("SCORE: <0-100>\nSTRENGTHS:\n- <3 to 5 bullet points>\nIMPROVEMENTS:\n- <3 to 5 bullet points>\n\n")
	sb.WriteString("RESUME:\n")
	sb.WriteString(truncate(text, maxPromptText))
	return sb.String()
}

// matchPrompt asks for exactly three ranked learning recommendations.
func matchPrompt(jobDescription string, missing []string) string {
	var sb strings.Builder
	sb.WriteString("A candidate is missing these skills required by a job posting: ")
	sb.WriteString(strings.Join(missing, ", "))
	sb.WriteString(".\n\nGive exactly 3 concrete recommendations to close the gap, ")
	sb.WriteString("one per line, each starting with its rank (\"1.\", \"2.\", \"3.\").\n\n")
	sb.WriteString("JOB DESCRIPTION:\n")
	sb.WriteString(truncate(jobDescription, maxPromptText))
	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n...[truncated]"
}
