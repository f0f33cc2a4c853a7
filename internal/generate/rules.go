package generate

import (
	"context"
	"strings"
)

// Canned responses keyed on question category. The texts are stable so
// downstream consumers and tests can rely on them.
const (
	inDemandAnswer = "Based on the job market data, the most in-demand skills include Python, AI, and fluent language abilities. These skills appear frequently in job postings across different sectors."

	transitionAnswer = "To transition between these roles, focus on developing common skills that both positions require. Consider additional training or certifications in the target role's primary skills."

	compensationAnswer = "Salary ranges vary by position, location, and experience level. The data shows that specialized technical roles generally offer higher compensation, with entry-level positions starting at competitive rates."

	genericAnswer = "After analyzing the job market data, I found multiple relevant positions matching your query. The skills typically required for these roles include technical expertise and domain knowledge. Consider exploring positions that align with your experience and interests."
)

// Rules is a deterministic responder used when no generation API is
// reachable. It keys canned answers on the question and never errors, which
// makes it the terminal fallback in the generation chain.
type Rules struct{}

// NewRules creates the rule-based responder.
func NewRules() *Rules {
	return &Rules{}
}

// Name identifies the backend.
func (r *Rules) Name() string {
	return BackendRules
}

// Generate categorizes the question embedded in the prompt and returns the
// matching canned answer.
func (r *Rules) Generate(ctx context.Context, prompt string) (string, error) {
	question := strings.ToLower(extractQuestion(prompt))

	switch {
	case strings.Contains(question, "skill") && strings.Contains(question, "demand"):
		return inDemandAnswer, nil
	case strings.Contains(question, "path") || strings.Contains(question, "transition"):
		return transitionAnswer, nil
	case strings.Contains(question, "salary") || strings.Contains(question, "pay"):
		return compensationAnswer, nil
	default:
		return genericAnswer, nil
	}
}

// extractQuestion pulls the text between "Question: " and "\nAnswer:" out of
// an assembled prompt. Prompts without those markers are treated as the
// question itself.
func extractQuestion(prompt string) string {
	const qMark = "Question: "
	start := strings.Index(prompt, qMark)
	if start < 0 {
		return strings.TrimSpace(prompt)
	}
	rest := prompt[start+len(qMark):]

	end := strings.Index(rest, "\nAnswer:")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}
