package generate

import (
	"context"
	"strings"
	"testing"
)

var _ Generator = (*Rules)(nil)

func TestRules_Generate_Categories(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{
			name:     "in-demand skills",
			question: "What skills are in demand?",
			want:     "Based on the job market data, the most in-demand skills include Python, AI, and fluent language abilities. These skills appear frequently in job postings across different sectors.",
		},
		{
			name:     "career transition",
			question: "How do I transition from teaching to data science?",
			want:     "To transition between these roles, focus on developing common skills that both positions require. Consider additional training or certifications in the target role's primary skills.",
		},
		{
			name:     "career path keyword",
			question: "What is the best path into engineering?",
			want:     "To transition between these roles, focus on developing common skills that both positions require. Consider additional training or certifications in the target role's primary skills.",
		},
		{
			name:     "salary",
			question: "What is the salary for a data scientist?",
			want:     "Salary ranges vary by position, location, and experience level. The data shows that specialized technical roles generally offer higher compensation, with entry-level positions starting at competitive rates.",
		},
		{
			name:     "pay keyword",
			question: "How much do these jobs pay?",
			want:     "Salary ranges vary by position, location, and experience level. The data shows that specialized technical roles generally offer higher compensation, with entry-level positions starting at competitive rates.",
		},
		{
			name:     "generic",
			question: "Tell me about the job market.",
			want:     "After analyzing the job market data, I found multiple relevant positions matching your query. The skills typically required for these roles include technical expertise and domain knowledge. Consider exploring positions that align with your experience and interests.",
		},
	}

	r := NewRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := "Some context here.\n\nQuestion: " + tt.question + "\nAnswer:"
			got, err := r.Generate(context.Background(), prompt)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Generate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRules_Generate_BarePrompt(t *testing.T) {
	// Without the Question/Answer markers the whole prompt is categorized.
	r := NewRules()
	got, err := r.Generate(context.Background(), "which skills are in demand right now")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(got, "most in-demand skills") {
		t.Errorf("Generate() = %q, want in-demand answer", got)
	}
}

func TestRules_Name(t *testing.T) {
	if got := NewRules().Name(); got != "rules" {
		t.Errorf("Name() = %q, want rules", got)
	}
}

func TestExtractQuestion(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{
			name:   "full prompt",
			prompt: "Context lines.\n\nQuestion: What skills matter?\nAnswer:\n",
			want:   "What skills matter?",
		},
		{
			name:   "no markers",
			prompt: "  just a question  ",
			want:   "just a question",
		},
		{
			name:   "question marker only",
			prompt: "Question: trailing without answer marker",
			want:   "trailing without answer marker",
		},
		{
			name:   "empty",
			prompt: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractQuestion(tt.prompt); got != tt.want {
				t.Errorf("extractQuestion() = %q, want %q", got, tt.want)
			}
		})
	}
}
