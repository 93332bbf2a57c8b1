package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/review.txt
	reviewRaw string

	//go:embed template/mail.txt
	mailRaw string

	//go:embed template/intent.txt
	intentRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Review string
	Mail   string
	Intent string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings. Safe to
// call concurrently; the embed is compile-time and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Review: strings.TrimSpace(reviewRaw),
		Mail:   strings.TrimSpace(mailRaw),
		Intent: strings.TrimSpace(intentRaw),
	}
}

// Fill substitutes {name} placeholders in a template.
func Fill(template string, vars map[string]string) string {
	out := template
	for key, val := range vars {
		out = strings.ReplaceAll(out, "{"+key+"}", val)
	}
	return out
}
