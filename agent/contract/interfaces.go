package contract

import "context"

// Runner executes a bounded tool-selection loop toward a natural-language
// goal and returns the final user-facing text.
type Runner interface {
	Run(ctx context.Context, goal string) (string, error)
}

// Classifier labels a free-text prompt with one Intent.
type Classifier interface {
	Classify(ctx context.Context, text string) (Intent, error)
}
