package intent

import (
	"context"
	"errors"
	"strings"
	"testing"

	contractx "reviewdesk/agent/contract"
)

type fakeCompletion struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeCompletion) Completion(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

const testTemplate = "Classify this request as Review or Mail.\n\nRequest: {user_input}\nLabel:"

func TestClassifyNormalizesLabels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		reply string
		want  contractx.Intent
	}{
		{"Review", contractx.IntentReview},
		{"REVIEW", contractx.IntentReview},
		{"  review \n", contractx.IntentReview},
		{"Mail", contractx.IntentMail},
		{"mail", contractx.IntentMail},
		{"banana", contractx.IntentUnknown},
		{"Review.", contractx.IntentUnknown},
		{"", contractx.IntentUnknown},
		{"   ", contractx.IntentUnknown},
	}

	for _, tc := range cases {
		c, err := NewClassifier(&fakeCompletion{reply: tc.reply}, testTemplate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := c.Classify(context.Background(), "What do customers say?")
		if err != nil {
			t.Fatalf("reply %q: unexpected error: %v", tc.reply, err)
		}
		if got != tc.want {
			t.Fatalf("reply %q: got %q, want %q", tc.reply, got, tc.want)
		}
	}
}

func TestClassifyFillsUserInput(t *testing.T) {
	t.Parallel()

	fake := &fakeCompletion{reply: "Mail"}
	c, err := NewClassifier(fake, testTemplate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.Classify(context.Background(), "send an email to bob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.prompts) != 1 {
		t.Fatalf("expected one completion call, got %d", len(fake.prompts))
	}
	if !strings.Contains(fake.prompts[0], "Request: send an email to bob") {
		t.Fatalf("prompt missing user input: %q", fake.prompts[0])
	}
	if strings.Contains(fake.prompts[0], "{user_input}") {
		t.Fatalf("placeholder left unfilled: %q", fake.prompts[0])
	}
}

func TestClassifyErrorPropagates(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("connection refused")
	c, err := NewClassifier(&fakeCompletion{err: wantErr}, testTemplate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.Classify(context.Background(), "anything")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected completion error, got %v", err)
	}
	if got != contractx.IntentUnknown {
		t.Fatalf("expected unknown intent on error, got %q", got)
	}
}

func TestNewClassifierValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewClassifier(nil, testTemplate); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected validation error for nil client, got %v", err)
	}
	if _, err := NewClassifier(&fakeCompletion{}, "  "); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected validation error for empty template, got %v", err)
	}
}
