package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	contractx "reviewdesk/agent/contract"
)

type fakeClassifier struct {
	intent contractx.Intent
	err    error
	seen   []string
}

func (f *fakeClassifier) Classify(_ context.Context, text string) (contractx.Intent, error) {
	f.seen = append(f.seen, text)
	return f.intent, f.err
}

type fakeRunner struct {
	result string
	err    error
	goals  []string
}

func (f *fakeRunner) Run(_ context.Context, goal string) (string, error) {
	f.goals = append(f.goals, goal)
	return f.result, f.err
}

func TestRouteReviewIntent(t *testing.T) {
	t.Parallel()

	review := &fakeRunner{result: "There are 4 reviews with an average rating of 3.5 stars."}
	mail := &fakeRunner{result: "should not run"}
	r, err := New(&fakeClassifier{intent: contractx.IntentReview}, review, mail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Route(context.Background(), "what is the average rating?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != contractx.IntentReview || got.Result != review.result {
		t.Fatalf("unexpected route result: %+v", got)
	}
	if len(review.goals) != 1 || review.goals[0] != "what is the average rating?" {
		t.Fatalf("review runner calls: %v", review.goals)
	}
	if len(mail.goals) != 0 {
		t.Fatalf("mail runner should not have been called: %v", mail.goals)
	}
}

func TestRouteMailIntent(t *testing.T) {
	t.Parallel()

	review := &fakeRunner{result: "should not run"}
	mail := &fakeRunner{result: "Email sent successfully to bob@example.com"}
	r, err := New(&fakeClassifier{intent: contractx.IntentMail}, review, mail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Route(context.Background(), "send bob the summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != contractx.IntentMail || got.Result != mail.result {
		t.Fatalf("unexpected route result: %+v", got)
	}
	if len(review.goals) != 0 {
		t.Fatalf("review runner should not have been called: %v", review.goals)
	}
}

func TestRouteUnknownIntent(t *testing.T) {
	t.Parallel()

	review := &fakeRunner{result: "should not run"}
	mail := &fakeRunner{result: "should not run"}
	r, err := New(&fakeClassifier{intent: contractx.IntentUnknown}, review, mail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Route(context.Background(), "what's the weather?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != contractx.IntentUnknown || got.Result != Apology {
		t.Fatalf("unexpected route result: %+v", got)
	}
	if len(review.goals)+len(mail.goals) != 0 {
		t.Fatal("no agent should run for an unknown intent")
	}
}

func TestRouteClassifierError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("model unavailable")
	r, err := New(&fakeClassifier{err: wantErr}, &fakeRunner{}, &fakeRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := r.Route(context.Background(), "anything"); !errors.Is(err, wantErr) {
		t.Fatalf("expected classifier error, got %v", err)
	}
}

func TestRouteRunnerError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("tool loop failed")
	r, err := New(&fakeClassifier{intent: contractx.IntentReview}, &fakeRunner{err: wantErr}, &fakeRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := r.Route(context.Background(), "anything"); !errors.Is(err, wantErr) {
		t.Fatalf("expected runner error, got %v", err)
	}
}

func TestRouteEmptyPrompt(t *testing.T) {
	t.Parallel()

	r, err := New(&fakeClassifier{intent: contractx.IntentReview}, &fakeRunner{}, &fakeRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := r.Route(context.Background(), "  \n"); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		classifier contractx.Classifier
		review     contractx.Runner
		mail       contractx.Runner
		want       string
	}{
		{"nil classifier", nil, &fakeRunner{}, &fakeRunner{}, "classifier"},
		{"nil review runner", &fakeClassifier{}, nil, &fakeRunner{}, "review"},
		{"nil mail runner", &fakeClassifier{}, &fakeRunner{}, nil, "mail"},
	}
	for _, tc := range cases {
		_, err := New(tc.classifier, tc.review, tc.mail)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: got %v", tc.name, err)
		}
	}
}
