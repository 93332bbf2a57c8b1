package review

import (
	"path/filepath"
	"testing"
)

func TestLoadKeepsFileOrder(t *testing.T) {
	t.Parallel()

	store, err := Load(filepath.Join("testdata", "reviews.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 5 {
		t.Fatalf("expected 5 reviews, got %d", store.Len())
	}
	if store.reviews[0].Title != "Great pasta" {
		t.Fatalf("unexpected first review: %s", store.reviews[0].Title)
	}
	if store.reviews[4].Rating != "n/a" {
		t.Fatalf("expected raw rating string to survive, got %q", store.reviews[4].Rating)
	}
	if store.reviews[1].Body != "Cold soup, slow service. Terrible pasta!" {
		t.Fatalf("unexpected quoted body: %q", store.reviews[1].Body)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join("testdata", "does_not_exist.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
