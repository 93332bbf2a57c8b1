package review

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// Review is one row of the review table. Rating stays string-encoded: the
// source file carries it as text and each tool decides how strictly to
// parse it.
type Review struct {
	Title  string `csv:"Title"`
	Date   string `csv:"Date"`
	Rating string `csv:"Rating"`
	Body   string `csv:"Review"`
}

// Store holds the full review table in memory, in file order. It is loaded
// once at startup and never mutated afterwards, so it is safe to share
// across requests without locking.
type Store struct {
	reviews []Review
}

// Load reads the review table from a CSV file with a Title/Date/Rating/
// Review header. A missing or malformed file is an error; the caller is
// expected to treat it as fatal.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open review file: %w", err)
	}
	defer f.Close()

	var reviews []Review
	if err := gocsv.UnmarshalFile(f, &reviews); err != nil {
		return nil, fmt.Errorf("parse review file %s: %w", path, err)
	}

	return &Store{reviews: reviews}, nil
}

// NewStore wraps an already-materialized review slice, preserving order.
// Used by tests and by callers that assemble reviews elsewhere.
func NewStore(reviews []Review) *Store {
	return &Store{reviews: reviews}
}

func (s *Store) Len() int {
	return len(s.reviews)
}
