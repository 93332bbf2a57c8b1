package review

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// The analytics tools below are text-in/text-out on purpose: the agent loop
// reasons over plain strings, so every result (including every failure) is
// rendered as a human-readable sentence.

const punctuation = ".,!?()"

// RatingSummary reports the review count and mean rating across rows whose
// rating parses as an integer. With no parseable ratings the mean is 0.
func (s *Store) RatingSummary(_ string) string {
	total := 0
	count := 0
	for _, r := range s.reviews {
		rating, err := strconv.Atoi(strings.TrimSpace(r.Rating))
		if err != nil {
			continue
		}
		total += rating
		count++
	}

	avg := 0.0
	if count > 0 {
		avg = float64(total) / float64(count)
	}
	return fmt.Sprintf("There are %d reviews with an average rating of %.1f stars.", count, avg)
}

// SearchReviews returns up to the first three reviews whose body contains
// the query, case-insensitively.
func (s *Store) SearchReviews(query string) string {
	lowered := strings.ToLower(query)
	var results []string
	for _, r := range s.reviews {
		if strings.Contains(strings.ToLower(r.Body), lowered) {
			results = append(results, fmt.Sprintf("%s (%s): %s", r.Title, r.Date, r.Body))
		}
	}
	if len(results) == 0 {
		return "No reviews found matching your query."
	}
	if len(results) > 3 {
		results = results[:3]
	}
	return strings.Join(results, "\n\n")
}

// CountRating counts reviews carrying exactly the given star rating.
func (s *Store) CountRating(arg string) string {
	rating, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return "Invalid input. Please provide a number like '5'."
	}

	want := strconv.Itoa(rating)
	count := 0
	for _, r := range s.reviews {
		if strings.TrimSpace(r.Rating) == want {
			count++
		}
	}
	return fmt.Sprintf("%d customers gave a %d-star rating.", count, rating)
}

// TopRatedComments returns the first N five-star reviews in file order.
func (s *Store) TopRatedComments(arg string) string {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return "Please provide a number like '3' to get top rated comments."
	}

	var top []string
	for _, r := range s.reviews {
		if strings.TrimSpace(r.Rating) != "5" {
			continue
		}
		top = append(top, fmt.Sprintf("%s (%s): %s", r.Title, r.Date, r.Body))
		if len(top) == n {
			break
		}
	}
	if n <= 0 || len(top) == 0 {
		return "No top rated reviews found."
	}
	return strings.Join(top, "\n\n")
}

// LowRatedReasons extracts the five most frequent words from the bodies of
// 1- and 2-star reviews. Ties keep first-encounter order.
func (s *Store) LowRatedReasons(_ string) string {
	counts := map[string]int{}
	var order []string
	for _, r := range s.reviews {
		rating := strings.TrimSpace(r.Rating)
		if rating != "1" && rating != "2" {
			continue
		}
		for _, word := range tokenize(r.Body) {
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 5 {
		order = order[:5]
	}
	return "Common keywords in low-rated reviews: " + strings.Join(order, ", ")
}

// ReviewCountByDate counts reviews posted on one exact date string.
func (s *Store) ReviewCountByDate(date string) string {
	count := 0
	for _, r := range s.reviews {
		if r.Date == date {
			count++
		}
	}
	return fmt.Sprintf("%d reviews were posted on %s.", count, date)
}

// MostMentionedDish returns the single most frequent word longer than three
// letters across all review bodies. Ties resolve to the word encountered
// first.
func (s *Store) MostMentionedDish(_ string) string {
	counts := map[string]int{}
	var order []string
	for _, r := range s.reviews {
		for _, word := range tokenize(r.Body) {
			if len([]rune(word)) <= 3 {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}
	if len(order) == 0 {
		return "No mentions found."
	}

	top := order[0]
	for _, word := range order[1:] {
		if counts[word] > counts[top] {
			top = word
		}
	}
	return fmt.Sprintf("The most mentioned term in reviews is '%s' with %d mentions.", top, counts[top])
}

// SentimentTrend reports mean rating per calendar month in ascending month
// order, over rows with a parseable date and rating.
func (s *Store) SentimentTrend(_ string) string {
	totals := map[string]int{}
	counts := map[string]int{}
	for _, r := range s.reviews {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue
		}
		rating, err := strconv.Atoi(strings.TrimSpace(r.Rating))
		if err != nil {
			continue
		}
		month := date.Format("2006-01")
		totals[month] += rating
		counts[month]++
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	lines := make([]string, 0, len(months))
	for _, month := range months {
		avg := float64(totals[month]) / float64(counts[month])
		lines = append(lines, fmt.Sprintf("%s: %.2f", month, avg))
	}
	return "Sentiment trend by month:\n" + strings.Join(lines, "\n")
}

// tokenize lowercases a body, splits on whitespace, strips surrounding
// punctuation and keeps all-letter tokens.
func tokenize(body string) []string {
	var tokens []string
	for _, field := range strings.Fields(strings.ToLower(body)) {
		word := strings.Trim(field, punctuation)
		if word == "" || !isAlpha(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
