package tool

import (
	"context"
	"strings"

	reviewx "reviewdesk/agent/review"
)

const FinalAnswerName = "FinalAnswer"

// NewReviewRegistry exposes the review analytics over a loaded store as the
// review agent's action space.
func NewReviewRegistry(store *reviewx.Store) *Registry {
	wrap := func(fn func(string) string) Handler {
		return func(_ context.Context, input string) (string, error) {
			return fn(input), nil
		}
	}

	return MustNewRegistry(
		Tool{
			Name:    "RatingSummary",
			Desc:    "Summarize overall customer sentiment from all reviews. Input is an empty string.",
			Handler: wrap(store.RatingSummary),
		},
		Tool{
			Name:    "SearchReviews",
			Desc:    "Search reviews for specific keywords. Input is a query string.",
			Handler: wrap(store.SearchReviews),
		},
		Tool{
			Name:    FinalAnswerName,
			Desc:    "Return the final answer to the user and stop the agent.",
			Final:   true,
			Handler: finalAnswer,
		},
		Tool{
			Name:    "CountRating",
			Desc:    "Counts how many customers gave a specific rating. Input must be a string representing a number.",
			Handler: wrap(store.CountRating),
		},
		Tool{
			Name:    "TopRatedComments",
			Desc:    "Returns the top N reviews with a 5-star rating. Input is a number string like '3'.",
			Handler: wrap(store.TopRatedComments),
		},
		Tool{
			Name:    "LowRatedReasons",
			Desc:    "Returns common keywords found in 1-2 star reviews. Input is an empty string.",
			Handler: wrap(store.LowRatedReasons),
		},
		Tool{
			Name:    "ReviewCountByDate",
			Desc:    "Returns the number of reviews posted on a specific date. Input must be in YYYY-MM-DD format.",
			Handler: wrap(store.ReviewCountByDate),
		},
		Tool{
			Name:    "MostMentionedDish",
			Desc:    "Returns the most frequently mentioned word (e.g., dish or term) in reviews.",
			Handler: wrap(store.MostMentionedDish),
		},
		Tool{
			Name:    "SentimentTrend",
			Desc:    "Returns the trend of average rating per month.",
			Handler: wrap(store.SentimentTrend),
		},
	)
}

func finalAnswer(_ context.Context, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "No final answer provided.", nil
	}
	return trimmed, nil
}
