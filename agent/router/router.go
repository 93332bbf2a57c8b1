package router

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/compose"

	contractx "reviewdesk/agent/contract"
)

// Apology is returned for prompts the classifier cannot place; neither
// agent is invoked in that case.
const Apology = "Sorry, I couldn't understand if this is about reviews or sending mail."

// Router sends a free-text prompt through intent classification and then
// through the matching agent loop.
type Router struct {
	classifier contractx.Classifier
	review     contractx.Runner
	mail       contractx.Runner

	graphRunner compose.Runnable[string, contractx.RouteResult]
}

func New(classifier contractx.Classifier, review, mail contractx.Runner) (*Router, error) {
	if classifier == nil {
		return nil, errors.New("intent classifier is required")
	}
	if review == nil {
		return nil, errors.New("review runner is required")
	}
	if mail == nil {
		return nil, errors.New("mail runner is required")
	}

	r := &Router{
		classifier: classifier,
		review:     review,
		mail:       mail,
	}

	graphRunner, err := r.compileRouteGraph(context.Background())
	if err != nil {
		return nil, err
	}
	r.graphRunner = graphRunner

	return r, nil
}

func (r *Router) Route(ctx context.Context, prompt string) (contractx.RouteResult, error) {
	return r.graphRunner.Invoke(ctx, prompt)
}
