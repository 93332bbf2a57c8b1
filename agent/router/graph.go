package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"

	contractx "reviewdesk/agent/contract"
)

type routeState struct {
	Prompt string
	Intent contractx.Intent
}

func (r *Router) compileRouteGraph(
	ctx context.Context,
) (compose.Runnable[string, contractx.RouteResult], error) {
	graph := compose.NewGraph[string, contractx.RouteResult]()

	if err := graph.AddLambdaNode("classify_intent",
		compose.InvokableLambda(func(ctx context.Context, prompt string) (*routeState, error) {
			if strings.TrimSpace(prompt) == "" {
				return nil, fmt.Errorf("%w: prompt is required", contractx.ErrValidation)
			}
			intent, err := r.classifier.Classify(ctx, prompt)
			if err != nil {
				return nil, err
			}
			return &routeState{Prompt: prompt, Intent: intent}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node classify_intent: %w", err)
	}

	if err := graph.AddLambdaNode("review_path",
		compose.InvokableLambda(func(ctx context.Context, in *routeState) (contractx.RouteResult, error) {
			result, err := r.review.Run(ctx, in.Prompt)
			if err != nil {
				return contractx.RouteResult{}, err
			}
			return contractx.RouteResult{Intent: in.Intent, Result: result}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node review_path: %w", err)
	}

	if err := graph.AddLambdaNode("mail_path",
		compose.InvokableLambda(func(ctx context.Context, in *routeState) (contractx.RouteResult, error) {
			result, err := r.mail.Run(ctx, in.Prompt)
			if err != nil {
				return contractx.RouteResult{}, err
			}
			return contractx.RouteResult{Intent: in.Intent, Result: result}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node mail_path: %w", err)
	}

	if err := graph.AddLambdaNode("unknown_path",
		compose.InvokableLambda(func(ctx context.Context, in *routeState) (contractx.RouteResult, error) {
			return contractx.RouteResult{Intent: contractx.IntentUnknown, Result: Apology}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node unknown_path: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *routeState) (string, error) {
			if in == nil {
				return "", fmt.Errorf("%w: route state is nil", contractx.ErrValidation)
			}
			switch in.Intent {
			case contractx.IntentReview:
				return "review_path", nil
			case contractx.IntentMail:
				return "mail_path", nil
			default:
				return "unknown_path", nil
			}
		},
		map[string]bool{
			"review_path":  true,
			"mail_path":    true,
			"unknown_path": true,
		},
	)

	if err := graph.AddBranch("classify_intent", branch); err != nil {
		return nil, fmt.Errorf("add route branch: %w", err)
	}
	if err := graph.AddEdge(compose.START, "classify_intent"); err != nil {
		return nil, fmt.Errorf("add edge start->classify_intent: %w", err)
	}
	for _, node := range []string{"review_path", "mail_path", "unknown_path"} {
		if err := graph.AddEdge(node, compose.END); err != nil {
			return nil, fmt.Errorf("add edge %s->end: %w", node, err)
		}
	}

	compiled, err := graph.Compile(ctx, compose.WithGraphName("router.route_prompt"))
	if err != nil {
		return nil, fmt.Errorf("compile route graph: %w", err)
	}
	return compiled, nil
}
