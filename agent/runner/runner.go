package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	contractx "reviewdesk/agent/contract"
	toolx "reviewdesk/agent/tool"
	logx "reviewdesk/pkg/logger"
)

// DefaultMaxIterations bounds a runner constructed without an explicit
// iteration budget.
const DefaultMaxIterations = 3

const stopMessage = "Agent stopped due to iteration limit."

const recoveryObservation = "your response could not be parsed. " +
	"Reply with an Action and Action Input line, or a Final Answer line."

// Runner drives the bounded tool-selection loop: ask the model for one
// action, execute it through the registry, feed the observation back, stop
// on a final answer or when the iteration budget runs out.
type Runner struct {
	completer     Completer
	registry      *toolx.Registry
	maxIterations int
	log           zerolog.Logger
}

var _ contractx.Runner = (*Runner)(nil)

func New(completer Completer, registry *toolx.Registry, maxIterations int) (*Runner, error) {
	if completer == nil {
		return nil, fmt.Errorf("%w: completer is required", contractx.ErrValidation)
	}
	if registry == nil {
		return nil, fmt.Errorf("%w: tool registry is required", contractx.ErrValidation)
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &Runner{
		completer:     completer,
		registry:      registry,
		maxIterations: maxIterations,
		log:           logx.Component("runner"),
	}, nil
}

func MustNew(completer Completer, registry *toolx.Registry, maxIterations int) *Runner {
	r, err := New(completer, registry, maxIterations)
	if err != nil {
		panic(err)
	}
	return r
}

// Run executes the loop for one goal. Model errors propagate; everything a
// tool produces, including its failures, flows back as observation text.
// When the bound is exhausted the last observation (or a fixed stop
// message) becomes the result, so a single-iteration agent still reports
// its one tool outcome.
func (r *Runner) Run(ctx context.Context, goal string) (string, error) {
	if strings.TrimSpace(goal) == "" {
		return "", fmt.Errorf("%w: goal is required", contractx.ErrValidation)
	}

	var transcript strings.Builder
	transcript.WriteString("Question: " + goal + "\n")

	lastObservation := ""

	for i := 0; i < r.maxIterations; i++ {
		out, err := r.completer.Complete(ctx, transcript.String())
		if err != nil {
			return "", err
		}

		transcript.WriteString(strings.TrimSpace(out) + "\n")

		action, perr := parseAction(out)
		if perr != nil {
			r.log.Debug().Int("iteration", i).Err(perr).Msg("unparseable model turn, reprompting")
			transcript.WriteString("Observation: " + recoveryObservation + "\n")
			continue
		}

		if action.Final {
			return action.Answer, nil
		}

		observation := r.registry.Execute(ctx, action.Tool, action.Input)
		r.log.Debug().
			Int("iteration", i).
			Str("tool", action.Tool).
			Msg("executed tool")

		if t, ok := r.registry.Lookup(action.Tool); ok && t.Final {
			return observation, nil
		}

		lastObservation = observation
		transcript.WriteString("Observation: " + observation + "\n")
	}

	if lastObservation != "" {
		return lastObservation, nil
	}
	return stopMessage, nil
}
