package runner

import (
	"fmt"
	"strings"
)

// Action is one parsed model turn: either a tool call or the designated
// final answer that terminates the run.
type Action struct {
	Tool   string
	Input  string
	Final  bool
	Answer string
}

const (
	finalAnswerMarker = "Final Answer:"
	actionMarker      = "Action:"
	actionInputMarker = "Action Input:"
)

// parseAction extracts a tagged action from the model's transcript turn.
// A "Final Answer:" marker wins over a tool call; otherwise an "Action:"
// line followed by "Action Input:" selects a tool, with the input running
// to the end of the turn (tool inputs may span lines, e.g. JSON payloads).
func parseAction(output string) (Action, error) {
	if idx := strings.Index(output, finalAnswerMarker); idx >= 0 {
		return Action{
			Final:  true,
			Answer: strings.TrimSpace(output[idx+len(finalAnswerMarker):]),
		}, nil
	}

	actionIdx := strings.Index(output, actionMarker)
	if actionIdx < 0 {
		return Action{}, fmt.Errorf("no action marker in model output")
	}
	rest := output[actionIdx+len(actionMarker):]

	inputIdx := strings.Index(rest, actionInputMarker)
	if inputIdx < 0 {
		return Action{}, fmt.Errorf("no action input marker in model output")
	}

	tool := strings.TrimSpace(rest[:inputIdx])
	if tool == "" {
		return Action{}, fmt.Errorf("empty tool name in model output")
	}

	input := strings.TrimSpace(rest[inputIdx+len(actionInputMarker):])
	input = strings.Trim(input, "`")
	input = strings.TrimSpace(strings.Trim(input, `"`))

	return Action{Tool: tool, Input: input}, nil
}
