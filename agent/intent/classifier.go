package intent

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	openaisdk "github.com/openai/openai-go"

	contractx "reviewdesk/agent/contract"
	promptx "reviewdesk/agent/prompt"
)

// CompletionClient is the single-shot completion surface the classifier
// needs from the SDK client.
type CompletionClient interface {
	Completion(ctx context.Context, prompt string) (string, error)
}

// Classifier labels a prompt as Review or Mail with one model completion.
// Anything else the model says becomes Unknown; there is no retry.
type Classifier struct {
	client   CompletionClient
	template string
}

var _ contractx.Classifier = (*Classifier)(nil)

func NewClassifier(client CompletionClient, template string) (*Classifier, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: completion client is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(template) == "" {
		return nil, fmt.Errorf("%w: intent template is required", contractx.ErrValidation)
	}
	return &Classifier{client: client, template: template}, nil
}

func (c *Classifier) Classify(ctx context.Context, text string) (contractx.Intent, error) {
	prompt := promptx.Fill(c.template, map[string]string{
		"user_input": text,
	})

	raw, err := c.client.Completion(ctx, prompt)
	if err != nil {
		return contractx.IntentUnknown, err
	}
	return normalize(raw), nil
}

// normalize mirrors the trim-and-capitalize the labels were designed
// around: "REVIEW" and "review" both land on Review.
func normalize(raw string) contractx.Intent {
	runes := []rune(strings.ToLower(strings.TrimSpace(raw)))
	if len(runes) == 0 {
		return contractx.IntentUnknown
	}
	runes[0] = unicode.ToUpper(runes[0])

	switch contractx.Intent(runes) {
	case contractx.IntentReview:
		return contractx.IntentReview
	case contractx.IntentMail:
		return contractx.IntentMail
	default:
		return contractx.IntentUnknown
	}
}

// SDKClient adapts an openai-go client to CompletionClient.
type SDKClient struct {
	client *openaisdk.Client
	model  string
}

func NewSDKClient(client *openaisdk.Client, model string) (*SDKClient, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: sdk client is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: model name is required", contractx.ErrValidation)
	}
	return &SDKClient{client: client, model: strings.TrimSpace(model)}, nil
}

func (s *SDKClient) Completion(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(s.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: intent completion: %v", contractx.ErrModelInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: intent completion returned no choices", contractx.ErrSchemaViolation)
	}
	return resp.Choices[0].Message.Content, nil
}
