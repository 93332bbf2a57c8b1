package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "reviewdesk/agent/contract"
	ollamax "reviewdesk/pkg/ollama"
)

// Config selects which local model serves each agent. A single default
// model covers everything; the per-agent fields override it.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"http://localhost:11434/v1"`
	Model              string        `envconfig:"MODEL" split_words:"true" default:"llama3.1"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"120s"`

	ReviewModel       string  `envconfig:"REVIEW_MODEL" split_words:"true"`
	MailModel         string  `envconfig:"MAIL_MODEL" split_words:"true"`
	IntentModel       string  `envconfig:"INTENT_MODEL" split_words:"true"`
	ReviewTemperature float32 `envconfig:"REVIEW_TEMPERATURE" split_words:"true" default:"-1"`
	MailTemperature   float32 `envconfig:"MAIL_TEMPERATURE" split_words:"true" default:"-1"`
	IntentTemperature float32 `envconfig:"INTENT_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OllamaFor resolves the model config for one agent type.
func (c Config) OllamaFor(agentType contractx.AgentType) ollamax.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch agentType {
	case contractx.AgentTypeReview:
		if v := strings.TrimSpace(c.ReviewModel); v != "" {
			modelName = v
		}
		if c.ReviewTemperature >= 0 {
			temp = c.ReviewTemperature
		}
	case contractx.AgentTypeMail:
		if v := strings.TrimSpace(c.MailModel); v != "" {
			modelName = v
		}
		if c.MailTemperature >= 0 {
			temp = c.MailTemperature
		}
	case contractx.AgentTypeIntent:
		if v := strings.TrimSpace(c.IntentModel); v != "" {
			modelName = v
		}
		if c.IntentTemperature >= 0 {
			temp = c.IntentTemperature
		}
	}

	maxCompletionToken := c.MaxCompletionToken
	return ollamax.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
	}
}
