package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Mailer transmits a single message. Implemented by pkg/mailer; tests
// substitute fakes.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type mailInput struct {
	To      string  `json:"to"`
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

// NewMailRegistry exposes the single send-mail action plus the terminal
// pass-through as the mail agent's action space.
func NewMailRegistry(m Mailer) *Registry {
	return MustNewRegistry(
		Tool{
			Name:    "SendMail",
			Desc:    "Send an email with given content. Input should be the email details as JSON string.",
			Handler: sendMail(m),
		},
		Tool{
			Name:  FinalAnswerName,
			Desc:  "Return the final answer to the user and stop the agent.",
			Final: true,
			Handler: func(_ context.Context, text string) (string, error) {
				return text, nil
			},
		},
	)
}

// sendMail parses a JSON {to, subject, body} payload and fires one send.
// Every failure, from malformed JSON to transport errors, becomes a
// "[SendMail Error] " string so the loop always has text to reason over.
func sendMail(m Mailer) Handler {
	return func(ctx context.Context, input string) (string, error) {
		var req mailInput
		if err := json.Unmarshal([]byte(input), &req); err != nil {
			return fmt.Sprintf("[SendMail Error] %s", err), nil
		}

		to := strings.TrimSpace(req.To)
		if to == "" {
			return "[SendMail Error] 'to' address is required", nil
		}

		subject := "No Subject"
		if req.Subject != nil {
			subject = *req.Subject
		}
		body := ""
		if req.Body != nil {
			body = *req.Body
		}

		if err := m.Send(ctx, to, subject, body); err != nil {
			return fmt.Sprintf("[SendMail Error] %s", err), nil
		}
		return fmt.Sprintf("Email sent successfully to %s", to), nil
	}
}
