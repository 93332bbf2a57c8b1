package contract

type AgentType string

const (
	AgentTypeReview AgentType = "review"
	AgentTypeMail   AgentType = "mail"
	AgentTypeIntent AgentType = "intent"
)

// Intent is the classifier's label for a free-text prompt. Anything the
// classifier cannot place into Review or Mail is Unknown.
type Intent string

const (
	IntentReview  Intent = "Review"
	IntentMail    Intent = "Mail"
	IntentUnknown Intent = "Unknown"
)

// RouteResult is the outcome of routing one prompt through the smart
// router: the classified intent plus the selected agent's final text.
type RouteResult struct {
	Intent Intent `json:"intent"`
	Result string `json:"result"`
}
