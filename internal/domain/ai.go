package domain

// AIRequest describes a content generation request. All intelligence lives
// behind the backend; the client only assembles the payload.
type AIRequest struct {
	Tool       string         `json:"tool"`
	Prompt     string         `json:"prompt"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Context    string         `json:"context,omitempty"`
}

// AI tool names accepted by the generation endpoint.
const (
	ToolProposal      = "proposal"
	ToolContract      = "contract"
	ToolInvoice       = "invoice"
	ToolTaskBreakdown = "task_breakdown"
)

// AIResponse carries the generated content plus updated usage counters.
type AIResponse struct {
	Result     string         `json:"result"`
	UsageCount int            `json:"usage_count"`
	UsageLimit int            `json:"usage_limit"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// UsageStats is returned by the AI usage endpoint.
type UsageStats struct {
	UsageCount        int    `json:"usage_count"`
	UsageLimit        int    `json:"usage_limit"`
	RemainingRequests int    `json:"remaining_requests"`
	SubscriptionTier  string `json:"subscription_tier"`
}
