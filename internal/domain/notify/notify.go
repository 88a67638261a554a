// Package notify holds the types shared between the dispatch orchestrator and
// the HTTP layer: recipients, per-recipient outcomes, and the batch summary.
package notify

// Recipient is one target of a bulk dispatch. TemplateFields feeds message
// personalization; a missing field renders as an empty string.
type Recipient struct {
	ID             string            `json:"id"`
	PhoneNumber    string            `json:"phoneNumber"`
	DisplayName    string            `json:"displayName"`
	TemplateFields map[string]string `json:"templateFields"`
}

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeSkipped Outcome = "skipped"
)

// DispatchResult records what happened for a single recipient.
type DispatchResult struct {
	Recipient   Recipient `json:"recipient"`
	Outcome     Outcome   `json:"outcome"`
	ErrorDetail string    `json:"errorDetail,omitempty"`
}

// DispatchSummary aggregates a batch. Skipped recipients (no contact number)
// are counted apart from hard send failures so the caller can report them
// distinctly.
type DispatchSummary struct {
	SuccessCount int `json:"successCount"`
	FailureCount int `json:"failureCount"`
	SkippedCount int `json:"skippedCount"`
}

func (s DispatchSummary) Total() int {
	return s.SuccessCount + s.FailureCount + s.SkippedCount
}

// Summarize folds per-recipient results into a summary.
func Summarize(results []DispatchResult) DispatchSummary {
	var s DispatchSummary
	for _, r := range results {
		switch r.Outcome {
		case OutcomeSuccess:
			s.SuccessCount++
		case OutcomeFailure:
			s.FailureCount++
		case OutcomeSkipped:
			s.SkippedCount++
		}
	}
	return s
}
