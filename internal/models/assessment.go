package models

// Severity is the coarse concern classification produced by the analysis
// prompt.

type Severity string

const (
	SeverityLow      Severity = "LOW_CONCERN"
	SeverityModerate Severity = "MODERATE_CONCERN"
	SeverityHigh     Severity = "HIGH_CONCERN"
	SeverityCrisis   Severity = "CRISIS"
)

// Assessment summarizes the stored conversation. Produced fresh on every
// request, never persisted.
type Assessment struct {
	Severity           Severity `json:"severity_level"`
	DetectedConcerns   []string `json:"detected_concerns"`
	Recommendations    []string `json:"recommendations"`
	Summary            string   `json:"summary"`
	ConversationLength int      `json:"conversation_length"`
}
