package ai

import (
	"encoding/json"
	"strings"

	"saathigo/internal/models"
)

const defaultSummary = "Analysis completed"

// parseAssessment extracts a structured assessment from model output.
// Extraction is best-effort: markdown code fences are stripped and the text is
// narrowed to its outermost JSON object before unmarshalling. Absent fields
// take per-field defaults; a second return of false means the output carried
// no usable JSON at all.
func parseAssessment(text string) (models.Assessment, bool) {
	raw := extractJSON(text)
	if raw == "" {
		return models.Assessment{}, false
	}

	var parsed struct {
		Severity         string   `json:"severity_level"`
		DetectedConcerns []string `json:"detected_concerns"`
		Recommendations  []string `json:"recommendations"`
		Summary          string   `json:"summary"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return models.Assessment{}, false
	}

	assessment := models.Assessment{
		Severity:         models.Severity(parsed.Severity),
		DetectedConcerns: parsed.DetectedConcerns,
		Recommendations:  parsed.Recommendations,
		Summary:          parsed.Summary,
	}
	if assessment.Severity == "" {
		assessment.Severity = models.SeverityModerate
	}
	if assessment.DetectedConcerns == nil {
		assessment.DetectedConcerns = []string{}
	}
	if assessment.Recommendations == nil {
		assessment.Recommendations = []string{}
	}
	if assessment.Summary == "" {
		assessment.Summary = defaultSummary
	}
	return assessment, true
}

func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func fallbackAssessment(conversationLength int) models.Assessment {
	return models.Assessment{
		Severity:           models.SeverityModerate,
		DetectedConcerns:   []string{"General mental health discussion"},
		Recommendations:    []string{"Continue the conversation", "Consider professional support if needed"},
		Summary:            "User is engaging in mental health discussion",
		ConversationLength: conversationLength,
	}
}
