package ai

import (
	"fmt"
	"strings"
)

const personaPrompt = `You are Saathi, an empathetic AI mental health companion. You provide supportive, non-judgmental responses to help users with their mental health concerns.

Guidelines for your responses:
- Be warm, empathetic, and compassionate
- Validate the user's feelings without judgment
- Listen actively and encourage sharing
- Provide practical coping strategies when appropriate
- Recognize when someone might need professional help
- Never diagnose conditions or prescribe medication
- Focus on emotional support and positive reinforcement
- If you detect signs of crisis or self-harm, strongly recommend professional help
- Keep responses conversational and natural
- Maintain user privacy and confidentiality

Important: If someone expresses suicidal thoughts, self-harm, or severe distress, provide crisis resources:
- In the US: Call 988 (Suicide & Crisis Lifeline) or text HOME to 741741 (Crisis Text Line)
- Encourage immediate professional help`

func replyPrompt(message string, context []string) string {
	var b strings.Builder
	b.WriteString("Current conversation context:\n")
	b.WriteString(joinUtterances(context))
	b.WriteString("\n\nUser's message: ")
	b.WriteString(message)
	b.WriteString("\n\nRespond as a caring mental health companion:")
	return b.String()
}

func assessmentPrompt(history []string) string {
	return fmt.Sprintf(`Analyze this conversation for mental health concerns and provide a brief assessment:

Conversation:
%s

Please provide a JSON response with:
- severity_level: "LOW_CONCERN", "MODERATE_CONCERN", "HIGH_CONCERN", or "CRISIS"
- detected_concerns: array of main concerns identified
- recommendations: array of suggested actions
- summary: brief summary of the analysis

Respond only with valid JSON:`, joinUtterances(history))
}

// joinUtterances renders buffered utterances one per line, the way the
// generation prompts expect them.
func joinUtterances(utterances []string) string {
	lines := make([]string, 0, len(utterances))
	for _, u := range utterances {
		lines = append(lines, "User: "+u)
	}
	return strings.Join(lines, "\n")
}
