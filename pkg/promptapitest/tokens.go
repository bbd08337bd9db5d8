// ABOUTME: Token usage estimation for the scripted host
// ABOUTME: Chars ÷ 4 for text; flat costs for media content

package promptapitest

import "github.com/zivl/prompt-api-types/pkg/promptapi"

// Flat per-item media costs. Real hosts meter media by duration and
// resolution; the scripted host only needs numbers that add up predictably.
const (
	imageTokens = 1000
	audioTokens = 1500

	// messageOverhead covers role and separator tokens per message.
	messageOverhead = 4
)

// EstimateText approximates token count with the chars ÷ 4 heuristic,
// accurate within ~10% for English text.
func EstimateText(text string) float64 {
	if text == "" {
		return 0
	}
	return float64((len(text) + 3) / 4)
}

// EstimateContent estimates tokens for a single content item.
func EstimateContent(c promptapi.Content) float64 {
	switch c.Type {
	case promptapi.ContentText:
		return EstimateText(c.Text)
	case promptapi.ContentImage:
		return imageTokens
	case promptapi.ContentAudio:
		return audioTokens
	default:
		return 0
	}
}

// EstimateMessages estimates tokens for an ordered message list.
func EstimateMessages(msgs []promptapi.Message) float64 {
	var total float64
	for _, m := range msgs {
		total += messageOverhead + EstimateContent(m.Content)
	}
	return total
}
