package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/tripdesk/concierge/internal/observability"
)

// fencedBlockPattern matches a triple-backtick fenced code block, optionally
// tagged json. The first capture group is the block body.
var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// Extraction is the result of pulling a structured suggestion out of a raw
// provider reply.
type Extraction struct {
	// CleanText is the reply prose with fenced blocks stripped. Never empty.
	CleanText string

	// StructuredData is the parsed suggestion payload, nil when the reply
	// carried no parseable block or the intent does not call for one.
	StructuredData map[string]any
}

// Extract pulls an optional fenced JSON suggestion out of rawText. The
// upstream model is not contractually guaranteed to emit valid JSON, so
// every stage degrades to plain text instead of surfacing a parse error:
// malformed blocks are logged and dropped, an empty remainder is replaced by
// a sentence synthesized from the parsed payload, and if everything else
// came up empty the deterministic fallback sentence is substituted.
func Extract(ctx context.Context, rawText string, intent Intent, trip TripContext) Extraction {
	result := Extraction{CleanText: strings.TrimSpace(rawText)}

	if intent.IsTopic() {
		if match := fencedBlockPattern.FindStringSubmatch(rawText); match != nil {
			result.CleanText = strings.TrimSpace(fencedBlockPattern.ReplaceAllString(rawText, ""))

			var payload map[string]any
			if err := json.Unmarshal([]byte(match[1]), &payload); err != nil {
				observability.FromContext(ctx).Warn("discarding malformed suggestion block",
					zap.Error(err))
			} else {
				result.StructuredData = payload
			}
		}
	}

	if result.CleanText == "" && result.StructuredData != nil {
		result.CleanText = summarizeSuggestion(result.StructuredData)
	}

	if result.CleanText == "" {
		result.CleanText = FallbackReply(trip)
	}

	return result
}

// summarizeSuggestion synthesizes a short sentence from whichever known
// suggestion key is present, so a reply consisting solely of a JSON block
// still reads as conversation.
func summarizeSuggestion(data map[string]any) string {
	if restaurant, ok := data["restaurant"].(map[string]any); ok {
		return describePlace("Encontrei o restaurante", restaurant, "name", "cuisine")
	}
	if item, ok := data["itinerary_item"].(map[string]any); ok {
		return describePlace("Encontrei a atração", item, "title", "description")
	}
	if accommodation, ok := data["accommodation"].(map[string]any); ok {
		return describePlace("Encontrei a hospedagem", accommodation, "name", "description")
	}
	return "Encontrei uma boa opção para a sua viagem! Quer que eu salve os detalhes?"
}

func describePlace(prefix string, place map[string]any, nameKey, detailKey string) string {
	name := stringField(place, nameKey)
	if name == "" {
		return "Encontrei uma boa opção para a sua viagem! Quer que eu salve os detalhes?"
	}

	sentence := fmt.Sprintf("%s %s", prefix, name)
	if detail := stringField(place, detailKey); detail != "" {
		sentence += fmt.Sprintf(" (%s)", detail)
	}
	if address := stringField(place, "address"); address != "" {
		sentence += fmt.Sprintf(", em %s", address)
	}
	return sentence + ". Quer que eu salve para você?"
}

func stringField(m map[string]any, key string) string {
	if value, ok := m[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}
