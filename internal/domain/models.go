package domain

// Intent classifies the purpose of a user utterance. It drives which system
// prompt is built and how large the provider's output budget is.
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentGeneral       Intent = "general"
	IntentRestaurant    Intent = "restaurant"
	IntentAccommodation Intent = "accommodation"
	IntentAttraction    Intent = "attraction"
)

// IsTopic reports whether the intent is one of the three suggestion-bearing
// intents. Only these ever carry structured data.
func (i Intent) IsTopic() bool {
	return i == IntentRestaurant || i == IntentAccommodation || i == IntentAttraction
}

// ProviderFamily identifies one of the two interchangeable provider API shapes.
type ProviderFamily string

const (
	FamilyOpenAI ProviderFamily = "openai"
	FamilyGemini ProviderFamily = "gemini"
)

// AlternateFamily returns the other provider family, used for the one-shot
// cross-family fallback.
func AlternateFamily(family ProviderFamily) ProviderFamily {
	if family == FamilyOpenAI {
		return FamilyGemini
	}
	return FamilyOpenAI
}

// ModelRef is a configured model name resolved to a concrete provider target.
type ModelRef struct {
	Family          ProviderFamily
	ProviderModelID string
}

// Message represents a single chat turn.
type Message struct {
	Role    string `json:"role"` // user, assistant, system
	Content string `json:"content"`
}

// TripContext is a read-only snapshot of the active trip. It is passed into
// every prompt so suggestions stay relevant to the trip; the pipeline never
// mutates it.
type TripContext struct {
	Title       string `json:"title,omitempty"`
	Destination string `json:"destination,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// Style carries the caller's presentation preferences for the reply.
type Style struct {
	Tone   string `json:"tone,omitempty"` // casual, neutro, formal
	Emojis bool   `json:"emojis,omitempty"`
}

// ChatRequest is the inbound payload for one concierge turn.
type ChatRequest struct {
	Prompt              string      `json:"prompt"`
	TripID              string      `json:"tripId,omitempty"`
	TripContext         TripContext `json:"tripContext,omitempty"`
	UserID              string      `json:"userId,omitempty"`
	Style               Style       `json:"style,omitempty"`
	ConversationHistory []Message   `json:"conversationHistory,omitempty"`
}

// ProviderRequest is the normalized request sent to a provider adapter. The
// model identifier is already provider-internal (alias resolution happens
// during configuration resolution, not in the adapter).
type ProviderRequest struct {
	Model           string
	APIKey          string
	Messages        []Message
	MaxOutputTokens int
}

// ChatResult is the pipeline output for one turn. GeneratedText is the model
// prose with any fenced JSON stripped and is never empty; FullResponse keeps
// the raw reply for callers that want the original block.
type ChatResult struct {
	GeneratedText   string         `json:"generatedText"`
	FullResponse    string         `json:"fullResponse"`
	GeneratedImages []string       `json:"generatedImages"` // image lookup is disabled, always empty
	StructuredData  map[string]any `json:"structuredData"`
}

// UserConfig is a per-user (or per-profile) concierge configuration record.
type UserConfig struct {
	Model              string `json:"model,omitempty"`
	APIKey             string `json:"apiKey,omitempty"`
	CustomInstructions string `json:"customInstructions,omitempty"`
}
