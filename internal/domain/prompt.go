package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Per-intent output budgets. Accommodation gets the largest budget because
// its suggestion schema has the most fields.
//
//nolint:gochecknoglobals // Static budget table
var outputBudgets = map[Intent]int{
	IntentGeneral:       1200,
	IntentRestaurant:    1400,
	IntentAccommodation: 1800,
	IntentAttraction:    1400,
}

// OutputBudget returns the maximum output size for an intent.
func OutputBudget(intent Intent) int {
	if budget, ok := outputBudgets[intent]; ok {
		return budget
	}
	return outputBudgets[IntentGeneral]
}

const defaultPersona = "Você é um concierge de viagens experiente e atencioso que ajuda o usuário a planejar e organizar a viagem atual."

const guardrails = "Responda apenas sobre assuntos relacionados à viagem atual do usuário, usando o contexto fornecido. " +
	"Só inclua um bloco JSON na resposta quando o usuário pedir explicitamente para salvar algo ou ver os detalhes completos de algo."

const mapsURLFormat = "https://www.google.com/maps/search/?api=1&query="

const jsonFence = "```"

const restaurantSchema = `{
  "restaurant": {
    "name": "...",
    "cuisine": "...",
    "description": "...",
    "address": "...",
    "phone": "...",
    "website": "https://...",
    "mapsUrl": "` + mapsURLFormat + `...",
    "estimatedCost": "..."
  }
}`

const itineraryItemSchema = `{
  "itinerary_item": {
    "title": "...",
    "description": "...",
    "address": "...",
    "website": "https://...",
    "mapsUrl": "` + mapsURLFormat + `...",
    "estimatedCost": "..."
  }
}`

const accommodationSchema = `{
  "accommodation": {
    "name": "...",
    "type": "...",
    "description": "...",
    "address": "...",
    "checkIn": "...",
    "checkOut": "...",
    "website": "https://...",
    "mapsUrl": "` + mapsURLFormat + `...",
    "estimatedCost": "...",
    "amenities": "..."
  }
}`

// taskSubjects names, per topic intent, what the fenced block describes.
//
//nolint:gochecknoglobals // Static prompt table
var taskSubjects = map[Intent]struct {
	subject string
	schema  string
}{
	IntentRestaurant:    {subject: "um restaurante", schema: restaurantSchema},
	IntentAttraction:    {subject: "uma atração ou atividade", schema: itineraryItemSchema},
	IntentAccommodation: {subject: "uma hospedagem", schema: accommodationSchema},
}

// BuildSystemPrompt composes the system instruction string for an intent:
// persona base, guardrails, style directives and, for topic intents, the
// task section with a literal example of the expected fenced JSON block.
// Greeting never reaches this function; the orchestrator answers greetings
// without a provider call.
func BuildSystemPrompt(intent Intent, customInstructions string, style Style) string {
	persona := strings.TrimSpace(customInstructions)
	if persona == "" {
		persona = defaultPersona
	}

	sections := []string{persona, guardrails, styleDirectives(style)}

	if task, ok := taskSubjects[intent]; ok {
		sections = append(sections, fmt.Sprintf(
			"O usuário quer salvar ou ver os detalhes de %s. "+
				"Inclua ao final da resposta um bloco de código JSON exatamente neste formato:\n\n"+
				"%sjson\n%s\n%s\n\n"+
				"Regras de formatação: use URLs completas, o link do mapa deve seguir o formato %s<nome e endereço>, "+
				"e não escreva nada depois do bloco JSON.",
			task.subject, jsonFence, task.schema, jsonFence, mapsURLFormat))
	} else {
		sections = append(sections,
			"Não inclua blocos JSON nem blocos de código na resposta. "+
				"Se o usuário quiser guardar alguma sugestão, explique que basta pedir os \"detalhes de X\" ou dizer \"salvar X\".")
	}

	return strings.Join(sections, "\n\n")
}

func styleDirectives(style Style) string {
	tone := style.Tone
	switch tone {
	case "neutro", "formal":
	default:
		tone = "casual"
	}

	emojiRule := "Não use emojis."
	if style.Emojis {
		emojiRule = "Use emojis com moderação e apenas quando fizerem sentido no contexto."
	}

	return fmt.Sprintf(
		"Tom da conversa: %s. %s Mantenha as respostas curtas e diretas. "+
			"Termine sempre com uma pergunta empática de acompanhamento.",
		tone, emojiRule)
}

// BuildMessages assembles the full provider message list: system
// instructions, prior turns, then the current utterance wrapped with the
// trip-context JSON.
func BuildMessages(systemPrompt string, history []Message, utterance string, trip TripContext) []Message {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)

	tripJSON, err := json.Marshal(trip)
	if err != nil {
		tripJSON = []byte("{}")
	}

	messages = append(messages, Message{
		Role:    "user",
		Content: fmt.Sprintf("Contexto da viagem: %s\n\nMensagem do usuário: %s", tripJSON, utterance),
	})

	return messages
}

// GreetingReply builds the templated answer for greeting turns. Greetings
// are high-frequency and gain nothing from a model round-trip, so they never
// hit a provider.
func GreetingReply(trip TripContext, style Style) string {
	var reply string
	if trip.Destination != "" {
		reply = fmt.Sprintf("Oi! Que bom te ver por aqui. Como posso ajudar com a sua viagem para %s?", trip.Destination)
	} else {
		reply = "Oi! Que bom te ver por aqui. Como posso ajudar com a sua próxima viagem?"
	}

	if style.Emojis {
		reply += " ✈️"
	}

	return reply
}

// FallbackReply is the deterministic sentence substituted when neither the
// provider output nor the extraction produced anything usable. The caller
// never receives blank content.
func FallbackReply(trip TripContext) string {
	if trip.Destination != "" {
		return fmt.Sprintf(
			"Posso te ajudar a explorar %s! Me conta o que você procura: comida, atrações, museus ou compras? "+
				"Quando quiser guardar alguma sugestão, é só pedir os detalhes ou dizer \"salvar\".",
			trip.Destination)
	}
	return "Posso te ajudar com a sua viagem! Me conta o que você procura: comida, atrações, museus ou compras? " +
		"Quando quiser guardar alguma sugestão, é só pedir os detalhes ou dizer \"salvar\"."
}
