package domain

import (
	"regexp"
	"strings"
)

// Classification is keyword-driven on purpose: the keyword tables below are
// data, not control flow, so new languages or vocabularies are added by
// editing the tables. Matching is case-insensitive substring containment
// over the trimmed utterance.

const shortThanksMaxRunes = 30

// greetingPattern matches a closed list of greeting words, optionally
// followed by punctuation. The utterance is lowercased before matching.
var greetingPattern = regexp.MustCompile(`^(oi+|ol[áa]|opa|e a[íi]|eai|hey|hi|hello|bom dia|boa tarde|boa noite)[\s!.,?]*$`)

// thanksTerms turn a short utterance into a greeting-class turn.
//
//nolint:gochecknoglobals // Classification fixture
var thanksTerms = []string{
	"obrigado", "obrigada", "brigado", "brigada", "valeu",
	"thanks", "thank you",
}

// detailSignals gate the three topic intents: mentioning a topic alone is
// not enough, the user must also signal they want details or want to save
// something. Without this gate every topic mention would trigger structured
// JSON generation and its larger output budget.
//
//nolint:gochecknoglobals // Classification fixture
var detailSignals = []string{
	"detalhe", "salvar", "salve", "guardar", "guarde",
	"adicionar", "adicione", "incluir", "inclua",
	"informações completas", "informacoes completas",
	"nome do", "nome da", "endereço d", "endereco d",
	"telefone d", "site d", "link d",
	"details", "save", "add", "include", "full information",
	"name of", "address of", "phone of", "website of", "link of",
}

type topicRule struct {
	intent   Intent
	keywords []string
}

// topicRules are evaluated in fixed priority order; the first matching
// category wins. The vocabularies are mostly disjoint, so order rarely
// matters in practice.
//
//nolint:gochecknoglobals // Classification fixture
var topicRules = []topicRule{
	{
		intent: IntentAccommodation,
		keywords: []string{
			"hotel", "hostel", "pousada", "hospedagem", "hospedar",
			"acomodação", "acomodacao", "airbnb", "resort", "onde ficar",
			"accommodation", "lodging", "where to stay",
		},
	},
	{
		intent: IntentRestaurant,
		keywords: []string{
			"restaurante", "restaurant", "comida", "comer", "jantar",
			"almoço", "almoco", "lanche", "café", "cafe", "pizzaria",
			"padaria", "food", "eat", "dinner", "lunch", "brunch",
		},
	},
	{
		intent: IntentAttraction,
		keywords: []string{
			"atração", "atracao", "atrações", "atracoes", "passeio",
			"museu", "parque", "ponto turístico", "ponto turistico",
			"atividade", "tour", "ingresso", "o que fazer",
			"attraction", "museum", "activity", "things to do", "what to do",
		},
	},
}

// Classify assigns exactly one intent to an utterance. It is a pure function
// of the utterance text: greetings first, then the detail-seeking gate, then
// the topic tables in priority order, otherwise general.
func Classify(utterance string) Intent {
	text := strings.ToLower(strings.TrimSpace(utterance))

	if greetingPattern.MatchString(text) {
		return IntentGreeting
	}
	if len([]rune(text)) < shortThanksMaxRunes && containsAny(text, thanksTerms) {
		return IntentGreeting
	}

	if !containsAny(text, detailSignals) {
		return IntentGeneral
	}

	for _, rule := range topicRules {
		if containsAny(text, rule.keywords) {
			return rule.intent
		}
	}

	return IntentGeneral
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
