package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripdesk/concierge/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      domain.Intent
	}{
		{name: "short greeting", utterance: "oi", want: domain.IntentGreeting},
		{name: "greeting with punctuation", utterance: "Olá!", want: domain.IntentGreeting},
		{name: "english greeting", utterance: "hello", want: domain.IntentGreeting},
		{name: "time of day greeting", utterance: "bom dia!!", want: domain.IntentGreeting},
		{name: "short thanks", utterance: "muito obrigado!", want: domain.IntentGreeting},
		{name: "long thanks is not a greeting", utterance: "obrigado por todas as dicas que você me deu sobre os restaurantes de Lisboa", want: domain.IntentGeneral},

		{name: "topic keyword without detail signal", utterance: "restaurantes em Roma", want: domain.IntentGeneral},
		{name: "accommodation keyword without detail signal", utterance: "hotéis baratos perto do centro, hotel bom", want: domain.IntentGeneral},
		{name: "plain question", utterance: "qual a melhor época para visitar?", want: domain.IntentGeneral},

		{name: "save restaurant", utterance: "salvar o restaurante Cacio e Pepe", want: domain.IntentRestaurant},
		{name: "restaurant details", utterance: "me dá os detalhes do restaurante Cacio e Pepe", want: domain.IntentRestaurant},
		{name: "save accommodation", utterance: "salvar o hotel Artemide", want: domain.IntentAccommodation},
		{name: "accommodation address", utterance: "qual o endereço da pousada Maravilha?", want: domain.IntentAccommodation},
		{name: "save attraction", utterance: "adicione o passeio no Coliseu", want: domain.IntentAttraction},
		{name: "attraction details in english", utterance: "save the details of the Louvre museum", want: domain.IntentAttraction},

		{name: "detail signal without topic keyword", utterance: "salvar isso para mim", want: domain.IntentGeneral},
		{name: "empty utterance", utterance: "", want: domain.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.Classify(tt.utterance))
		})
	}
}

func TestClassify_AccommodationWinsTies(t *testing.T) {
	// Both accommodation and restaurant vocabularies match; fixed priority
	// order assigns accommodation.
	got := domain.Classify("salvar o hotel com restaurante na cobertura")
	require.Equal(t, domain.IntentAccommodation, got)
}

func TestIntent_IsTopic(t *testing.T) {
	require.True(t, domain.IntentRestaurant.IsTopic())
	require.True(t, domain.IntentAccommodation.IsTopic())
	require.True(t, domain.IntentAttraction.IsTopic())
	require.False(t, domain.IntentGreeting.IsTopic())
	require.False(t, domain.IntentGeneral.IsTopic())
}
