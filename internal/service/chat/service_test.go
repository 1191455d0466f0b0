package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetResponse_KnownKeywords(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "name question", input: "what is your name", want: "I am your AI ChatBot."},
		{name: "hello", input: "hello", want: "Hi there! What can I do for you?"},
		{name: "hi", input: "hi", want: "Hello! How can I assist you?"},
		{name: "bye", input: "bye", want: "Goodbye! Have a great day."},
		{name: "hotel", input: "hotel", want: "We offer Standard, Deluxe, and Suite rooms."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.GetResponse(tt.input))
		})
	}
}

func TestGetResponse_CaseAndWhitespaceInsensitive(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "Hi there! What can I do for you?", svc.GetResponse("  HELLO  "))
	assert.Equal(t, "Goodbye! Have a great day.", svc.GetResponse("ByE"))
}

func TestGetResponse_SubstringMatch(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "We offer Standard, Deluxe, and Suite rooms.",
		svc.GetResponse("tell me about the hotel please"))
	assert.Equal(t, "I am your AI ChatBot.",
		svc.GetResponse("so, what is your name then?"))
}

// Несколько ключей в одной фразе: побеждает более ранний в таблице
func TestGetResponse_FirstRuleWins(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "Hi there! What can I do for you?", svc.GetResponse("hello and bye"))
	assert.Equal(t, "I am your AI ChatBot.", svc.GetResponse("hello, what is your name?"))
}

func TestGetResponse_Fallback(t *testing.T) {
	svc := NewService()

	fallback := "I'm sorry, I didn't understand that. Please try something else."
	assert.Equal(t, fallback, svc.GetResponse("weather tomorrow"))
	assert.Equal(t, fallback, svc.GetResponse(""))
	assert.Equal(t, fallback, svc.GetResponse("   "))
}

// Один и тот же вопрос всегда дает один и тот же ответ
func TestGetResponse_Deterministic(t *testing.T) {
	svc := NewService()

	first := svc.GetResponse("hello")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, svc.GetResponse("hello"))
	}
}
