package chat

import "strings"

// rule одно правило ответа: ключевая подстрока и готовый ответ
type rule struct {
	keyword  string
	response string
}

// Service отвечает на сообщения по таблице ключевых слов.
// Правила проверяются строго по порядку, выигрывает первое совпадение,
// поэтому более длинные ключи стоят раньше своих подстрок.
type Service struct {
	rules    []rule
	fallback string
}

// NewService создает респондер со стандартной таблицей правил
func NewService() *Service {
	return &Service{
		rules: []rule{
			{keyword: "what is your name", response: "I am your AI ChatBot."},
			{keyword: "hello", response: "Hi there! What can I do for you?"},
			{keyword: "hi", response: "Hello! How can I assist you?"},
			{keyword: "bye", response: "Goodbye! Have a great day."},
			{keyword: "hotel", response: "We offer Standard, Deluxe, and Suite rooms."},
		},
		fallback: "I'm sorry, I didn't understand that. Please try something else.",
	}
}

// GetResponse возвращает ответ на сообщение пользователя.
// Совпадение - вхождение ключа в текст без учета регистра.
// Чистая функция: никакого состояния между вызовами.
func (s *Service) GetResponse(input string) string {
	text := strings.ToLower(strings.TrimSpace(input))
	for _, r := range s.rules {
		if strings.Contains(text, r.keyword) {
			return r.response
		}
	}
	return s.fallback
}
