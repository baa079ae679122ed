package detector

// Language selects the language of the verdict text.
type Language string

const (
	English    Language = "English"
	Spanish    Language = "Spanish"
	French     Language = "French"
	German     Language = "German"
	Hindi      Language = "Hindi"
	Chinese    Language = "Chinese"
	Arabic     Language = "Arabic"
	Russian    Language = "Russian"
	Japanese   Language = "Japanese"
	Portuguese Language = "Portuguese"

	DefaultLanguage = English
)

// Languages lists the supported languages in display order.
var Languages = []Language{English, Spanish, French, German, Hindi, Chinese, Arabic, Russian, Japanese, Portuguese}

var directives = map[Language]string{
	English:    "Provide your response in English.",
	Spanish:    "Proporciona tu respuesta en español.",
	French:     "Fournissez votre réponse en français.",
	German:     "Geben Sie Ihre Antwort auf Deutsch.",
	Hindi:      "अपना जवाब हिंदी में दें।",
	Chinese:    "用中文提供您的回答。",
	Arabic:     "قدم إجابتك باللغة العربية.",
	Russian:    "Предоставьте ваш ответ на русском языке.",
	Japanese:   "日本語で回答してください。",
	Portuguese: "Forneça sua resposta em português.",
}

// Valid reports whether l is one of Languages.
func (l Language) Valid() bool {
	_, ok := directives[l]
	return ok
}

// Directive returns the output-language instruction for l, falling back
// to English for unknown languages.
func Directive(l Language) string {
	if d, ok := directives[l]; ok {
		return d
	}
	return directives[English]
}
