// Package chatbot implements the scripted chat responder for the site
// widget: a keyword match against a fixed rule list, with reply tables
// for English and Ukrainian.
package chatbot

import "strings"

// DefaultLang is used when the requested language has no reply table
const DefaultLang = "en"

type rule struct {
	key     string
	needles []string
}

// Rules are checked in order; the first needle found in the lowercased
// message wins.
var rules = []rule{
	{"price", []string{"price", "cost", "цін", "варто"}},
	{"services", []string{"service", "do", "послуг", "робиш"}},
	{"process", []string{"process", "how", "процес", "як"}},
	{"contact", []string{"contact", "email", "контакт", "пошт"}},
}

var replies = map[string]map[string]string{
	"en": {
		"price":    "Alex's projects usually start at $300 USD. This ensures high quality and dedicated time for each brief.",
		"services": "Alex offers Brand Illustration, Packaging Design, Book & Editorial Illustration, and Posters.",
		"process":  "The process has 4 steps: Discovery, Concepts, Refinement, and Final Delivery. You can see more in the 'Process' section!",
		"contact":  "You can reach Alex at itsme@alexvelboy.com or via the contact form on this page.",
		"default":  "That's a great question! I'm just an AI assistant, but you can find more details in the sections above, or email Alex directly at itsme@alexvelboy.com.",
	},
	"ua": {
		"price":    "Проекти Алекса зазвичай стартують від $300 USD. Це гарантує високу якість та присвячений час для кожного брифу.",
		"services": "Алекс пропонує брендову ілюстрацію, дизайн пакування, книжкову та журнальну ілюстрацію, а також постери.",
		"process":  "Процес складається з 4 кроків: Дослідження, Концепти, Доопрацювання та Фінальна здача. Більше деталей у розділі 'Процес'!",
		"contact":  "Ви можете написати Алексу на itsme@alexvelboy.com або заповнити форму зворотного зв'язку.",
		"default":  "Гарне питання! Я лише AI-помічник, але ви можете знайти більше деталей у розділах вище або написати Алексу прямо на itsme@alexvelboy.com.",
	},
}

// Reply returns the scripted reply for a visitor message. Unknown
// languages fall back to English; unmatched messages get the default
// reply for the chosen language.
func Reply(message, lang string) string {
	table, ok := replies[lang]
	if !ok {
		table = replies[DefaultLang]
	}

	text := strings.ToLower(message)
	for _, r := range rules {
		for _, needle := range r.needles {
			if strings.Contains(text, needle) {
				return table[r.key]
			}
		}
	}

	return table["default"]
}
