package services

import "strings"

// GenericSymptomAdvice is returned when no keyword rule matches.
const GenericSymptomAdvice = "Rest, stay hydrated, and monitor your symptoms. If symptoms persist or worsen, please consult with a healthcare professional."

type suggestionRule struct {
	keywords []string
	advice   string
}

// suggestionRules is evaluated top-down; the first matching rule wins and no
// advice strings are combined.
var suggestionRules = []suggestionRule{
	{
		keywords: []string{"headache", "head pain"},
		advice:   "Rest in a quiet, dark room. Stay hydrated. Consider a cold compress. If severe or persistent, consult a doctor.",
	},
	{
		keywords: []string{"fever", "temperature"},
		advice:   "Rest and stay hydrated. Monitor temperature. Take paracetamol if needed. Consult a doctor if fever persists above 101°F.",
	},
	{
		keywords: []string{"cough", "cold"},
		advice:   "Stay hydrated, use a humidifier, and get plenty of rest. Warm salt water gargling may help. See a doctor if symptoms worsen.",
	},
	{
		keywords: []string{"stomach", "nausea"},
		advice:   "Eat light, bland foods. Stay hydrated with small sips of water. Rest and avoid solid foods temporarily. Consult a doctor if severe.",
	},
}

// SuggestionForSymptoms picks a canned advice string by case-insensitive
// substring search over the free-text description.
func SuggestionForSymptoms(symptoms string) string {
	lowered := strings.ToLower(symptoms)
	for _, rule := range suggestionRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.advice
			}
		}
	}
	return GenericSymptomAdvice
}
