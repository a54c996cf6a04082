package chat

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// The topic gate is a deliberately simple keyword classifier guarding the
// agent call: plain substring matching, no stemming, no negation handling
// ("no fever" still matches "fever"). Non-medical clues take precedence over
// medical hints.

var medicalHints = []string{
	"symptom", "symptoms", "pain", "fever", "headache", "nausea", "vomit", "rash", "bleeding",
	"cough", "sore throat", "diarrhea", "shortness of breath", "chest pain", "heart rate",
	"blood pressure", "bp", "pulse", "temperature", "drug", "medication", "tablet", "capsule",
	"dose", "prescription", "side effect", "interaction", "allergy", "diabetes", "hypertension",
	"infection", "virus", "bacteria", "antibiotic", "lab", "cbc", "mri", "ct scan", "x-ray",
	"ultrasound", "treatment", "therapy", "surgery", "operation", "diagnosis", "triage",
	"soap note", "vitals", "anatomy", "organ", "disease", "condition", "wound", "fracture",
	"injury", "medical history", "patient", "doctor", "nurse", "hospital", "clinic",
}

var nonMedicalClues = []string{
	"university", "school", "college", "football", "soccer", "basketball", "movie", "celebrity",
	"actor", "singer", "music", "bitcoin", "cryptocurrency", "stock market", "recipe", "travel",
	"holiday", "politics", "election", "car review", "technology",
}

// Fixed rejection texts returned verbatim as the assistant's reply.
const (
	rejectEmpty    = "Please enter a medical or healthcare-related question."
	rejectTooShort = "Your question is too short. Please add more detail."
)

func rejectOffTopic(text string) string {
	return fmt.Sprintf("%s is an irrelevant question I can’t answer to that.\n"+
		"Please ask a medical or healthcare-related question.\n"+
		"For accuracy, include patient details if available.", text)
}

func isMedicalQuery(text string) bool {
	t := strings.ToLower(text)
	for _, clue := range nonMedicalClues {
		if strings.Contains(t, clue) {
			return false
		}
	}
	for _, hint := range medicalHints {
		if strings.Contains(t, hint) {
			return true
		}
	}
	return false
}

// Classify decides whether a question is in scope for the assistant. When it
// is not, the returned rejection text is the reply shown to the user; the
// agent is never invoked for rejected input.
func Classify(text string) (inScope bool, rejection string) {
	if strings.TrimSpace(text) == "" {
		return false, rejectEmpty
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < 3 {
		return false, rejectTooShort
	}
	if !isMedicalQuery(text) {
		return false, rejectOffTopic(text)
	}
	return true, ""
}
