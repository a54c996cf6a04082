package agent

import (
	"fmt"
	"strings"
)

// Tool is one declared capability: a named, string-in string-out function the
// model may invoke during a turn.
type Tool struct {
	Name        string
	Description string
	Run         func(text string) string
}

// Toolset is the lookup table of declared capabilities for one chat turn.
// The note sink receives SOAP notes drafted by the clinical note generator so
// the caller can buffer and persist them at end of turn.
type Toolset struct {
	tools map[string]Tool
	order []string
}

// NoteSink receives a drafted SOAP note.
type NoteSink func(note string)

// NewToolset builds the five-tool capability set. sink may be nil when note
// buffering is not wanted.
func NewToolset(sink NoteSink) *Toolset {
	ts := &Toolset{tools: make(map[string]Tool)}
	ts.add(Tool{
		Name:        "symptom_checker",
		Description: "Check likely causes of symptoms.",
		Run:         symptomChecker,
	})
	ts.add(Tool{
		Name:        "clinical_note_generator",
		Description: "Generate a SOAP note.",
		Run: func(text string) string {
			note := clinicalNote(text)
			if sink != nil {
				sink(note)
			}
			return note
		},
	})
	ts.add(Tool{
		Name:        "drug_interaction_checker",
		Description: "Check for drug interactions.",
		Run:         drugInteractionChecker,
	})
	ts.add(Tool{
		Name:        "differential_diagnosis",
		Description: "Suggest possible conditions.",
		Run:         differentialDiagnosis,
	})
	ts.add(Tool{
		Name:        "lab_test_recommendation",
		Description: "Suggest lab tests.",
		Run:         labTestRecommendation,
	})
	return ts
}

func (ts *Toolset) add(t Tool) {
	ts.tools[t.Name] = t
	ts.order = append(ts.order, t.Name)
}

// Names returns the tool names in declaration order.
func (ts *Toolset) Names() []string {
	return append([]string(nil), ts.order...)
}

// Get returns the named tool.
func (ts *Toolset) Get(name string) (Tool, bool) {
	t, ok := ts.tools[name]
	return t, ok
}

// Call runs the named tool, erroring on unknown names so a fabricated tool
// call surfaces instead of silently succeeding.
func (ts *Toolset) Call(name, text string) (string, error) {
	t, ok := ts.tools[name]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", name)
	}
	return t.Run(text), nil
}

// -- Tool implementations --

func symptomChecker(text string) string {
	t := strings.ToLower(text)
	if strings.Contains(t, "fever") {
		return "Likely causes: Infection, flu, or COVID-19."
	}
	if strings.Contains(t, "headache") {
		return "Possible causes: Migraine, tension, high blood pressure."
	}
	return "Please provide more symptoms for accurate suggestions."
}

func clinicalNote(text string) string {
	return "**SOAP Note**\n" +
		"- **Subjective:** " + text + "\n" +
		"- **Objective:** Pending\n" +
		"- **Assessment:** Based on symptom analysis\n" +
		"- **Plan:** Follow-up or further testing."
}

func drugInteractionChecker(text string) string {
	drugs := make(map[string]bool)
	for _, d := range strings.Split(text, ",") {
		drugs[strings.ToLower(strings.TrimSpace(d))] = true
	}
	if drugs["aspirin"] && drugs["warfarin"] {
		return "Warning: Aspirin + Warfarin = increased bleeding risk."
	}
	return "No major interactions found."
}

func differentialDiagnosis(text string) string {
	if strings.Contains(strings.ToLower(text), "chest pain") {
		return "Differentials: MI, angina, GERD, anxiety."
	}
	return "Need more details for differential diagnosis."
}

func labTestRecommendation(text string) string {
	if strings.Contains(strings.ToLower(text), "fatigue") {
		return "Recommended tests: CBC, Iron studies, TSH."
	}
	return "Consider basic labs: CBC, BMP."
}
