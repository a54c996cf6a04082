package intake

// Stage is the closed enumeration of wizard stages. The flow is linear:
// pro_greeting -> patient_form -> (patient_review | confirm substate) ->
// chat. Chat is terminal; back actions move the earlier stages backward.
type Stage string

const (
	StageProGreeting   Stage = "pro_greeting"
	StagePatientForm   Stage = "patient_form"
	StagePatientReview Stage = "patient_review"
	StageChat          Stage = "chat"
)

// ChatMode records whether the session's patient was just created or matched
// from an existing record.
type ChatMode string

const (
	ModeNew      ChatMode = "new"
	ModeExisting ChatMode = "existing"
)
