package quiz

// State is the controller's position in the question cycle.
type State int

const (
	StateAwaitingAuth State = iota
	StateNoData
	StateDisplaying
	StateValidatedCorrect
	StateValidatedIncorrect
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateAwaitingAuth:
		return "awaiting-auth"
	case StateNoData:
		return "no-data"
	case StateDisplaying:
		return "displaying"
	case StateValidatedCorrect:
		return "validated-correct"
	case StateValidatedIncorrect:
		return "validated-incorrect"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Feedback is the tri-state result shown next to the answer form.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// Message returns the learner-facing text for f.
func (f Feedback) Message() string {
	switch f {
	case FeedbackCorrect:
		return MsgCorrect
	case FeedbackIncorrect:
		return MsgIncorrect
	default:
		return ""
	}
}

// Controls says which actions the presentation layer should offer.
type Controls struct {
	Validate bool
	Solution bool
	Advance  bool
}

// Learner-facing messages.
const (
	MsgCorrect   = "Réponse correcte !"
	MsgIncorrect = "Réponse incorrecte. Essayez encore."
	MsgCompleted = "Félicitations ! Vous avez terminé le quiz."
	MsgNoData    = "Erreur : Aucune donnée de quiz trouvée."
)
