package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateWaitingText     UserState = "waiting_text"
	StateChoosingSource  UserState = "choosing_source"
	StateChoosingTarget  UserState = "choosing_target"
	StateWaitingDeckName UserState = "waiting_deck_name"
	StateWaitingPassword UserState = "waiting_password"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State      UserState
	Text       string
	SourceLang string
	// Card is the last random card, revealed by "Show answer"
	Card *Flashcard
}
