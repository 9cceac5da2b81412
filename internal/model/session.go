package model

// SessionStatus tracks where a session sits in the question cycle.
type SessionStatus string

const (
	// StatusLoading means no question is held yet (before the first
	// successful load, or after a failed one).
	StatusLoading SessionStatus = "loading"
	// StatusAwaitingAnswer means a question is shown and no option picked.
	StatusAwaitingAnswer SessionStatus = "awaiting_answer"
	// StatusAnswered means a selection was made and input is locked until
	// the next question arrives.
	StatusAnswered SessionStatus = "answered"
)

// Verdict is the tri-state correctness of the current selection.
type Verdict string

const (
	VerdictUnknown Verdict = "unknown"
	VerdictCorrect Verdict = "correct"
	VerdictWrong   Verdict = "wrong"
)

// Sound cues emitted to the view layer after an answer. Empty when sound is
// disabled.
const (
	SoundCueSuccess = "success"
	SoundCueFailure = "failure"
)
