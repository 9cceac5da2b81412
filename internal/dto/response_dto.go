package dto

// OptionDTO is one displayed title choice. The correct id is never exposed
// while a question is live; scoring happens server-side.
type OptionDTO struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// QuestionDTO is the client-visible part of a question.
type QuestionDTO struct {
	ImageURL string      `json:"image_url"`
	Options  []OptionDTO `json:"options"`
}

// LanguageDTO is one selector entry.
type LanguageDTO struct {
	Code        string `json:"code"`
	EnglishName string `json:"english_name"`
	NativeName  string `json:"native_name"`
}

// SessionStateDTO is the full observable state of a quiz session.
type SessionStateDTO struct {
	SessionID       string        `json:"session_id"`
	Status          string        `json:"status"`
	Question        *QuestionDTO  `json:"question,omitempty"`
	Selected        *string       `json:"selected,omitempty"`
	Verdict         string        `json:"verdict"`
	Feedback        string        `json:"feedback,omitempty"`
	SoundCue        string        `json:"sound_cue,omitempty"`
	CorrectCount    int           `json:"correct_count"`
	TotalCount      int           `json:"total_count"`
	Language        string        `json:"language"`
	Languages       []LanguageDTO `json:"languages"`
	SoundEnabled    bool          `json:"sound_enabled"`
	SelectorVisible bool          `json:"selector_visible"`
	Theme           string        `json:"theme"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
