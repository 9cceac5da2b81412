package dto

// AnswerRequest is the body for submitting an option pick.
type AnswerRequest struct {
	OptionTitle string `json:"option_title" binding:"required"`
}

// LanguageChangeRequest is the body for switching the title language.
type LanguageChangeRequest struct {
	Code string `json:"code" binding:"required"`
}
