package model

// Language is a selectable title language. Code is an ISO 639-1 code or a
// regional tag like "en-US"; NativeName is the language's own spelling.
type Language struct {
	Code        string `json:"code"`
	EnglishName string `json:"english_name"`
	NativeName  string `json:"native_name"`
}

// DefaultLanguageCode is used before any selection and as the degraded
// fallback when the language list cannot be fetched.
const DefaultLanguageCode = "en-US"

// NormalizeLanguageCode maps the bare "en" onto the richer regional tag the
// upstream catalog paginates by. Every other code passes through unchanged.
func NormalizeLanguageCode(code string) string {
	if code == "en" {
		return DefaultLanguageCode
	}
	return code
}
