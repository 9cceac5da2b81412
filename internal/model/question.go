package model

// Option is one of the four displayed title choices.
type Option struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Question is a single poster-guessing round. Exactly one option carries
// CorrectID, and Answer always equals that option's title. A question is
// replaced wholesale on every load; only translation rewrites its titles.
type Question struct {
	Image     string   `json:"image"`
	Answer    string   `json:"answer"`
	Options   []Option `json:"options"`
	CorrectID int      `json:"correct_id"`
}

// CorrectOption returns the option whose ID matches CorrectID.
func (q *Question) CorrectOption() (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == q.CorrectID {
			return opt, true
		}
	}
	return Option{}, false
}
