package core

// Question is one generated interview question. The generator produces
// these and the cache layer stores them; the engine only passes them
// through, so the shape lives here to keep both sides decoupled.
type Question struct {
	Question       string     `json:"question"`
	Options        []string   `json:"options"`
	CorrectOptions []string   `json:"correct_options"`
	Topic          string     `json:"topic"`
	Difficulty     Difficulty `json:"difficulty"`
	Marks          int        `json:"marks"`
}
