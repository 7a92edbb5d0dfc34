package domain

// BlankMarker replaces the answer word inside a question.
const BlankMarker = "_______"

// PlaceholderDistractors are offered when the document vocabulary is too small
// to sample three wrong answers.
var PlaceholderDistractors = [3]string{"Option A", "Option B", "Option C"}

// QuizItem is a single fill-in-the-blank question.
type QuizItem struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options"`
}

// HasAnswerOption reports whether the answer is among the options.
func (q QuizItem) HasAnswerOption() bool {
	for _, o := range q.Options {
		if o == q.Answer {
			return true
		}
	}
	return false
}

// Quiz is an ordered list of items, in the order their source sentences
// appear in the document.
type Quiz []QuizItem

// Empty reports whether no question could be produced.
func (q Quiz) Empty() bool {
	return len(q) == 0
}

// QuizGenerator turns plain document text into a quiz. It never fails; an
// empty Quiz is a valid result.
type QuizGenerator interface {
	Generate(text string) Quiz
}

// RandomSource is the only source of nondeterminism used by quiz generation.
// Implementations must be safe for concurrent use when shared across requests.
type RandomSource interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}
