// Package quizgen builds fill-in-the-blank multiple choice quizzes from plain
// text. Answers and distractors are drawn from the document's own vocabulary.
package quizgen

import (
	"strings"

	"doc-quiz/internal/domain"
)

const distractorCount = 3

// Options tunes the generation thresholds. All lengths are exclusive lower
// bounds.
type Options struct {
	MaxQuestions      int
	MinSentenceLength int
	MinWordLength     int
}

// DefaultOptions returns the standard thresholds: at most 10 questions,
// sentences longer than 20 characters, words longer than 4 characters.
func DefaultOptions() Options {
	return Options{
		MaxQuestions:      10,
		MinSentenceLength: 20,
		MinWordLength:     4,
	}
}

// Generator implements domain.QuizGenerator.
type Generator struct {
	rnd  domain.RandomSource
	opts Options
}

// New creates a Generator. Zero-valued option fields fall back to the defaults.
func New(rnd domain.RandomSource, opts Options) *Generator {
	def := DefaultOptions()
	if opts.MaxQuestions <= 0 {
		opts.MaxQuestions = def.MaxQuestions
	}
	if opts.MinSentenceLength <= 0 {
		opts.MinSentenceLength = def.MinSentenceLength
	}
	if opts.MinWordLength <= 0 {
		opts.MinWordLength = def.MinWordLength
	}
	return &Generator{rnd: rnd, opts: opts}
}

// Generate produces up to MaxQuestions items, one per qualifying sentence, in
// document order. Sentences without a long word are skipped.
func (g *Generator) Generate(text string) domain.Quiz {
	normalized := normalize(text)
	sentences := splitSentences(normalized, g.opts.MinSentenceLength)
	pool := vocabulary(longWords(normalized, g.opts.MinWordLength))

	quiz := make(domain.Quiz, 0, min(len(sentences), g.opts.MaxQuestions))
	for _, sentence := range sentences {
		item, ok := g.itemFor(sentence, pool)
		if !ok {
			continue
		}
		quiz = append(quiz, item)
		if len(quiz) >= g.opts.MaxQuestions {
			break
		}
	}
	return quiz
}

func (g *Generator) itemFor(sentence string, pool vocabulary) (domain.QuizItem, bool) {
	candidates := longWords(sentence, g.opts.MinWordLength)
	if len(candidates) == 0 {
		return domain.QuizItem{}, false
	}
	target := candidates[g.rnd.IntN(len(candidates))]

	options := append(g.distractors(pool.excluding(target)), target)
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return domain.QuizItem{
		// First exact occurrence only; a shorter target can match inside a
		// longer word that precedes it.
		Question: strings.Replace(sentence, target, domain.BlankMarker, 1),
		Answer:   target,
		Options:  options,
	}, true
}

// distractors draws three distinct positions from pool. Equal words at
// different positions may both be drawn.
func (g *Generator) distractors(pool []string) []string {
	if len(pool) < distractorCount {
		placeholders := domain.PlaceholderDistractors
		return append(make([]string, 0, distractorCount+1), placeholders[:]...)
	}

	picked := make([]string, 0, distractorCount+1)
	for i := 0; i < distractorCount; i++ {
		j := i + g.rnd.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		picked = append(picked, pool[i])
	}
	return picked
}

var _ domain.QuizGenerator = (*Generator)(nil)
