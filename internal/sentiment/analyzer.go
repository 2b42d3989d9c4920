// Package sentiment scores English text for polarity and subjectivity with a
// lexicon of opinion words, and reports the language the text is written in.
package sentiment

import (
	"strings"
	"sync"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

// negationFactor is applied to the polarity of a negated opinion word
const negationFactor = -0.5

// Assessment is the contribution of one matched word or phrase
type Assessment struct {
	Term         string
	Polarity     float64
	Subjectivity float64
	Negated      bool
	Intensity    float64
}

// Result is the outcome of analyzing one text
type Result struct {
	// Polarity in [-1,1]
	Polarity float64
	// Subjectivity in [0,1]
	Subjectivity float64
	Label        Label
	Assessments  []Assessment

	Language         string
	LanguageCode     string
	LanguageReliable bool
}

// Analyzer scores text against a lexicon. It is safe for concurrent use.
type Analyzer struct {
	lexicon *Lexicon
}

// NewAnalyzer creates an analyzer over the given lexicon
func NewAnalyzer(lexicon *Lexicon) *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

var (
	defaultOnce     sync.Once
	defaultAnalyzer *Analyzer
	defaultErr      error
)

// Default returns the analyzer backed by the embedded English lexicon
func Default() (*Analyzer, error) {
	defaultOnce.Do(func() {
		var lex *Lexicon
		lex, defaultErr = ParseLexicon(defaultLexicon)
		if defaultErr == nil {
			defaultAnalyzer = NewAnalyzer(lex)
		}
	})
	return defaultAnalyzer, defaultErr
}

// Analyze scores text. Text without any opinion words is neutral with zero
// subjectivity.
func (a *Analyzer) Analyze(text string) Result {
	tokens := tokenize(text)
	assessments := a.assess(tokens)

	result := Result{Assessments: assessments}
	if len(assessments) > 0 {
		result.Polarity = lo.Clamp(lo.MeanBy(assessments, func(item Assessment) float64 {
			return item.Polarity
		}), -1, 1)
		result.Subjectivity = lo.Clamp(lo.MeanBy(assessments, func(item Assessment) float64 {
			return item.Subjectivity
		}), 0, 1)
	}
	result.Label = LabelFor(result.Polarity)

	if strings.TrimSpace(text) != "" {
		info := whatlanggo.Detect(text)
		result.Language = info.Lang.String()
		result.LanguageCode = info.Lang.Iso6391()
		result.LanguageReliable = info.IsReliable()
	}

	return result
}

func (a *Analyzer) assess(tokens []string) []Assessment {
	lex := a.lexicon
	phrases := lex.matchPhrases(tokens)

	var assessments []Assessment
	for i := 0; i < len(tokens); {
		var (
			term  string
			entry Entry
			next  int
		)

		if m, ok := phrases[i]; ok {
			term, entry, next = m.phrase, lex.phrases[m.phrase], m.end
		} else if e, ok := lex.words[tokens[i]]; ok {
			term, entry, next = tokens[i], e, i+1
		} else {
			i++
			continue
		}

		assessment := Assessment{
			Term:         term,
			Polarity:     entry.Polarity,
			Subjectivity: entry.Subjectivity,
			Intensity:    1,
		}

		// modifiers sit directly before the term: [negation] [intensifier] term
		j := i - 1
		if j >= 0 {
			if factor, ok := lex.intensifiers[tokens[j]]; ok {
				assessment.Intensity = factor
				assessment.Polarity = lo.Clamp(assessment.Polarity*factor, -1, 1)
				assessment.Subjectivity = lo.Clamp(assessment.Subjectivity*factor, 0, 1)
				j--
			}
		}
		if j >= 0 && lex.isNegation(tokens[j]) {
			assessment.Negated = true
			assessment.Polarity *= negationFactor
		}

		assessments = append(assessments, assessment)
		i = next
	}
	return assessments
}

// tokenize lowercases text and splits it into words. Apostrophes stay inside
// words so contractions such as "don't" survive as one token.
func tokenize(text string) []string {
	return strings.FieldsFunc(normalizeTerm(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'')
	})
}

func normalizeTerm(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	return strings.NewReplacer("’", "'", "‘", "'").Replace(term)
}
