package sentiment

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// Entry scores one word or phrase
type Entry struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

type lexiconFile struct {
	Words        map[string]Entry   `yaml:"words"`
	Phrases      map[string]Entry   `yaml:"phrases"`
	Intensifiers map[string]float64 `yaml:"intensifiers"`
	Negations    []string           `yaml:"negations"`
}

// Lexicon holds the scored vocabulary together with the phrase automaton
type Lexicon struct {
	words        map[string]Entry
	phrases      map[string]Entry
	intensifiers map[string]float64
	negations    map[string]struct{}
	matcher      *goahocorasick.Machine
}

// ParseLexicon decodes a YAML lexicon and builds the phrase matcher
func ParseLexicon(data []byte) (*Lexicon, error) {
	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode lexicon: %w", err)
	}

	lex := &Lexicon{
		words:        make(map[string]Entry, len(file.Words)),
		phrases:      make(map[string]Entry, len(file.Phrases)),
		intensifiers: make(map[string]float64, len(file.Intensifiers)),
		negations:    make(map[string]struct{}, len(file.Negations)),
	}

	for word, entry := range file.Words {
		if err := entry.validate(word); err != nil {
			return nil, err
		}
		lex.words[normalizeTerm(word)] = entry
	}
	for phrase, entry := range file.Phrases {
		if err := entry.validate(phrase); err != nil {
			return nil, err
		}
		lex.phrases[strings.Join(tokenize(phrase), " ")] = entry
	}
	for word, factor := range file.Intensifiers {
		if factor <= 0 {
			return nil, fmt.Errorf("intensifier %q: factor must be positive, got %v", word, factor)
		}
		lex.intensifiers[normalizeTerm(word)] = factor
	}
	for _, word := range file.Negations {
		lex.negations[normalizeTerm(word)] = struct{}{}
	}

	if len(lex.phrases) > 0 {
		patterns := make([]string, 0, len(lex.phrases))
		for phrase := range lex.phrases {
			patterns = append(patterns, phrase)
		}
		sort.Strings(patterns)

		runes := make([][]rune, len(patterns))
		for i, p := range patterns {
			runes[i] = []rune(p)
		}

		lex.matcher = new(goahocorasick.Machine)
		if err := lex.matcher.Build(runes); err != nil {
			return nil, fmt.Errorf("failed to build phrase matcher: %w", err)
		}
	}

	return lex, nil
}

func (e Entry) validate(term string) error {
	if e.Polarity < -1 || e.Polarity > 1 {
		return fmt.Errorf("lexicon term %q: polarity %v outside [-1,1]", term, e.Polarity)
	}
	if e.Subjectivity < 0 || e.Subjectivity > 1 {
		return fmt.Errorf("lexicon term %q: subjectivity %v outside [0,1]", term, e.Subjectivity)
	}
	return nil
}

// Size returns the number of scored words and phrases
func (l *Lexicon) Size() int {
	return len(l.words) + len(l.phrases)
}

func (l *Lexicon) isNegation(token string) bool {
	_, ok := l.negations[token]
	return ok
}

// phraseMatch is a phrase occurrence expressed in token positions
type phraseMatch struct {
	start, end int // end is exclusive
	phrase     string
}

// matchPhrases finds whole-token phrase occurrences. Overlaps resolve to the
// earliest, then longest, match.
func (l *Lexicon) matchPhrases(tokens []string) map[int]phraseMatch {
	if l.matcher == nil || len(tokens) == 0 {
		return nil
	}

	// token boundaries inside the space-joined text
	starts := make(map[int]int, len(tokens))
	ends := make(map[int]int, len(tokens))
	offset := 0
	for i, token := range tokens {
		starts[offset] = i
		offset += len([]rune(token))
		ends[offset] = i + 1
		offset++ // separator
	}

	text := []rune(strings.Join(tokens, " "))
	terms := l.matcher.MultiPatternSearch(text, false)

	candidates := make([]phraseMatch, 0, len(terms))
	for _, term := range terms {
		start, okStart := starts[term.Pos]
		end, okEnd := ends[term.Pos+len(term.Word)]
		if !okStart || !okEnd {
			continue
		}
		candidates = append(candidates, phraseMatch{start: start, end: end, phrase: string(term.Word)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return candidates[i].end > candidates[j].end
	})

	matches := make(map[int]phraseMatch)
	covered := -1
	for _, m := range candidates {
		if m.start < covered {
			continue
		}
		matches[m.start] = m
		covered = m.end
	}
	return matches
}
