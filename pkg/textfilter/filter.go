package textfilter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// replacements maps words unsuitable for all-ages exhibits to softer
// alternatives. Poem lines pass through here when the service runs in
// filtered mode.
var replacements = map[string]string{
	"fuck":     "fudge",
	"shit":     "shoot",
	"damn":     "dang",
	"hell":     "heck",
	"ass":      "butt",
	"bitch":    "jerk",
	"bastard":  "jerk",
	"crap":     "crud",
	"piss":     "ticked",
	"asshole":  "jerk",
	"goddamn":  "gosh-dang",
	"bullshit": "baloney",
	"prick":    "jerk",
	"whore":    "[censored]",
	"slut":     "[censored]",
}

// Filter replaces flagged words in player-facing text while preserving
// the case pattern of the original word.
type Filter struct {
	regexes map[string]*regexp.Regexp
}

// New compiles the word-boundary patterns once up front.
func New() *Filter {
	f := &Filter{regexes: make(map[string]*regexp.Regexp, len(replacements))}
	for word := range replacements {
		f.regexes[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return f
}

// Line returns the text with every flagged word replaced.
func (f *Filter) Line(text string) string {
	result := text
	for word, regex := range f.regexes {
		replacement := replacements[word]
		result = regex.ReplaceAllStringFunc(result, func(match string) string {
			return preserveCase(match, replacement)
		})
	}
	return result
}

// Lines filters a whole poem, returning a new slice.
func (f *Filter) Lines(lines []string) []string {
	filtered := make([]string, len(lines))
	for i, line := range lines {
		filtered[i] = f.Line(line)
	}
	return filtered
}

// Contains reports whether the text has any flagged word.
func (f *Filter) Contains(text string) bool {
	for _, regex := range f.regexes {
		if regex.MatchString(text) {
			return true
		}
	}
	return false
}

// preserveCase applies the case pattern of the matched word to its
// replacement: all-caps stays all-caps, title case stays title case,
// mixed case is mapped rune by rune.
func preserveCase(original, replacement string) string {
	if original == "" {
		return replacement
	}

	if strings.ToUpper(original) == original {
		return strings.ToUpper(replacement)
	}
	if strings.ToLower(original) == original {
		return strings.ToLower(replacement)
	}

	titleCaser := cases.Title(language.English)
	if titleCaser.String(strings.ToLower(original)) == original {
		return titleCaser.String(replacement)
	}

	originalRunes := []rune(original)
	result := make([]rune, 0, len(replacement))
	for i, r := range []rune(replacement) {
		if i < len(originalRunes) && unicode.IsUpper(originalRunes[i]) {
			result = append(result, unicode.ToUpper(r))
		} else {
			result = append(result, unicode.ToLower(r))
		}
	}
	return string(result)
}
