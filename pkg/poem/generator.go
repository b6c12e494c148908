package poem

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

const (
	// MinLines and MaxLines bound the final poem length.
	MinLines = 15
	MaxLines = 19

	// promptCount is the fixed number of prompt slots per poem.
	promptCount = 4

	// lineAttemptBudget bounds rejection-sampling retries per body line.
	lineAttemptBudget = 200

	// spliceAttemptBudget bounds placement retries per spliced prompt.
	spliceAttemptBudget = 20

	// minSensoryCategories is the coverage floor across the five categories.
	minSensoryCategories = 3

	// padLine fills the poem up to MinLines when construction came up short.
	padLine = "In the space between"
)

// fallbackPoem is returned when no prompts were supplied at all.
var fallbackPoem = []string{
	"Whispers in the void",
	"Memories fade like mist",
	"Echoes remain",
}

// Generate builds a poem from up to four player prompts. Each prompt that
// is non-blank appears verbatim as one full line, never first. The result
// is 15 to 19 lines, covers at least three sensory categories, avoids
// repeated lines, and carries at most one question mark.
//
// Generation never fails: pool exhaustion and placement dead ends degrade
// to placeholder lines rather than errors.
func Generate(prompts []string) []string {
	return generate(prompts, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// GenerateWithSeed is Generate with a fixed seed. The same prompts and
// seed always produce the same poem.
func GenerateWithSeed(prompts []string, seed int64) []string {
	return generate(prompts, rand.New(rand.NewSource(seed)))
}

func generate(prompts []string, rng *rand.Rand) []string {
	if len(prompts) == 0 {
		return append([]string(nil), fallbackPoem...)
	}

	prompts = normalizePrompts(prompts)

	d := &draft{
		rng:          rng,
		pool:         newPool(),
		used:         make(map[string]bool),
		categoryUsed: make(map[Category]bool),
	}

	target := MinLines + rng.Intn(MaxLines-MinLines+1)

	// Reserve four slots for prompts; prompts are spliced by position
	// afterward, so this is a planning heuristic rather than allocation.
	d.fillBody(target - promptCount)
	d.splicePrompts(prompts)
	d.ensureSensoryCoverage()
	d.ensureQuestion()
	d.dedupeQuestionMarks()
	d.clampLength()

	return d.lines
}

// normalizePrompts shapes arbitrary caller input into exactly four
// entries: truncate, pad with blanks, then keep only non-blank prompts
// in their original relative order and pad again.
func normalizePrompts(prompts []string) []string {
	padded := append([]string(nil), prompts...)
	for len(padded) < promptCount {
		padded = append(padded, "")
	}
	padded = padded[:promptCount]

	valid := make([]string, 0, promptCount)
	for _, p := range padded {
		if strings.TrimSpace(p) != "" {
			valid = append(valid, p)
		}
	}
	for len(valid) < promptCount {
		valid = append(valid, "")
	}
	return valid[:promptCount]
}

// draft is the poem under construction, threaded through the assembly
// stages. All state is call-local.
type draft struct {
	rng  *rand.Rand
	pool *pool

	lines []string

	// used tracks lower-cased body line text for duplicate rejection.
	// Spliced prompts are intentionally not tracked here.
	used map[string]bool

	categoryUsed    map[Category]bool
	promptPositions []int
}

// appendLine accepts a body line and records it for duplicate rejection.
func (d *draft) appendLine(line string) {
	d.lines = append(d.lines, line)
	d.used[strings.ToLower(line)] = true
}

// insertAt splices a line in by position without duplicate tracking.
func (d *draft) insertAt(pos int, line string) {
	d.lines = append(d.lines, "")
	copy(d.lines[pos+1:], d.lines[pos:])
	d.lines[pos] = line
}

func (d *draft) sensoryCount() int {
	count := 0
	for _, used := range d.categoryUsed {
		if used {
			count++
		}
	}
	return count
}

// fillBody adds body lines until want lines have been accepted. Sensory
// lines take priority until three categories are covered; after that,
// lines come from single or combined poetic elements. Every iteration
// makes progress, so the loop always terminates.
func (d *draft) fillBody(want int) {
	count := 0
	for count < want {
		if d.sensoryCount() < minSensoryCategories {
			c := Categories[d.rng.Intn(len(Categories))]
			if !d.categoryUsed[c] {
				if phrase, ok := d.pool.takeSensory(d.rng, c); ok {
					line := capitalize(phrase)
					if !d.used[strings.ToLower(line)] {
						d.appendLine(line)
						d.pool.removeSensory(c, phrase)
						d.categoryUsed[c] = true
						count++
						continue
					}
				}
			}
		}

		if d.addPoeticLine() {
			count++
			continue
		}

		// Attempt budget exhausted. A duplicate placeholder is skipped
		// rather than retried; a short poem is padded later.
		placeholder := capitalize(fmt.Sprintf("in the space between %d", count))
		if !d.used[strings.ToLower(placeholder)] {
			d.appendLine(placeholder)
		}
		count++
	}
}

// addPoeticLine attempts one generic body line within the attempt budget:
// 70% a single element, 30% two distinct elements joined by ", " or " ".
// Combined lines are additionally rejected as near-duplicates when their
// word set overlaps an existing line too heavily.
func (d *draft) addPoeticLine() bool {
	for attempts := 0; attempts < lineAttemptBudget; attempts++ {
		if d.rng.Float64() < 0.7 {
			element, ok := d.pool.takeElement(d.rng)
			if !ok {
				continue
			}
			line := capitalize(element)
			if d.used[strings.ToLower(line)] {
				continue
			}
			d.appendLine(line)
			d.pool.removeElement(element)
			return true
		}

		first, second, ok := d.pool.takeElementPair(d.rng)
		if !ok {
			continue
		}
		joined := first + " " + second
		if d.rng.Float64() < 0.5 {
			joined = first + ", " + second
		}
		line := capitalize(joined)
		lower := strings.ToLower(line)
		if d.used[lower] || d.nearDuplicate(lower) {
			continue
		}
		d.appendLine(line)
		d.pool.removeElement(first)
		d.pool.removeElement(second)
		return true
	}
	return false
}

// nearDuplicate reports whether the candidate shares more than two words
// with an existing line, and that overlap exceeds 40% of the larger
// word set. Commas are stripped before tokenizing.
func (d *draft) nearDuplicate(lower string) bool {
	words := wordSet(lower)
	for used := range d.used {
		usedWords := wordSet(used)
		overlap := 0
		for w := range words {
			if usedWords[w] {
				overlap++
			}
		}
		larger := len(words)
		if len(usedWords) > larger {
			larger = len(usedWords)
		}
		if overlap > 2 && larger > 0 && float64(overlap)/float64(larger) > 0.4 {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ReplaceAll(s, ",", "")) {
		set[w] = true
	}
	return set
}

// splicePrompts inserts each non-blank prompt verbatim at a random
// position in [2, len-1], keeping at least two positions away from
// previously placed prompts. Placement is best-effort: after the attempt
// budget the prompt is appended at the end instead.
func (d *draft) splicePrompts(prompts []string) {
	for _, idx := range d.rng.Perm(promptCount) {
		prompt := prompts[idx]
		if strings.TrimSpace(prompt) == "" {
			continue
		}

		placed := false
		for attempts := 0; attempts < spliceAttemptBudget && len(d.lines) >= 3; attempts++ {
			pos := 2 + d.rng.Intn(len(d.lines)-2)
			tooClose := false
			for _, p := range d.promptPositions {
				if abs(pos-p) < 2 {
					tooClose = true
					break
				}
			}
			if tooClose {
				continue
			}
			d.insertAt(pos, prompt)
			d.promptPositions = append(d.promptPositions, pos)
			placed = true
			break
		}
		if !placed {
			d.lines = append(d.lines, prompt)
			d.promptPositions = append(d.promptPositions, len(d.lines)-1)
		}
	}
}

// ensureSensoryCoverage force-inserts fresh corpus phrases for the first
// uncovered categories, in enumeration order, until three are covered.
// This repair pass skips duplicate checks on purpose.
func (d *draft) ensureSensoryCoverage() {
	needed := minSensoryCategories - d.sensoryCount()
	for _, c := range Categories {
		if needed <= 0 {
			break
		}
		if d.categoryUsed[c] {
			continue
		}
		phrases := sensoryPhrases[c]
		line := capitalize(phrases[d.rng.Intn(len(phrases))])
		if len(d.lines) < 3 {
			d.lines = append(d.lines, line)
		} else {
			d.insertAt(1+d.rng.Intn(len(d.lines)-2), line)
		}
		d.categoryUsed[c] = true
		needed--
	}
}

// ensureQuestion mutates one interior, non-prompt line into a question
// when the draft has no question mark yet. If no candidate line exists
// the poem is left without a question; that edge case stands.
func (d *draft) ensureQuestion() {
	for _, line := range d.lines {
		if strings.Contains(line, "?") {
			return
		}
	}

	promptPos := make(map[int]bool, len(d.promptPositions))
	for _, p := range d.promptPositions {
		promptPos[p] = true
	}

	var candidates []int
	for i := 1; i < len(d.lines)-1; i++ {
		if !promptPos[i] {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return
	}

	pos := candidates[d.rng.Intn(len(candidates))]
	line := strings.TrimRight(d.lines[pos], ".")
	switch {
	case d.rng.Float64() < 0.5:
		d.lines[pos] = line + " what remains?"
	case strings.HasSuffix(line, "s"):
		d.lines[pos] = line + " what?"
	default:
		d.lines[pos] = line + ", what then?"
	}
}

// dedupeQuestionMarks keeps the first line containing a question mark and
// neutralizes question marks on every later line to periods.
func (d *draft) dedupeQuestionMarks() {
	found := false
	for i, line := range d.lines {
		if !strings.Contains(line, "?") {
			continue
		}
		if !found {
			found = true
			continue
		}
		d.lines[i] = strings.ReplaceAll(line, "?", ".")
	}
}

// clampLength pads short poems with the literal pad line and truncates
// long ones to MaxLines. Truncation can drop a spliced prompt or the
// question line; that trade-off is accepted.
func (d *draft) clampLength() {
	for len(d.lines) < MinLines {
		d.lines = append(d.lines, padLine)
	}
	if len(d.lines) > MaxLines {
		d.lines = d.lines[:MaxLines]
	}
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
