package poem

import "math/rand"

// pool holds the call-scoped remaining corpora for one generation run.
// Draws are peeks; consumption is a separate step so a candidate rejected
// for duplication stays available for a later draw.
type pool struct {
	sensory  map[Category][]string
	elements []string
}

// newPool copies the static corpora so generation never mutates them.
func newPool() *pool {
	sensory := make(map[Category][]string, len(sensoryPhrases))
	for c, phrases := range sensoryPhrases {
		sensory[c] = append([]string(nil), phrases...)
	}
	return &pool{
		sensory:  sensory,
		elements: append([]string(nil), poeticElements...),
	}
}

// takeSensory returns a uniformly random remaining phrase from the
// category, or false if the category is exhausted.
func (p *pool) takeSensory(rng *rand.Rand, c Category) (string, bool) {
	remaining := p.sensory[c]
	if len(remaining) == 0 {
		return "", false
	}
	return remaining[rng.Intn(len(remaining))], true
}

func (p *pool) removeSensory(c Category, phrase string) {
	p.sensory[c] = removeFirst(p.sensory[c], phrase)
}

// takeElement returns a uniformly random remaining poetic element, or
// false if the element pool is exhausted.
func (p *pool) takeElement(rng *rand.Rand) (string, bool) {
	if len(p.elements) == 0 {
		return "", false
	}
	return p.elements[rng.Intn(len(p.elements))], true
}

// takeElementPair returns two distinct remaining elements. The second is
// drawn from the elements not equal to the first, so a combined line never
// repeats its own fragment.
func (p *pool) takeElementPair(rng *rand.Rand) (string, string, bool) {
	if len(p.elements) < 2 {
		return "", "", false
	}
	first := p.elements[rng.Intn(len(p.elements))]
	rest := make([]string, 0, len(p.elements)-1)
	for _, e := range p.elements {
		if e != first {
			rest = append(rest, e)
		}
	}
	if len(rest) == 0 {
		return "", "", false
	}
	return first, rest[rng.Intn(len(rest))], true
}

func (p *pool) removeElement(element string) {
	p.elements = removeFirst(p.elements, element)
}

func removeFirst(items []string, target string) []string {
	for i, item := range items {
		if item == target {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
