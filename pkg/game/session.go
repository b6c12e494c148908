package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultWidth and DefaultHeight describe the play board in pixels.
	DefaultWidth  = 1820
	DefaultHeight = 750

	// TotalSteps is the number of photo selections in one game.
	TotalSteps = 15

	// optionMinSize and optionMaxSize bound the random display size of a
	// photo option.
	optionMinSize = 80
	optionMaxSize = 180
)

// surrealPrompts are the phrases shown alongside each photo pair. A
// session cycles through them without repeats until all are used.
var surrealPrompts = []string{
	"Blue rain",
	"Time smells like rust",
	"Flying trees",
	"Gravity is a lie",
	"Glass clouds in the sky",
	"Your shadow is dancing",
	"Paper wind blows",
	"Metal starts to breathe",
	"Dark fire",
	"Silence is very loud",
	"Liquid gold",
	"Flowers made of bone",
	"The Old Future is Here",
	"City Built on Clouds",
	"Very Cold Light",
}

// PhotoOption is a photo offered to the player, with its position and
// display size on the board.
type PhotoOption struct {
	PhotoID string  `json:"photo_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Size    float64 `json:"size"`
}

// ChosenPhoto records a selected photo and the size it was shown at, so
// the collage can reuse it.
type ChosenPhoto struct {
	PhotoID string  `json:"photo_id"`
	Size    float64 `json:"size"`
}

// ChosenPrompt pairs a selected photo with the prompt displayed when it
// was chosen. These prompts feed the poem generator at the end of a game.
type ChosenPrompt struct {
	PhotoID string `json:"photo_id"`
	Prompt  string `json:"prompt"`
}

// Session is the state of one photo-selection game.
type Session struct {
	ID             uuid.UUID      `json:"id"`
	Width          float64        `json:"width"`
	Height         float64        `json:"height"`
	StepsRemaining int            `json:"steps_remaining"`
	Started        bool           `json:"game_started"`
	Complete       bool           `json:"game_complete"`
	ChosenPhotos   []ChosenPhoto  `json:"chosen_photos,omitempty"`
	ChosenPrompts  []ChosenPrompt `json:"chosen_prompts,omitempty"`
	ExcludedPhotos []string       `json:"excluded_photos,omitempty"`
	CurrentOptions []PhotoOption  `json:"current_options"`
	CurrentPrompt  string         `json:"current_prompt,omitempty"`
	UsedPrompts    []string       `json:"used_prompts,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	rng *rand.Rand
}

// NewSession creates a session and deals the first pair of options from
// the photo pool.
func NewSession(pool []string) *Session {
	return NewSessionWithSeed(pool, time.Now().UnixNano())
}

// NewSessionWithSeed is NewSession with a fixed seed, for reproducible
// option placement in tests.
func NewSessionWithSeed(pool []string, seed int64) *Session {
	s := &Session{
		ID:             uuid.New(),
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		StepsRemaining: TotalSteps,
		CreatedAt:      time.Now(),
		rng:            rand.New(rand.NewSource(seed)),
	}
	s.generateOptions(pool)
	return s
}

// random returns the session's random source, creating one lazily for
// sessions restored from storage. Each session owns its source; nothing
// is shared across sessions.
func (s *Session) random() *rand.Rand {
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.rng
}

// Start marks the game as started.
func (s *Session) Start() {
	s.Started = true
}

// availablePhotos filters the pool down to photos the player has neither
// chosen nor passed over.
func (s *Session) availablePhotos(pool []string) []string {
	excluded := make(map[string]bool, len(s.ChosenPhotos)+len(s.ExcludedPhotos))
	for _, chosen := range s.ChosenPhotos {
		excluded[chosen.PhotoID] = true
	}
	for _, id := range s.ExcludedPhotos {
		excluded[id] = true
	}

	available := make([]string, 0, len(pool))
	for _, id := range pool {
		if !excluded[id] {
			available = append(available, id)
		}
	}
	return available
}

// generateOptions deals the next pair of photo options with
// non-overlapping positions and assigns the next unused prompt.
func (s *Session) generateOptions(pool []string) {
	rng := s.random()

	available := s.availablePhotos(pool)
	if len(available) == 0 {
		s.CurrentOptions = []PhotoOption{}
		return
	}

	count := 2
	if len(available) < count {
		count = len(available)
	}
	selected := sampleWithoutReplacement(rng, available, count)

	positions := s.pairPositions()
	s.CurrentOptions = make([]PhotoOption, 0, count)
	for i, photoID := range selected {
		x, y := positions[i].x, positions[i].y
		s.CurrentOptions = append(s.CurrentOptions, PhotoOption{
			PhotoID: photoID,
			X:       x,
			Y:       y,
			Size:    optionMinSize + rng.Float64()*(optionMaxSize-optionMinSize),
		})
	}

	s.CurrentPrompt = s.nextPrompt()
}

// nextPrompt picks a random prompt not yet shown this session. Once the
// table is exhausted the used list resets and cycling starts over.
func (s *Session) nextPrompt() string {
	used := make(map[string]bool, len(s.UsedPrompts))
	for _, p := range s.UsedPrompts {
		used[p] = true
	}

	unused := make([]string, 0, len(surrealPrompts))
	for _, p := range surrealPrompts {
		if !used[p] {
			unused = append(unused, p)
		}
	}
	if len(unused) == 0 {
		s.UsedPrompts = nil
		unused = surrealPrompts
	}

	prompt := unused[s.random().Intn(len(unused))]
	s.UsedPrompts = append(s.UsedPrompts, prompt)
	return prompt
}

// Select handles the player choosing one of the current options. The
// unchosen option is excluded from future pairs. Returns false when the
// game is over or the photo is not on offer.
func (s *Session) Select(photoID string, pool []string) bool {
	if s.Complete || s.StepsRemaining == 0 {
		return false
	}

	var selected *PhotoOption
	for i := range s.CurrentOptions {
		if s.CurrentOptions[i].PhotoID == photoID {
			selected = &s.CurrentOptions[i]
			break
		}
	}
	if selected == nil {
		return false
	}

	s.ChosenPhotos = append(s.ChosenPhotos, ChosenPhoto{
		PhotoID: photoID,
		Size:    selected.Size,
	})
	s.ChosenPrompts = append(s.ChosenPrompts, ChosenPrompt{
		PhotoID: photoID,
		Prompt:  s.CurrentPrompt,
	})

	for _, option := range s.CurrentOptions {
		if option.PhotoID != photoID && !contains(s.ExcludedPhotos, option.PhotoID) {
			s.ExcludedPhotos = append(s.ExcludedPhotos, option.PhotoID)
		}
	}

	s.StepsRemaining--
	if s.StepsRemaining > 0 {
		s.generateOptions(pool)
	} else {
		s.Complete = true
	}
	return true
}

// SelectedPrompts returns up to four prompts drawn from the player's
// chosen photos, for the poem generator. When more than four photos were
// chosen, four are sampled at random.
func (s *Session) SelectedPrompts() (photoIDs []string, prompts []string) {
	chosen := s.ChosenPhotos
	if len(chosen) > 4 {
		picks := s.random().Perm(len(chosen))[:4]
		sampled := make([]ChosenPhoto, 0, 4)
		for _, i := range picks {
			sampled = append(sampled, chosen[i])
		}
		chosen = sampled
	}

	for _, photo := range chosen {
		photoIDs = append(photoIDs, photo.PhotoID)
		for _, cp := range s.ChosenPrompts {
			if cp.PhotoID == photo.PhotoID {
				prompts = append(prompts, cp.Prompt)
				break
			}
		}
	}
	return photoIDs, prompts
}

// WorldPrompt builds the description string for the generated world from
// the given prompts.
func WorldPrompt(prompts []string) string {
	if len(prompts) == 0 {
		return "Abstract 3D surrealist collage world with dreamlike landscape, " +
			"fragmented elements, geometric shapes, and floating structures."
	}
	return fmt.Sprintf("Abstract 3D surrealist collage world combining: %s. "+
		"Dreamlike landscape with fragmented elements, geometric shapes, "+
		"floating structures, and ethereal atmosphere.", strings.Join(prompts, ", "))
}

// Color is an RGB triple for the world gradient.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// worldPalette holds the surrealist gradient candidates.
var worldPalette = []Color{
	{R: 200, G: 100, B: 50},
	{R: 50, G: 100, B: 200},
	{R: 100, G: 50, B: 100},
	{R: 150, G: 150, B: 100},
	{R: 200, G: 150, B: 100},
}

// DominantColor picks a gradient color for the world. Sessions with no
// chosen photos get a neutral gray.
func (s *Session) DominantColor() Color {
	if len(s.ChosenPhotos) == 0 {
		return Color{R: 150, G: 150, B: 150}
	}
	return worldPalette[s.random().Intn(len(worldPalette))]
}

func sampleWithoutReplacement(rng *rand.Rand, items []string, count int) []string {
	picked := make([]string, 0, count)
	for _, i := range rng.Perm(len(items))[:count] {
		picked = append(picked, items[i])
	}
	return picked
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
