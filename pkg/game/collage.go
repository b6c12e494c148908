package game

// CollageItem positions one chosen photo in the memory collage grid.
type CollageItem struct {
	PhotoID  string  `json:"photo_id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Size     float64 `json:"size"`
	ZIndex   int     `json:"z_index"`
}

const (
	collageColumns  = 3
	collageCellSize = 100
	collagePadding  = 40
)

// CollageLayout arranges the chosen photos in a fixed 3-column grid on
// the left quarter of the board. Order is shuffled so the collage does
// not mirror selection order; each photo keeps the size it was shown at.
func (s *Session) CollageLayout() []CollageItem {
	if len(s.ChosenPhotos) == 0 {
		return []CollageItem{}
	}

	shuffled := make([]ChosenPhoto, len(s.ChosenPhotos))
	for i, j := range s.random().Perm(len(s.ChosenPhotos)) {
		shuffled[i] = s.ChosenPhotos[j]
	}

	centerX := s.Width / 4
	totalWidth := float64(collageColumns * collageCellSize)
	startX := centerX - totalWidth/2 + collageCellSize/2
	startY := float64(collagePadding + 60)

	items := make([]CollageItem, 0, len(shuffled))
	for i, photo := range shuffled {
		row := i / collageColumns
		col := i % collageColumns

		items = append(items, CollageItem{
			PhotoID: photo.PhotoID,
			X:       startX + float64(col*collageCellSize),
			Y:       startY + float64(row*collageCellSize) + collageCellSize/2,
			Size:    photo.Size,
			ZIndex:  i,
		})
	}
	return items
}
