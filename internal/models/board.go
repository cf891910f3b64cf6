package models

// Board is the top-level container grouping columns and cards.
type Board struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID returns the board ID (used by quiet CLI output)
func (b *Board) GetID() int {
	return b.ID
}
