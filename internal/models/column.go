package models

// Column represents an ordered lane within a board (e.g., "Parking Lot", "Done").
// Position is unique and contiguous within the owning board.
type Column struct {
	ID       int    `json:"id"`
	BoardID  int    `json:"board_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}
