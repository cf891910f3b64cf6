package models

// Card is a unit of work belonging to exactly one column at a time.
// BoardID is a denormalized copy of the owning column's board.
type Card struct {
	ID          int     `json:"id"`
	BoardID     int     `json:"board_id"`
	ColumnID    int     `json:"column_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Position    int     `json:"position"`
}

// GetID returns the card ID (used by quiet CLI output)
func (c *Card) GetID() int {
	return c.ID
}

// DescriptionText returns the description or an empty string when unset
func (c *Card) DescriptionText() string {
	if c.Description == nil {
		return ""
	}
	return *c.Description
}
