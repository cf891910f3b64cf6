package models

// DefaultBoardName is the name of the board created on first start
const DefaultBoardName = "Default Board"

// DefaultColumnNames are seeded, in order, into a board that has no columns
var DefaultColumnNames = []string{
	"Parking Lot",
	"Defined",
	"In Progress",
	"Blocked",
	"Done",
}
