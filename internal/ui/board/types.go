package board

import "github.com/riordanpawley/papan/internal/domain"

// Cursor is the highlighted card position
type Cursor struct {
	Column domain.ColumnKey
	Task   int  // Index within the column
	Valid  bool // False when the cursor column is empty
}

// Grab describes a card picked up in move mode
type Grab struct {
	Source domain.ColumnKey
	Index  int
	Target domain.ColumnKey
}

// cardHeight is the number of lines a rendered card takes: two content
// lines plus the border.
const cardHeight = 4
