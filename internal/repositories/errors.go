package repositories

import "errors"

// Sentinel errors shared by repository implementations. Services wrap these
// with context; handlers match them with errors.Is to pick a status code.
var (
	ErrNotFound   = errors.New("record not found")
	ErrOutOfStock = errors.New("product is out of stock")
)

// ToggleResult reports which way a membership toggle went.
type ToggleResult string

const (
	ToggleAdded   ToggleResult = "added"
	ToggleRemoved ToggleResult = "removed"
)
