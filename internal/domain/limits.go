package domain

import "math"

// MaxStoredInt is the largest ID, price or amount the store columns hold
const MaxStoredInt = math.MaxInt32

// ValidID reports whether id can name a stored row
func ValidID(id int) bool {
	return id > 0 && id <= MaxStoredInt
}
