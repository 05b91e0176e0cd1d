package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a positive integer identifier, reporting whether it is valid.
func ParseID(value string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
