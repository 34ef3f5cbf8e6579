package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer field that tolerates upstream serializers quoting
// numbers. Identifiers and quantities must be numeric before any comparison
// or arithmetic regardless of how they arrive on the wire.
type FlexInt int64

// UnmarshalJSON accepts both bare and quoted integers.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse integer %q: %w", s, err)
	}
	*n = FlexInt(v)
	return nil
}

// MarshalJSON renders the value as a bare number.
func (n FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(n), 10)), nil
}
