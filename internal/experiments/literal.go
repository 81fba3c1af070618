package experiments

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// literalString returns the textual form of a wire scalar.
func literalString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return string(t)
	default:
		return fmt.Sprint(v)
	}
}

// literalInt parses a wire scalar already accepted by the validate package.
func literalInt(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	default:
		return strconv.ParseInt(literalString(v), 10, 64)
	}
}
