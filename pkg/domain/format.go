package domain

import "strings"

// JoinOr joins items with ", " and turns the final separator into " or ".
//
//	JoinOr([]string{"a"})           == "a"
//	JoinOr([]string{"a", "b", "c"}) == "a, b or c"
func JoinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	last := len(items) - 1
	return strings.Join(items[:last], ", ") + " or " + items[last]
}
