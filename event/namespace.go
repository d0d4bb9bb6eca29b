package event

import (
	"strings"

	"github.com/yaoapp/emitter/event/types"
)

// Parent strips the final segment of name, everything from the last separator on.
// "a.b.c" -> "a.b"; "a" has no parent.
func Parent(name string) (string, bool) {
	i := strings.LastIndex(name, types.Separator)
	if i < 0 {
		return "", false
	}
	return name[:i], true
}

// IsDescendant reports whether name lies strictly below ancestor,
// i.e. name is ancestor + "." + a non-empty suffix.
// "a.b" is a descendant of "a"; "ab" and "a" are not.
func IsDescendant(name, ancestor string) bool {
	prefix := ancestor + types.Separator
	return len(name) > len(prefix) && strings.HasPrefix(name, prefix)
}

// Lineage returns the names an emission of name is delivered to, in order:
// name itself followed by each ancestor.
//
//	Lineage("a.b.c") -> ["a.b.c", "a.b", "a"]
func Lineage(name string) []string {
	names := make([]string, 0, strings.Count(name, types.Separator)+1)
	for {
		names = append(names, name)
		parent, ok := Parent(name)
		if !ok {
			return names
		}
		name = parent
	}
}
