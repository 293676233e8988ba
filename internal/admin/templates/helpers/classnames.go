package helpers

import (
	"sort"
	"strings"
)

// ClassNames merges class tokens into a single class attribute value.
// Accepted argument shapes: string, []string, and map[string]bool (keys are
// included when their value is true, in sorted order so output is stable).
// Nil arguments and empty tokens are skipped; no other validation happens.
func ClassNames(args ...any) string {
	var tokens []string
	add := func(token string) {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case string:
			add(v)
		case []string:
			for _, token := range v {
				add(token)
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for key, on := range v {
				if on {
					keys = append(keys, key)
				}
			}
			sort.Strings(keys)
			for _, key := range keys {
				add(key)
			}
		}
	}
	return strings.Join(tokens, " ")
}
