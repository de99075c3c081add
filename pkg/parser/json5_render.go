package parser

import (
	"encoding/json"
	"sort"
	"strings"
)

// renderJSON5Object renders an aglint config comment's parameter object
// back to text as compact JSON key-value pairs without enclosing braces,
// the same brace-less form TryParseConfigComment reads (spec §6). Key
// order is sorted for determinism; §8 pins the
// round-trip property down to "ignoring key ordering" precisely because
// the source object has none.
func renderJSON5Object(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		valueJSON, err := json.Marshal(obj[k])
		if err != nil {
			valueJSON = []byte(`null`)
		}
		keyJSON, _ := json.Marshal(k)
		pairs = append(pairs, string(keyJSON)+": "+string(valueJSON))
	}

	return strings.Join(pairs, ", ")
}
