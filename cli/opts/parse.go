package opts

import (
	"strings"
)

// convert "key=value" to {"key":"value"}
// Entries without "=" map to an empty value, entries with an empty key are
// dropped.
func ConvertKVStringsToMap(values []string) map[string]string {
	result := make(map[string]string, len(values))
	for _, value := range values {
		k, v, _ := strings.Cut(value, "=")
		if k == "" {
			continue
		}
		result[k] = v
	}
	return result
}
