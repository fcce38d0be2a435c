package opts

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestConvertKVStringsToMap(t *testing.T) {
	got := ConvertKVStringsToMap([]string{"A=1", "B=x=y", "C", "=skipped", "D="})
	assert.DeepEqual(t, got, map[string]string{
		"A": "1",
		"B": "x=y",
		"C": "",
		"D": "",
	})
}
