package mapping

import (
	"encoding/json"
	"strings"
)

// T5JSON flattens the T5 slip records to a form-line → value object, the
// shape consumed by slip-printing tools. Non-T5 records are skipped.
func T5JSON(records []Record) ([]byte, error) {
	slip := make(map[string]string)
	for _, r := range records {
		if !strings.HasPrefix(r.FieldID, "t5") {
			continue
		}
		slip[r.FormLine] = r.Value
	}
	return json.MarshalIndent(slip, "", "  ")
}
