package postgres

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSON serializes a value into a JSON column. Nil maps and slices become
// SQL NULL rather than the string "null".
func toJSON(value any) datatypes.JSON {
	if value == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil
	}

	return datatypes.JSON(raw)
}

// fromJSON decodes a JSON column into out, leaving out untouched for NULL
// columns. Decode failures are swallowed: a malformed bag degrades to the
// zero value instead of failing the whole row.
func fromJSON[T any](raw datatypes.JSON, out *T) {
	if len(raw) == 0 {
		return
	}

	_ = json.Unmarshal(raw, out)
}
