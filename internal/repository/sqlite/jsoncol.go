package sqlite

import (
	"database/sql"
	"encoding/json"
)

// marshalJSON renders a nested value for storage in a TEXT column. A nil or
// unmarshalable value is stored as NULL so reads fall back to the zero value.
func marshalJSON(v any) any {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return string(b)
}

// unmarshalJSON decodes a nested TEXT column into dst. Reads never fail on
// malformed rows; dst keeps its zero value when the column is NULL, empty,
// or not valid JSON.
func unmarshalJSON(col sql.NullString, dst any) {
	if !col.Valid || col.String == "" {
		return
	}
	_ = json.Unmarshal([]byte(col.String), dst)
}
