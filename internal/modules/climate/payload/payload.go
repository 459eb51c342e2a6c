// Package payload turns read models into the JSON objects the API returns.
package payload

import "fmt"

// Record is any row that can expose its columns by name.
type Record interface {
	Fields() map[string]any
}

// Project keeps only the named columns of each record, in a map keyed by
// column name. Unknown columns map to nil.
func Project[R Record](records []R, cols ...string) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		fields := rec.Fields()
		m := make(map[string]any, len(cols))
		for _, c := range cols {
			m[c] = fields[c]
		}
		out = append(out, m)
	}
	return out
}

// Pairs builds one single-entry object per record, {record[keyCol]: record[valCol]}.
// The key is the string form of the key column; duplicates stay as separate
// objects so no row is lost.
func Pairs[R Record](records []R, keyCol, valCol string) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		fields := rec.Fields()
		out = append(out, map[string]any{keyString(fields[keyCol]): fields[valCol]})
	}
	return out
}

func keyString(v any) string {
	switch k := v.(type) {
	case string:
		return k
	case nil:
		return ""
	default:
		return fmt.Sprint(k)
	}
}
