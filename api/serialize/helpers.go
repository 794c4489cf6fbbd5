package serialize

import "reflect"

// Item serializes a single record.
func Item(s Serializer, record any, sctx Context) map[string]any {
	return s.Serialize(record, sctx)
}

// List serializes a sequence of records by mapping Item over it, preserving
// order. Collection wrappers may expose their elements through Lister;
// otherwise the record must be a slice or an array. Anything else serializes
// as a one-element list.
func List(s Serializer, records any, sctx Context) []map[string]any {
	if records == nil {
		return []map[string]any{}
	}

	if lister, ok := records.(Lister); ok {
		elements := lister.Elements()
		out := make([]map[string]any, len(elements))
		for i, element := range elements {
			out[i] = Item(s, element, sctx)
		}
		return out
	}

	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return []map[string]any{Item(s, records, sctx)}
	}

	out := make([]map[string]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = Item(s, v.Index(i).Interface(), sctx)
	}
	return out
}
