//go:build unit || e2e

package testutil

// Field sets key on the map, or deletes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// ItemField applies Field to element index of the array stored under key,
// e.g. ItemField("purchases", 0, "quantity", -1).
func ItemField(key string, index int, field string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		items, ok := m[key].([]any)
		if !ok || index >= len(items) {
			return
		}
		if item, ok := items[index].(map[string]any); ok {
			Field(field, value)(item)
		}
	}
}
