package entity

// put records *v under col when the request carried the field.
func put[T any](m map[string]any, col string, v *T) {
	if v != nil {
		m[col] = *v
	}
}
