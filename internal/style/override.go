package style

// Override replaces a documented subset of fields on a style record.
type Override[T any] func(T) T

// Apply layers overrides onto a copy of base in order.
func Apply[T any](base T, overrides ...Override[T]) T {
	for _, override := range overrides {
		if override == nil {
			continue
		}
		base = override(base)
	}
	return base
}
