package normalize

// Apply runs value through each transform in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable normalization pipeline from the given
// transforms. Preferred over repeated Apply calls when the same chain
// runs for every record.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Ptr lifts a plain transform to one with nil passthrough, so pipelines
// built for nullable columns can reuse the plain helpers:
//
//	clean := normalize.Ptr(normalize.Compose(normalize.Whitespace, normalize.Phone))
func Ptr[T any](transform func(T) T) func(*T) *T {
	return func(value *T) *T {
		if value == nil {
			return nil
		}
		out := transform(*value)
		return &out
	}
}
