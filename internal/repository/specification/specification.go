package specification

// Specification decides whether a stored record belongs to a query result.
type Specification[T any] interface {
	IsSatisfiedBy(record *T) bool
}

// Filter keeps the records matching every spec, preserving stored order. The
// input slice is not modified.
func Filter[T any](records []T, specs ...Specification[T]) []T {
	out := make([]T, 0, len(records))
	for i := range records {
		if matchesAll(&records[i], specs) {
			out = append(out, records[i])
		}
	}
	return out
}

func matchesAll[T any](record *T, specs []Specification[T]) bool {
	for _, spec := range specs {
		if !spec.IsSatisfiedBy(record) {
			return false
		}
	}
	return true
}
