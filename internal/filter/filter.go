// Package filter implements the category tabs shared by every portfolio
// section: a fixed record collection, a category set derived from the data,
// and the subset selected by the active label.
package filter

// All is the label that selects the whole collection. It is always the first
// entry of a category set.
const All = "All"

// allSentinel is accepted as a synonym of All.
const allSentinel = "all"

// List holds one collection and its active filter label.
type List[T any] struct {
	records    []T
	key        func(T) string
	categories []string
	active     string
}

// New builds a List over records, keyed by key. The active label starts as All.
func New[T any](records []T, key func(T) string) *List[T] {
	return &List[T]{
		records:    records,
		key:        key,
		categories: append([]string{All}, Distinct(records, key)...),
		active:     All,
	}
}

// Distinct returns the distinct keys of records in first-seen order.
func Distinct[T any](records []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Categories returns All followed by the distinct keys of the collection.
func (l *List[T]) Categories() []string {
	out := make([]string, len(l.categories))
	copy(out, l.categories)
	return out
}

// SelectCategory replaces the active label. Labels are not checked against
// the category set; an unknown label selects nothing.
func (l *List[T]) SelectCategory(label string) {
	l.active = label
}

// Active returns the active label.
func (l *List[T]) Active() string {
	return l.active
}

// IsActive reports whether label is the active label.
func (l *List[T]) IsActive(label string) bool {
	if isWildcard(label) {
		return isWildcard(l.active)
	}
	return l.active == label
}

// Visible returns the records selected by the active label, in collection
// order. Matching is exact and case-sensitive.
func (l *List[T]) Visible() []T {
	if isWildcard(l.active) {
		out := make([]T, len(l.records))
		copy(out, l.records)
		return out
	}

	out := make([]T, 0, len(l.records))
	for _, r := range l.records {
		if l.key(r) == l.active {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the size of the whole collection.
func (l *List[T]) Len() int {
	return len(l.records)
}

func isWildcard(label string) bool {
	return label == All || label == allSentinel
}
