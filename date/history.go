package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a specific month.
// It ensures that months are unique and the series is always sorted.
type History[T any] struct {
	months []Month
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.months) }

// Clear removes all items from the history.
func (h *History[T]) Clear() {
	h.months = h.months[:0]
	h.values = h.values[:0]
}

// First returns the earliest month and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) First() (Month, T) {
	if len(h.months) == 0 {
		return Month{}, *new(T)
	}
	return h.months[0], h.values[0]
}

// Latest returns the latest month and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (Month, T) {
	last := len(h.months) - 1
	if last < 0 {
		return Month{}, *new(T)
	}
	return h.months[last], h.values[last]
}

// search returns the position of on, and whether it is present.
func (h *History[T]) search(on Month) (int, bool) {
	return slices.BinarySearchFunc(h.months, on, Month.Compare)
}

// Append adds a point to the history.
//
// Existing value at that month is overwritten, the last data wins.
func (h *History[T]) Append(on Month, v T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] = v
		return h
	}
	h.months = slices.Insert(h.months, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Get returns the value at 'on' and true or zero value and false.
func (h *History[T]) Get(on Month) (T, bool) {
	if i, found := h.search(on); found {
		return h.values[i], true
	}
	return *new(T), false
}

// ValueAsOf returns the value on a given month, or the most recent value before it.
func (h *History[T]) ValueAsOf(on Month) (T, bool) {
	i, found := h.search(on)
	if found {
		return h.values[i], true
	}
	if i == 0 {
		return *new(T), false
	}
	return h.values[i-1], true
}

// Values returns an iterator over all month/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Month, T] {
	return func(yield func(Month, T) bool) {
		for i, on := range h.months {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Within returns a new history restricted to the months of r.
func (h *History[T]) Within(r Range) *History[T] {
	res := new(History[T])
	for on, v := range h.Values() {
		if r.Contains(on) {
			res.months = append(res.months, on)
			res.values = append(res.values, v)
		}
	}
	return res
}
