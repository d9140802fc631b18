package cssreport

// Counted is anything that can report how many findings it carries. Both
// the raw Result and the normalized FileReport satisfy it, so callers can
// count either shape without converting.
type Counted interface {
	MessageCount() int
}

// Count sums the findings across a result collection. Zero for empty input.
func Count[T Counted](results []T) int {
	total := 0
	for _, r := range results {
		total += r.MessageCount()
	}
	return total
}
