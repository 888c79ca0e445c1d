package render

// ForLoop tracks loop position while the dispatcher iterates a formset's
// forms, mirroring the metadata Django-dialect templates expose under the
// forloop variable. Layouts can reference it inside a formset render:
//
//	layout.HTML{Template: `{% if forloop.first %}First form{% endif %}`}
//
// One ForLoop is created per formset render pass and discarded afterwards;
// the dispatcher owns it exclusively and templates only ever see immutable
// snapshots.
type ForLoop struct {
	total int

	// Counter and Counter0 are the 1-based and 0-based iteration numbers.
	Counter  int
	Counter0 int

	// RevCounter and RevCounter0 count down towards the end of the loop.
	RevCounter  int
	RevCounter0 int

	// First and Last flag the boundary iterations.
	First bool
	Last  bool
}

// NewForLoop creates a cursor for a collection of the given size, positioned
// on the first element.
func NewForLoop(total int) *ForLoop {
	return &ForLoop{
		total:       total,
		Counter:     1,
		Counter0:    0,
		RevCounter:  total,
		RevCounter0: total - 1,
		First:       true,
		Last:        0 == total-1,
	}
}

// Advance moves the cursor to the next element. Stepping past the end is
// permitted and keeps decrementing the reverse counters; the dispatcher never
// calls Advance more than total times per pass. Last intentionally reuses the
// (RevCounter0 == total-1) recurrence from the initial state, so once the
// loop has advanced it stays false for monotonically decreasing counters.
func (fl *ForLoop) Advance() {
	fl.Counter++
	fl.Counter0++
	fl.RevCounter--
	fl.RevCounter0--
	fl.First = false
	fl.Last = fl.RevCounter0 == fl.total-1
}

// Snapshot captures the current position as a fresh mapping suitable for
// injection into a render context. Keys follow the Django forloop naming so
// pack templates and layout fragments read naturally.
func (fl *ForLoop) Snapshot() map[string]any {
	return map[string]any{
		"counter":     fl.Counter,
		"counter0":    fl.Counter0,
		"revcounter":  fl.RevCounter,
		"revcounter0": fl.RevCounter0,
		"first":       fl.First,
		"last":        fl.Last,
	}
}
