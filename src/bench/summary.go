package bench

import (
	"fmt"
	"io"

	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

type Summary struct {
	Processed int
	Failed    int
	Skipped   int
	Outcomes  []Outcome
}

func (s *Summary) add(o Outcome) {
	s.Processed++
	if o.Failed() {
		s.Failed++
	}
	s.Outcomes = append(s.Outcomes, o)
}

// Slowest returns up to n outcomes that reached a solver, longest solve
// time first. A negative n is treated as zero.
func (s *Summary) Slowest(n int) []Outcome {
	n = max(n, 0)
	pq := priorityqueue.New[int, float64](priorityqueue.MinHeap)
	for i := range s.Outcomes {
		if len(s.Outcomes[i].Solutions) > 0 {
			pq.Put(i, -s.Outcomes[i].SolveTime().Seconds())
		}
	}

	slowest := make([]Outcome, 0, n)
	for pq.Len() > 0 && len(slowest) < n {
		item := pq.Get()
		slowest = append(slowest, s.Outcomes[item.Value])
	}
	return slowest
}

func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "---------------------------------")
	fmt.Fprintln(w, "Test run complete.")
	fmt.Fprintf(w, "Processed: %d files\n", s.Processed)
	fmt.Fprintf(w, "Failed:    %d files\n", s.Failed)
	if s.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:   %d files\n", s.Skipped)
	}
	for i := range s.Outcomes {
		if o := &s.Outcomes[i]; o.Failed() {
			fmt.Fprintln(w, o.String())
		}
	}
}
