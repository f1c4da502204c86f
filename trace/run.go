package trace

// Observer is called after each appended record. A non-nil error ends the
// run with status Stopped.
type Observer func(Record) error

// Run accumulates the records of one solver run.
type Run struct {
	records []Record
	obs     Observer
	err     error
}

// NewRun returns a Run with capacity for capHint records.
func NewRun(capHint int, obs Observer) *Run {
	if capHint < 0 || capHint > 1024 {
		capHint = 1024
	}
	return &Run{records: make([]Record, 0, capHint), obs: obs}
}

// Append numbers rec, stores it and notifies the observer. It returns false
// when the observer asked to stop; the caller must then Finish with Stopped.
func (r *Run) Append(rec Record) bool {
	rec.Iteration = len(r.records) + 1
	rec.Status = Running
	r.records = append(r.records, rec)
	if r.obs == nil {
		return true
	}
	if err := r.obs(rec); err != nil {
		r.err = err
		return false
	}
	return true
}

// Len returns the number of records appended so far.
func (r *Run) Len() int { return len(r.records) }

// Err returns the error the observer returned, if any.
func (r *Run) Err() error { return r.err }

// Finish stamps status on the last record and builds the Outcome. root is
// used only for Converged.
func (r *Run) Finish(status Status, root float64) Outcome {
	if n := len(r.records); n > 0 {
		r.records[n-1].Status = status
	}
	out := Outcome{Status: status, Records: r.records}
	if status == Converged {
		out.Root, out.HasRoot = root, true
	}
	for i := len(r.records) - 1; i >= 0; i-- {
		if e := r.records[i].Error; finite(e) {
			out.FinalError = e
			break
		}
	}
	return out
}
