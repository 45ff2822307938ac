// asterix/reporter.go
package asterix

// errorList accumulates classified errors for one record under a budget.
// Recoverable errors attach and decoding continues; exhausting the budget
// (or the stop-on-first policy) turns into an unrecoverable abort so a
// pathological record cannot degenerate into unbounded error churn.
type errorList struct {
	errs        []*DecodeError
	counted     int // errors added through add; warnings are not counted
	max         int
	stopOnFirst bool
}

func newErrorList(max int, stopOnFirst bool) *errorList {
	return &errorList{max: max, stopOnFirst: stopOnFirst}
}

// add appends an error. The returned error is nil while the record may
// continue; otherwise it is the unrecoverable budget violation.
func (l *errorList) add(e *DecodeError) *DecodeError {
	l.errs = append(l.errs, e)
	l.counted++
	if l.stopOnFirst {
		return &DecodeError{
			Kind:          ErrTooManyErrors,
			Category:      e.Category,
			ByteOffset:    e.ByteOffset,
			Message:       "stop-on-first-error policy",
			unrecoverable: true,
		}
	}
	if l.counted >= l.max {
		return &DecodeError{
			Kind:          ErrTooManyErrors,
			Category:      e.Category,
			ByteOffset:    e.ByteOffset,
			Message:       "too many errors in one record",
			unrecoverable: true,
		}
	}
	return nil
}

// warn appends a diagnostic that does not count against the budget
func (l *errorList) warn(e *DecodeError) {
	l.errs = append(l.errs, e)
}
