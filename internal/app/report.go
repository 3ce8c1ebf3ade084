package app

// repeatFilter suppresses an error that is returned again on every tick.
type repeatFilter struct {
	last string
}

// Changed reports whether err differs from the previous one. A nil error
// resets the filter.
func (f *repeatFilter) Changed(err error) bool {
	if err == nil {
		f.last = ""
		return false
	}
	msg := err.Error()
	if msg == f.last {
		return false
	}
	f.last = msg
	return true
}
