package output

// Progress is the handle passed to the function run by [Formatter.Progress].
//
// Only the entry message is reported today. Advance records increments so
// that per-step reporting can be added without changing callers.
type Progress struct {
	description string
	total       int
	completed   int
	closed      bool
}

// Description returns the operation description.
func (p *Progress) Description() string {
	return p.description
}

// Total returns the expected number of steps; zero means unknown.
func (p *Progress) Total() int {
	return p.total
}

// Completed returns the number of steps recorded with Advance.
func (p *Progress) Completed() int {
	return p.completed
}

// Advance records n completed steps. Calls after the scope has ended are
// ignored.
func (p *Progress) Advance(n int) {
	if p.closed || n <= 0 {
		return
	}
	p.completed += n
}

// Closed reports whether the scope has ended.
func (p *Progress) Closed() bool {
	return p.closed
}

func (p *Progress) release() {
	p.closed = true
}

// Progress runs fn inside a progress scope. On entry text mode prints the
// description; JSON mode is silent. The scope is released when fn returns,
// returns an error, or panics. Nothing is printed on exit.
func (f *Formatter) Progress(description string, total int, fn func(*Progress) error) error {
	p := &Progress{description: description, total: total}
	defer p.release()

	if !f.json {
		f.printf("%s %s\n", f.styles.info.Sprint(f.symbols.Arrow), description)
	}

	return fn(p)
}
