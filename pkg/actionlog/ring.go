package actionlog

// ring is a fixed-capacity FIFO of entries. When full, push evicts the
// oldest entry so the buffer always holds the most recent executions.
// Not safe for concurrent use; the service guards it with its own mutex.
type ring struct {
	buf   []Entry
	head  int
	count int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]Entry, capacity)}
}

// push appends e. Reports whether an older entry was evicted to make room.
func (r *ring) push(e Entry) bool {
	if r.count < len(r.buf) {
		r.buf[(r.head+r.count)%len(r.buf)] = e
		r.count++
		return false
	}
	r.buf[r.head] = e
	r.head = (r.head + 1) % len(r.buf)
	return true
}

// pop removes and returns the oldest entry.
func (r *ring) pop() (Entry, bool) {
	if r.count == 0 {
		return Entry{}, false
	}
	e := r.buf[r.head]
	r.buf[r.head] = Entry{}
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return e, true
}

func (r *ring) len() int {
	return r.count
}
