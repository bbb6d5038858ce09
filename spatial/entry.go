// Package spatial indexes position-tagged records by integer cell coordinate.
//
// Records live in typed pools and are referred to by Handle. Every record
// carries an Entry (its position plus an intrusive link) that the Hash chains
// into singly-linked buckets, so a bucket walk never allocates and a handle
// always resolves back to its owning record.
package spatial

// Handle identifies a position entry within its store. The zero Handle is Nil.
type Handle int32

// Nil is the absent handle.
const Nil Handle = 0

// Entry is the intrusive position header of an indexed record.
type Entry struct {
	x, y int32
	next Handle
}

// Pos returns the world coordinate of the entry.
func (e *Entry) Pos() (x, y int) {
	return int(e.x), int(e.y)
}

// Next returns the following entry of the list the entry is chained into.
func (e *Entry) Next() Handle {
	return e.next
}

func (e *Entry) set(x, y int) {
	e.x = int32(x)
	e.y = int32(y)
}

// Entries resolves handles to their entries.
type Entries interface {
	Entry(h Handle) *Entry
}

// List is a singly-linked list of entries chained through Entry.next. An
// entry can be on at most one list (a hash bucket, a free-list, a container)
// at a time.
type List struct {
	head Handle
}

// First returns the head of the list.
func (l *List) First() Handle { return l.head }

// Empty reports whether the list has no entries.
func (l *List) Empty() bool { return l.head == Nil }

// Push inserts h at the head.
func (l *List) Push(store Entries, h Handle) {
	store.Entry(h).next = l.head
	l.head = h
}

// Pop removes and returns the head, or Nil when empty.
func (l *List) Pop(store Entries) Handle {
	h := l.head
	if h == Nil {
		return Nil
	}
	e := store.Entry(h)
	l.head = e.next
	e.next = Nil
	return h
}

// Remove unlinks h and reports whether it was found.
func (l *List) Remove(store Entries, h Handle) bool {
	if l.head == Nil {
		return false
	}
	if l.head == h {
		l.Pop(store)
		return true
	}
	prev := store.Entry(l.head)
	for cur := prev.next; cur != Nil; cur = prev.next {
		if cur == h {
			e := store.Entry(cur)
			prev.next = e.next
			e.next = Nil
			return true
		}
		prev = store.Entry(cur)
	}
	return false
}

// Len counts the entries of the list.
func (l *List) Len(store Entries) int {
	n := 0
	for h := l.head; h != Nil; h = store.Entry(h).next {
		n++
	}
	return n
}

// Each calls fn for every entry until fn returns false.
func (l *List) Each(store Entries, fn func(h Handle) bool) {
	for h := l.head; h != Nil; {
		next := store.Entry(h).next
		if !fn(h) {
			return
		}
		h = next
	}
}
