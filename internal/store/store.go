package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/lueurxax/forwardlist"
)

// FrontAnchor addresses the position before the first element in the
// index-anchored operations.
const FrontAnchor = -1

// Store manages named sequences. All operations are safe for concurrent use.
type Store interface {
	reader
	writer
	porter
}

type reader interface {
	Keys(ctx context.Context) []string
	ListCount() int
	Snapshot(ctx context.Context, key string) (values []string, revision uint64, err error)
	Equal(ctx context.Context, a, b string) (bool, error)
	Compare(ctx context.Context, a, b string) (int, error)
}

type writer interface {
	Replace(ctx context.Context, key string, values []string) uint64
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, key string) error
	PushFront(ctx context.Context, key, value string) int
	PopFront(ctx context.Context, key string) (string, error)
	InsertAfter(ctx context.Context, key string, after int, value string) (int, error)
	EraseAfter(ctx context.Context, key string, after int) (string, error)
	Swap(ctx context.Context, a, b string) error
	Copy(ctx context.Context, dst, src string) error
}

type porter interface {
	Export(ctx context.Context) map[string][]string
	Restore(ctx context.Context, data map[string][]string)
}

type namedList struct {
	list *forwardlist.List[string]
	rev  uint64
}

type store struct {
	lists map[string]*namedList
	seq   uint64
	mu    sync.RWMutex
}

func (s *store) Keys(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.lists))
	for k := range s.lists {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

func (s *store) ListCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.lists)
}

func (s *store) Snapshot(_ context.Context, key string) ([]string, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nl, ok := s.lists[key]
	if !ok {
		return nil, 0, notFound(key)
	}

	return nl.list.ToSlice(), nl.rev, nil
}

func (s *store) Equal(_ context.Context, a, b string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	la, lb, err := s.pair(a, b)
	if err != nil {
		return false, err
	}

	return forwardlist.Equal(la.list, lb.list), nil
}

func (s *store) Compare(_ context.Context, a, b string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	la, lb, err := s.pair(a, b)
	if err != nil {
		return 0, err
	}

	return forwardlist.Compare(la.list, lb.list), nil
}

// Replace creates or overwrites the list under key and returns its new
// revision. The replacement is built aside and swapped in.
func (s *store) Replace(_ context.Context, key string, values []string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	nl := s.ensure(key)
	nl.list.Swap(forwardlist.Of(values...))
	nl.rev = s.next()

	return nl.rev
}

func (s *store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[key]; !ok {
		return notFound(key)
	}

	delete(s.lists, key)

	return nil
}

func (s *store) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	nl, ok := s.lists[key]
	if !ok {
		return notFound(key)
	}

	nl.list.Clear()
	nl.rev = s.next()

	return nil
}

// PushFront prepends value, creating the list when key is new, and returns
// the resulting length.
func (s *store) PushFront(_ context.Context, key, value string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	nl := s.ensure(key)
	nl.list.PushFront(value)
	nl.rev = s.next()

	return nl.list.Len()
}

func (s *store) PopFront(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nl, ok := s.lists[key]
	if !ok {
		return "", notFound(key)
	}

	if nl.list.IsEmpty() {
		return "", ErrEmptyList
	}

	v := nl.list.PopFront()
	nl.rev = s.next()

	return v, nil
}

// InsertAfter inserts value after the element at index after, with
// FrontAnchor addressing the position before the first element. A missing
// list is created when inserting at the front. It returns the resulting
// length.
func (s *store) InsertAfter(_ context.Context, key string, after int, value string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nl, ok := s.lists[key]
	if !ok {
		if after != FrontAnchor {
			return 0, notFound(key)
		}

		nl = s.ensure(key)
	}

	pos, err := anchor(nl.list, after)
	if err != nil {
		return 0, err
	}

	nl.list.InsertAfter(pos, value)
	nl.rev = s.next()

	return nl.list.Len(), nil
}

// EraseAfter removes the element after the one at index after and returns the
// removed value.
func (s *store) EraseAfter(_ context.Context, key string, after int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nl, ok := s.lists[key]
	if !ok {
		return "", notFound(key)
	}

	pos, err := anchor(nl.list, after)
	if err != nil {
		return "", err
	}

	victim := pos.Next()
	if victim == nl.list.End() {
		return "", ErrIndexOutOfRange
	}

	removed := victim.Value()
	nl.list.EraseAfter(pos)
	nl.rev = s.next()

	return removed, nil
}

// Swap exchanges the contents of two lists without copying nodes.
func (s *store) Swap(_ context.Context, a, b string) error {
	if a == b {
		return ErrSameList
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	la, lb, err := s.pair(a, b)
	if err != nil {
		return err
	}

	la.list.Swap(lb.list)
	la.rev = s.next()
	lb.rev = s.next()

	return nil
}

// Copy replaces the list under dst with a copy of the list under src,
// creating dst when missing.
func (s *store) Copy(_ context.Context, dst, src string) error {
	if dst == src {
		return ErrSameList
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ls, ok := s.lists[src]
	if !ok {
		return notFound(src)
	}

	ld := s.ensure(dst)
	ld.list.Assign(ls.list)
	ld.rev = s.next()

	return nil
}

func (s *store) Export(_ context.Context) map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]string, len(s.lists))
	for k, nl := range s.lists {
		out[k] = nl.list.ToSlice()
	}

	return out
}

func (s *store) Restore(_ context.Context, data map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists = make(map[string]*namedList, len(data))
	for k, values := range data {
		s.lists[k] = &namedList{list: forwardlist.Of(values...), rev: s.next()}
	}
}

// next returns a fresh store-wide revision. A revision is never reused, even
// when a key is deleted and created again. Callers must hold the write lock.
func (s *store) next() uint64 {
	s.seq++
	return s.seq
}

// ensure returns the list under key, creating an empty one when missing.
// Callers must hold the write lock.
func (s *store) ensure(key string) *namedList {
	nl := s.lists[key]
	if nl == nil {
		nl = &namedList{list: forwardlist.New[string]()}
		s.lists[key] = nl
	}

	return nl
}

// pair looks up two lists at once. Callers must hold at least the read lock.
func (s *store) pair(a, b string) (*namedList, *namedList, error) {
	la, ok := s.lists[a]
	if !ok {
		return nil, nil, notFound(a)
	}

	lb, ok := s.lists[b]
	if !ok {
		return nil, nil, notFound(b)
	}

	return la, lb, nil
}

// anchor walks to the element at index after, with FrontAnchor addressing
// the position before the first element.
func anchor(l *forwardlist.List[string], after int) (forwardlist.Iterator[string], error) {
	if after < FrontAnchor {
		return forwardlist.Iterator[string]{}, ErrIndexOutOfRange
	}

	pos := l.BeforeBegin()
	for i := FrontAnchor; i < after; i++ {
		pos = pos.Next()
		if pos == l.End() {
			return forwardlist.Iterator[string]{}, ErrIndexOutOfRange
		}
	}

	return pos, nil
}

func notFound(key string) error {
	return fmt.Errorf("%q: %w", key, ErrListNotFound)
}

func NewStore() Store {
	return &store{lists: map[string]*namedList{}}
}
