package main

// Store is the stack family of spec.md §3: a mapping from signed integer
// index to Stack, plus an active index. Indices not yet touched logically
// exist as empty, non-sticky stacks; Store lazily allocates one on first
// touch, the same lazy-allocate-on-first-touch idea gothird's
// internal/mem.PagedCore uses for byte pages (see DESIGN.md for why the
// paging logic itself wasn't carried — Store has no linear address space
// to page).
type Store struct {
	stacks map[int]*Stack
	active int
}

// NewStore returns a Store with active index 0.
func NewStore() *Store { return &Store{stacks: make(map[int]*Stack)} }

// Active returns the currently active stack, allocating it if this is its
// first touch.
func (st *Store) Active() *Stack { return st.At(st.active) }

// ActiveIndex returns the active stack's index.
func (st *Store) ActiveIndex() int { return st.active }

// At returns the stack at index i, allocating it if this is its first
// touch.
func (st *Store) At(i int) *Stack {
	s, ok := st.stacks[i]
	if !ok {
		s = &Stack{}
		st.stacks[i] = s
	}
	return s
}

// SetActive moves the active index by delta (±1), per `(`/`)`.
func (st *Store) SetActive(delta int) { st.active += delta }

// MoveToNeighbor implements `{`/`}`: pop from active, push to the
// neighboring stack, without moving the active index.
func (st *Store) MoveToNeighbor(delta int) {
	v := st.Active().Pop()
	st.At(st.active + delta).Push(v)
}

// ShiftAndMove implements `[`/`]`: pop from active, move active by delta,
// then push onto the new active stack.
func (st *Store) ShiftAndMove(delta int) {
	v := st.Active().Pop()
	st.SetActive(delta)
	st.Active().Push(v)
}
