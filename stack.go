package main

import "math/big"

// Stack is an ordered sequence of Values with a top end, as spec.md §3
// describes, grounded on the ><> ("Fish") Stack in
// other_examples/...go-fish__fish.go.go (Reverse/SwapTwo/SwapThree/Register).
type Stack struct {
	vals   []Value
	sticky bool
}

// Push appends a Value to the top of the stack.
func (s *Stack) Push(v Value) { s.vals = append(s.vals, v) }

// Pop removes and returns the top Value, unless the stack is sticky in
// which case the top is left in place. An empty stack yields Integer 0
// (spec.md §3's universal underflow default).
func (s *Stack) Pop() Value {
	if len(s.vals) == 0 {
		return zeroInt()
	}
	top := s.vals[len(s.vals)-1]
	if !s.sticky {
		s.vals = s.vals[:len(s.vals)-1]
	}
	return top
}

// Peek returns the top Value without popping, or Integer 0 if empty.
func (s *Stack) Peek() Value {
	if len(s.vals) == 0 {
		return zeroInt()
	}
	return s.vals[len(s.vals)-1]
}

// Len reports the number of elements on the stack.
func (s *Stack) Len() int { return len(s.vals) }

// SetSticky implements `k`/`K`.
func (s *Stack) SetSticky(sticky bool) { s.sticky = sticky }

// Sticky reports the stack's sticky flag.
func (s *Stack) Sticky() bool { return s.sticky }

// Clear implements `ø`.
func (s *Stack) Clear() { s.vals = s.vals[:0] }

// Swap implements the two-element swap.
func (s *Stack) Swap() {
	if n := len(s.vals); n >= 2 {
		s.vals[n-1], s.vals[n-2] = s.vals[n-2], s.vals[n-1]
	}
}

// Dup duplicates the top element.
func (s *Stack) Dup() {
	if n := len(s.vals); n > 0 {
		s.vals = append(s.vals, s.vals[n-1])
	} else {
		s.vals = append(s.vals, zeroInt())
	}
}

// Head drops all but the top element.
func (s *Stack) Head() {
	if n := len(s.vals); n > 0 {
		s.vals[0] = s.vals[n-1]
		s.vals = s.vals[:1]
	}
}

// Reverse reverses the whole stack in place.
func (s *Stack) Reverse() {
	for i, j := 0, len(s.vals)-1; i < j; i, j = i+1, j-1 {
		s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
	}
}

// RotateBottomToTop implements `Q`: moves the bottom element to the top.
func (s *Stack) RotateBottomToTop() {
	if n := len(s.vals); n > 1 {
		bottom := s.vals[0]
		copy(s.vals, s.vals[1:])
		s.vals[n-1] = bottom
	}
}

// RotateTopToBottom implements `q`: moves the top element to the bottom.
func (s *Stack) RotateTopToBottom() {
	if n := len(s.vals); n > 1 {
		top := s.vals[n-1]
		copy(s.vals[1:], s.vals[:n-1])
		s.vals[0] = top
	}
}

// Shuffle implements `Y`: randomizes the order of elements using rng.
func (s *Stack) Shuffle(rng randIntn) {
	for i := len(s.vals) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
	}
}

// randIntn is the minimal surface Shuffle needs from *rand.Rand, so tests
// can supply a deterministic fake without touching the global generator.
type randIntn interface{ Intn(n int) int }

// SortAsc implements `g`: sorts ascending.
func (s *Stack) SortAsc() { s.sort(false) }

// SortDesc implements `G`: sorts descending.
func (s *Stack) SortDesc() { s.sort(true) }

func (s *Stack) sort(desc bool) {
	vals := s.vals
	// insertion sort: stacks in these programs are small, and a stable,
	// dependency-free sort keeps Value's Compare the single source of order.
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i - 1
		for j >= 0 {
			cmp := vals[j].Compare(v)
			if desc {
				cmp = -cmp
			}
			if cmp <= 0 {
				break
			}
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = v
	}
}

// Contains implements `C`.
func (s *Stack) Contains(v Value) bool {
	for _, x := range s.vals {
		if x.Equal(v) {
			return true
		}
	}
	return false
}

// MultiplyByTop implements `×`: k := pop() coerced to int; if 0 <= k <= 1<<20
// the stack becomes itself repeated k times bottom-to-top. A negative k
// leaves the stack as it is; a k above 1<<20 raises TypeMismatch.
func (s *Stack) MultiplyByTop() error {
	top := s.Pop()
	k, ok := top.AsInt()
	if !ok {
		return errTypeMismatch
	}
	if k.Sign() < 0 {
		return nil
	}
	if !k.IsInt64() || k.Int64() > 1<<20 {
		return errTypeMismatch
	}
	n := int(k.Int64())
	orig := make([]Value, len(s.vals))
	copy(orig, s.vals)
	out := make([]Value, 0, len(orig)*n)
	for i := 0; i < n; i++ {
		out = append(out, orig...)
	}
	s.vals = out
	return nil
}

// pushRange implements the shared body of `z`/`Z`: counts from n down to 1
// (or up to n) depending on countUp, leaving the stack's natural order
// so that the spec's documented "top" element lands correctly.
func pushRange(s *Stack, n *big.Int, countUp bool) {
	one := big.NewInt(1)
	if n.Sign() == 0 {
		return
	}
	if n.Sign() > 0 {
		if countUp {
			// 1,...,n with n on top
			for i := big.NewInt(1); i.Cmp(n) <= 0; i.Add(i, one) {
				s.Push(Int(new(big.Int).Set(i)))
			}
		} else {
			// n, n-1, ..., 1 with 1 on top
			for i := new(big.Int).Set(n); i.Sign() > 0; i.Sub(i, one) {
				s.Push(Int(new(big.Int).Set(i)))
			}
		}
		return
	}
	if countUp {
		// -1,...,n with n on top (n negative): counting down from -1 to n
		for i := big.NewInt(-1); i.Cmp(n) >= 0; i.Sub(i, one) {
			s.Push(Int(new(big.Int).Set(i)))
		}
	} else {
		// n, n+1, ..., -1 with -1 on top
		for i := new(big.Int).Set(n); i.Sign() < 0; i.Add(i, one) {
			s.Push(Int(new(big.Int).Set(i)))
		}
	}
}
