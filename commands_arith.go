package main

import "math/big"

// popNumeric pops the active stack's top value, requiring it coerce to a
// number. No handler calls it; the handlers below pop their operands
// directly.
func popNumeric(vm *VM) (Value, error) {
	v := vm.store.Active().Pop()
	if !isNumeric(v.Kind()) {
		if _, ok := v.AsFloat(); !ok {
			return Value{}, errTypeMismatch
		}
	}
	return v, nil
}

// registerArithCommands wires spec.md §4.3's arithmetic, bitwise, compare,
// and cast operators, including the handful (`%`,`/`,`:`,`a`,`F`) that are
// polymorphic between a numeric and a string-operation reading, dispatched
// on the popped operand's Kind.
func registerArithCommands() {
	register('+', func(vm *VM) error {
		s := vm.store.Active()
		b, a := s.Pop(), s.Pop()
		s.Push(a.Add(b))
		return nil
	})
	register('-', cmdMinusOrSplit)
	register('*', func(vm *VM) error {
		s := vm.store.Active()
		b, a := s.Pop(), s.Pop()
		s.Push(a.Mul(b))
		return nil
	})
	register('%', cmdModOrReplace)
	register('/', cmdDivOrRegexCount)
	register(':', cmdFloatDivOrSplit)
	register('F', cmdPowOrIndex)

	register('«', func(vm *VM) error {
		s := vm.store.Active()
		b, a := s.Pop(), s.Pop()
		s.Push(a.ShiftLeft(b))
		return nil
	})
	register('»', func(vm *VM) error {
		s := vm.store.Active()
		b, a := s.Pop(), s.Pop()
		s.Push(a.ShiftRight(b))
		return nil
	})
	register('A', func(vm *VM) error {
		s := vm.store.Active()
		b, a := s.Pop(), s.Pop()
		s.Push(a.BitAnd(b))
		return nil
	})
	register('V', func(vm *VM) error {
		s := vm.store.Active()
		b, a := s.Pop(), s.Pop()
		s.Push(a.BitOr(b))
		return nil
	})
	register('H', func(vm *VM) error {
		s := vm.store.Active()
		b, a := s.Pop(), s.Pop()
		s.Push(a.BitXor(b))
		return nil
	})
	register('a', cmdBitNotOrRegexAll)

	register('!', func(vm *VM) error {
		s := vm.store.Active()
		s.Push(s.Pop().Not())
		return nil
	})
	register('~', func(vm *VM) error {
		s := vm.store.Active()
		s.Push(s.Pop().Invert())
		return nil
	})
	register('y', func(vm *VM) error {
		s := vm.store.Active()
		s.Push(s.Pop().Sign())
		return nil
	})
	register('±', func(vm *VM) error {
		s := vm.store.Active()
		s.Push(s.Pop().Abs())
		return nil
	})
	register('I', func(vm *VM) error {
		s := vm.store.Active()
		s.Push(s.Pop().Inc())
		return nil
	})
	register('D', func(vm *VM) error {
		s := vm.store.Active()
		s.Push(s.Pop().Dec())
		return nil
	})

	register('=', func(vm *VM) error {
		s := vm.store.Active()
		b, a := s.Pop(), s.Pop()
		s.Push(Bool(a.Equal(b)))
		return nil
	})
	register('m', func(vm *VM) error {
		s := vm.store.Active()
		b, a := s.Pop(), s.Pop()
		s.Push(Bool(a.Compare(b) > 0))
		return nil
	})
	register('w', func(vm *VM) error {
		s := vm.store.Active()
		b, a := s.Pop(), s.Pop()
		s.Push(Bool(a.Compare(b) <= 0))
		return nil
	})

	register('i', func(vm *VM) error {
		s := vm.store.Active()
		s.Push(s.Pop().ToInteger())
		return nil
	})
	register('f', func(vm *VM) error {
		s := vm.store.Active()
		s.Push(s.Pop().ToFloat())
		return nil
	})
	register('b', func(vm *VM) error {
		s := vm.store.Active()
		s.Push(s.Pop().ToBoolean())
		return nil
	})
	register('∑', func(vm *VM) error {
		s := vm.store.Active()
		s.Push(Str(s.Pop().String()))
		return nil
	})
	register('c', func(vm *VM) error {
		s := vm.store.Active()
		v := s.Pop()
		n, ok := v.AsInt()
		if !ok || !n.IsInt64() || !isValidScalar(n.Int64()) {
			s.Push(Str("�"))
			return nil
		}
		s.Push(Str(string(rune(n.Int64()))))
		return nil
	})
	register('o', func(vm *VM) error {
		s := vm.store.Active()
		v := s.Pop()
		str, _ := v.RawString()
		runes := []rune(str)
		if len(runes) == 0 {
			s.Push(zeroInt())
			return nil
		}
		s.Push(IntFromInt64(int64(runes[0])))
		return nil
	})
}

func isValidScalar(n int64) bool {
	if n < 0 || n > 0x10FFFF {
		return false
	}
	if n >= 0xD800 && n <= 0xDFFF { // surrogate range: not a scalar value
		return false
	}
	return true
}

// cmdMinusOrSplit implements `-`: numeric subtraction, or (when the popped
// top is a String) splitting it on whitespace with the first token ending
// on top.
func cmdMinusOrSplit(vm *VM) error {
	s := vm.store.Active()
	b := s.Pop()
	if str, ok := b.RawString(); ok {
		pushFieldsReversed(s, str)
		return nil
	}
	a := s.Pop()
	s.Push(a.Sub(b))
	return nil
}

// cmdModOrReplace implements `%`: Integer/Float remainder, or (when the
// popped top is a String) a three-operand regex replace: replacement,
// pattern, target.
func cmdModOrReplace(vm *VM) error {
	s := vm.store.Active()
	x := s.Pop()
	if replacement, ok := x.RawString(); ok {
		patternV := s.Pop()
		pattern, ok := patternV.RawString()
		if !ok {
			return errTypeMismatch
		}
		targetV := s.Pop()
		target, ok := targetV.RawString()
		if !ok {
			return errTypeMismatch
		}
		re, err := compileRegexp(pattern)
		if err != nil {
			return err
		}
		s.Push(Str(re.ReplaceAllString(target, replacement)))
		return nil
	}
	a := s.Pop()
	v, err := a.Mod(x)
	if err != nil {
		return err
	}
	s.Push(v)
	return nil
}

// cmdDivOrRegexCount implements `/`: floor division, or (when the popped top
// is a String pattern) the count of regex matches against the next String.
func cmdDivOrRegexCount(vm *VM) error {
	s := vm.store.Active()
	x := s.Pop()
	if pattern, ok := x.RawString(); ok {
		targetV := s.Pop()
		target, ok := targetV.RawString()
		if !ok {
			return errTypeMismatch
		}
		re, err := compileRegexp(pattern)
		if err != nil {
			return err
		}
		s.Push(IntFromInt64(int64(len(re.FindAllString(target, -1)))))
		return nil
	}
	a := s.Pop()
	v, err := a.FloorDiv(x)
	if err != nil {
		return err
	}
	s.Push(v)
	return nil
}

// cmdFloatDivOrSplit implements `:`: float division, or (when the popped top
// is a String separator) splitting the next String on it, first token on
// top.
func cmdFloatDivOrSplit(vm *VM) error {
	s := vm.store.Active()
	x := s.Pop()
	if sep, ok := x.RawString(); ok {
		targetV := s.Pop()
		target, ok := targetV.RawString()
		if !ok {
			return errTypeMismatch
		}
		pushSplitReversed(s, target, sep)
		return nil
	}
	a := s.Pop()
	v, err := a.FloatDiv(x)
	if err != nil {
		return err
	}
	s.Push(v)
	return nil
}

// cmdPowOrIndex implements `F`: exponentiation, or (when the popped top is
// an Integer and the next value is a String) string indexing.
func cmdPowOrIndex(vm *VM) error {
	s := vm.store.Active()
	b := s.Pop()
	if idx, ok := b.AsInt(); ok && b.Kind() == KindInteger && s.Len() > 0 {
		if str, ok := s.Peek().RawString(); ok {
			s.Pop()
			return pushStringIndex(s, str, idx)
		}
	}
	a := s.Pop()
	s.Push(a.Pow(b))
	return nil
}

// cmdBitNotOrRegexAll implements `a`: bitwise NOT, or (when the popped top
// is a String pattern) all regex matches against the next String, first
// match on top.
func cmdBitNotOrRegexAll(vm *VM) error {
	s := vm.store.Active()
	x := s.Pop()
	if pattern, ok := x.RawString(); ok {
		targetV := s.Pop()
		target, ok := targetV.RawString()
		if !ok {
			return errTypeMismatch
		}
		re, err := compileRegexp(pattern)
		if err != nil {
			return err
		}
		matches := re.FindAllString(target, -1)
		for i := len(matches) - 1; i >= 0; i-- {
			s.Push(Str(matches[i]))
		}
		return nil
	}
	s.Push(x.BitNot())
	return nil
}

func pushStringIndex(s *Stack, str string, idx *big.Int) error {
	if !idx.IsInt64() {
		return errIndexOutOfRng
	}
	runes := []rune(str)
	i := idx.Int64()
	if i < 0 || i >= int64(len(runes)) {
		return errIndexOutOfRng
	}
	s.Push(Str(string(runes[i])))
	return nil
}
