package main

import (
	"regexp"
	"strings"
)

// registerStringCommands wires spec.md §4.3's pure string operators; the
// polymorphic ones (`%`,`/`,`:`,`a`,`F`) are registered alongside their
// numeric counterpart in commands_arith.go.
func registerStringCommands() {
	register('J', func(vm *VM) error {
		s := vm.store.Active()
		b := s.Pop()
		a := s.Pop()
		bs, ok := b.RawString()
		if !ok {
			return errTypeMismatch
		}
		as, ok := a.RawString()
		if !ok {
			return errTypeMismatch
		}
		s.Push(Str(as + bs))
		return nil
	})
	register('£', func(vm *VM) error {
		s := vm.store.Active()
		parts := make([]string, s.Len())
		for i, v := range s.vals {
			parts[len(parts)-1-i] = v.String()
		}
		s.Clear()
		s.Push(Str(strings.Join(parts, " ")))
		return nil
	})
	register('€', func(vm *VM) error {
		s := vm.store.Active()
		v := s.Pop()
		str, ok := v.RawString()
		if !ok {
			return errTypeMismatch
		}
		runes := []rune(str)
		for i := len(runes) - 1; i >= 0; i-- {
			s.Push(Str(string(runes[i])))
		}
		return nil
	})
}

// pushFieldsReversed splits str on whitespace and pushes the fields so the
// first token ends on top.
func pushFieldsReversed(s *Stack, str string) {
	fields := strings.Fields(str)
	for i := len(fields) - 1; i >= 0; i-- {
		s.Push(Str(fields[i]))
	}
}

// pushSplitReversed splits target on sep and pushes the parts so the first
// one ends on top.
func pushSplitReversed(s *Stack, target, sep string) {
	var parts []string
	if sep == "" {
		parts = strings.Split(target, "")
	} else {
		parts = strings.Split(target, sep)
	}
	for i := len(parts) - 1; i >= 0; i-- {
		s.Push(Str(parts[i]))
	}
}

// compileRegexp compiles pattern, classifying a failure as RegexSyntax (see
// errorKindOf) rather than the default IOError.
func compileRegexp(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, regexpError{err}
	}
	return re, nil
}
