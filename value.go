package taginput

import "strings"

// Value is the accumulated value of one tag within a single parse pass.
// It is either a String or a List. ModeArray keeps a lone occurrence as a
// String and only promotes to a List on the second occurrence; consumers
// that always want a slice should call Strings.
type Value interface{ isValue() }

// String is a scalar tag value.
type String string

func (String) isValue() {}

// List is a tag value that accumulated more than one occurrence under
// ModeArray.
type List []string

func (List) isValue() {}

// Strings returns the value as a slice regardless of shape. A nil Value
// yields nil.
func Strings(v Value) []string {
	switch v := v.(type) {
	case String:
		return []string{string(v)}
	case List:
		return v
	}
	return nil
}

// merge folds a newly observed occurrence into the prior accumulated value
// according to the descriptor's mode. A ModeDefault mode must be resolved
// by the caller before reaching here; it behaves as ModeOverwrite.
func merge(mode Mode, prior Value, next, sep string) Value {
	switch mode {
	case ModeArray:
		switch prior := prior.(type) {
		case nil:
			return String(next)
		case String:
			return List{string(prior), next}
		case List:
			return append(prior, next)
		}
	case ModeJoin:
		switch prior := prior.(type) {
		case nil:
			return String(next)
		case String:
			return String(string(prior) + sep + next)
		case List:
			// A prior List under ModeJoin cannot arise within one parse
			// pass, where a tag's mode is fixed. Flatten rather than panic.
			return String(strings.Join(prior, sep) + sep + next)
		}
	}
	return String(next)
}

func valueEqual(a, b Value) bool {
	switch a := a.(type) {
	case String:
		b, ok := b.(String)
		return ok && a == b
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}
