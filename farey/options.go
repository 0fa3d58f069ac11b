package farey

import "golang.org/x/exp/constraints"

// Option configures a search via functional arguments.
type Option[T constraints.Unsigned] func(*Options[T])

// Options holds the callbacks that customize a search.
type Options[T constraints.Unsigned] struct {
	// OnRound is called after every squeeze round with the refined bracket.
	// round starts at 1. It is not called when the target is exactly
	// representable, because no search takes place.
	OnRound func(round int, lower, upper Fraction[T])
}

// DefaultOptions returns Options with a no-op OnRound hook.
func DefaultOptions[T constraints.Unsigned]() Options[T] {
	return Options[T]{
		OnRound: func(int, Fraction[T], Fraction[T]) {},
	}
}

// WithOnRound registers a callback run after every squeeze round.
// A nil fn is ignored.
func WithOnRound[T constraints.Unsigned](fn func(round int, lower, upper Fraction[T])) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

func resolveOptions[T constraints.Unsigned](opts []Option[T]) Options[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
