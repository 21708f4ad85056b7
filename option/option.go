// Package option provides an optional value: Some(A) or None.
//
// It exists as a conversion source for the effect layer; only the
// combinators that conversion needs are provided.
package option

// Option holds a value of type A or nothing.
// The zero value is None.
type Option[A any] struct {
	value A
	some  bool
}

// Some wraps a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, some: true}
}

// None is the absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPtr wraps a non-nil pointer's target, nil becomes None.
func FromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

func (o Option[A]) IsSome() bool { return o.some }
func (o Option[A]) IsNone() bool { return !o.some }

// Get returns the value; ok reports whether o is Some.
func (o Option[A]) Get() (a A, ok bool) {
	return o.value, o.some
}

// Fold collapses the Option by applying exactly one of the two handlers.
func Fold[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Map transforms a present value; None passes through.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.some {
		return None[B]()
	}
	return Some(f(o.value))
}

// GetOrElse extracts the value, computing a default when absent.
func GetOrElse[A any](o Option[A], onNone func() A) A {
	if o.some {
		return o.value
	}
	return onNone()
}
