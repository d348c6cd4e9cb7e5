// Package options implements the functional option pattern shared by the codec and
// frame configuration types.
package options

// Option configures a target of type T. It is satisfied by *Func[T].
type Option[T any] interface {
	apply(T) error
}

// Func wraps a configuration function as an Option.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New returns an option that may reject the target configuration.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError returns an option that always succeeds.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
