package arena

// Rebind creates an Arena for element type U that reserves as many slots as
// a currently does. The new arena owns a fresh heap block, starts with no
// used slots and inherits a's logger. Options are applied after the seeded
// capacity and logger. Rebinding a released arena panics.
func Rebind[U, T any](a *Arena[T], opts ...Option) (*Arena[U], error) {
	return New[U](rebindOptions(a, opts)...)
}

// RebindWithSource is like Rebind but takes blocks from src.
func RebindWithSource[U, T any](a *Arena[T], src Source[U], opts ...Option) (*Arena[U], error) {
	return NewWithSource(src, rebindOptions(a, opts)...)
}

func rebindOptions[T any](a *Arena[T], opts []Option) []Option {
	a.panicIfReleased()
	seeded := make([]Option, 0, len(opts)+2)
	seeded = append(seeded, WithCapacity(a.Capacity()), WithLogger(a.logger))
	return append(seeded, opts...)
}
