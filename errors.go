package arena

import "github.com/cockroachdb/errors"

var (
	// ErrOwnershipViolation is returned when a range handed to Deallocate or
	// Resolve does not lie inside a block owned by the arena.
	ErrOwnershipViolation = errors.New("arena: range not owned by allocator")

	// ErrOutOfBounds is an alias of ErrOwnershipViolation.
	ErrOutOfBounds = ErrOwnershipViolation

	// ErrInvalidGrowth reports a growth request whose new capacity would not
	// exceed the number of used slots. It always carries an assertion failure.
	ErrInvalidGrowth = errors.New("arena: invalid growth")

	// ErrAllocationFailure is returned when a block source cannot provide
	// the requested raw storage.
	ErrAllocationFailure = errors.New("arena: allocation failure")

	// ErrUnsupportedType is returned by NewMmapSource for element types that
	// contain Go pointers.
	ErrUnsupportedType = errors.New("arena: element type not supported by source")

	// ErrUnsupportedPlatform is returned by sources that are unavailable on
	// the running platform.
	ErrUnsupportedPlatform = errors.New("arena: source not supported on this platform")
)

// invalidGrowth builds the assertion error for a capacity that cannot hold
// the used slots.
func invalidGrowth(newCap, used int) error {
	return errors.Mark(
		errors.AssertionFailedf("arena: new capacity %d does not exceed used %d", newCap, used),
		ErrInvalidGrowth,
	)
}

// allocationFailure marks err (which may be nil) as an allocation failure.
func allocationFailure(err error, format string, args ...interface{}) error {
	if err == nil {
		return errors.Wrapf(ErrAllocationFailure, format, args...)
	}
	return errors.Mark(errors.Wrapf(err, format, args...), ErrAllocationFailure)
}
