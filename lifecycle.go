package arena

// Destroyer is implemented by element types that own resources needing
// explicit teardown. Slots that were never constructed, and slots whose
// value has been moved out, hold the zero value, so Destroy must accept it.
type Destroyer interface {
	Destroy()
}

// Construct places v in the slot at p.
func Construct[T any](p *T, v T) {
	*p = v
}

// Destroy runs the Destroyer hook of the value at p, if any, and resets the
// slot to the zero value.
func Destroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

// Move relocates the value at src into dst and leaves src in the moved-from
// (zero) state. Destroying src afterwards never touches what dst now owns.
func Move[T any](dst, src *T) {
	*dst = *src
	var zero T
	*src = zero
}

// destroyAll destroys every slot of s in index order.
func destroyAll[T any](s []T) {
	for i := range s {
		Destroy(&s[i])
	}
}
