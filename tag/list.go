package tag

// List is an ordered sequence of tags intended to share one variant. The
// invariant is enforced at encode time (codec.WriteRoot and friends), not
// here, so that a List can be built up incrementally through intermediate
// states without tripping a panic; the cost of that leniency is that a
// hand-assembled heterogeneous List only surfaces as an error when it is
// actually written.
type List struct {
	ElemType Type
	Elems    []Tag
}

// NewList returns an empty List with the given declared element type.
// ElemType records what a decoded list's wire byte was, or what a caller
// intends to fill the list with; it has no effect on encode, where an
// empty list always writes the END id and a non-empty list derives its
// element id from its first element.
func NewList(elemType Type) *List {
	return &List{ElemType: elemType}
}

// Type implements Tag.
func (*List) Type() Type { return TypeList }

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.Elems)
}

// Append adds value to the end of the list. It does not check value's type
// against ElemType; homogeneity is validated once, at encode time.
func (l *List) Append(value Tag) {
	l.Elems = append(l.Elems, value)
}

// At returns the element at index i.
func (l *List) At(i int) Tag {
	return l.Elems[i]
}
