package errs

import (
	"strconv"
	"strings"
)

// pathPartKind distinguishes the two ways a PathPart can localize an error:
// a compound key, or a sequence index.
type pathPartKind uint8

const (
	pathKindMapKey pathPartKind = iota
	pathKindElement
)

// PathPart is one component of a Path: either a compound map key or a
// list/array element index.
type PathPart struct {
	kind pathPartKind
	name string
	idx  int
}

// MapKey builds a PathPart identifying a compound child by key.
func MapKey(name string) PathPart {
	return PathPart{kind: pathKindMapKey, name: name}
}

// Element builds a PathPart identifying a list or array child by index.
func Element(index int) PathPart {
	return PathPart{kind: pathKindElement, idx: index}
}

// String renders a single part: a bare key for MapKey, or "[i]" for Element.
func (p PathPart) String() string {
	if p.kind == pathKindElement {
		return "[" + strconv.Itoa(p.idx) + "]"
	}

	return p.name
}

// Path is an ordered sequence of PathParts locating a node inside a tag
// tree, outermost component first.
type Path []PathPart

// String renders the path. Components are joined with '.', except Element
// components which render as "[i]" with no preceding dot. An empty path
// renders as "(root)".
func (p Path) String() string {
	if len(p) == 0 {
		return "(root)"
	}

	var b strings.Builder
	for i, part := range p {
		if i > 0 && part.kind != pathKindElement {
			b.WriteByte('.')
		}

		b.WriteString(part.String())
	}

	return b.String()
}

// Prepend returns a new Path with part inserted at the front, leaving p
// unmodified. Recursive decode/encode layers use this to build the full
// path as the call stack unwinds.
func (p Path) Prepend(part PathPart) Path {
	next := make(Path, 0, len(p)+1)
	next = append(next, part)
	next = append(next, p...)

	return next
}

// PathError pairs an underlying error with the Path at which it occurred.
type PathError struct {
	Err  error
	Path Path
}

// Error implements error, rendering as "`path`: underlying error".
func (e *PathError) Error() string {
	return "`" + e.Path.String() + "`: " + e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is/errors.As.
func (e *PathError) Unwrap() error {
	return e.Err
}

// WithPath wraps err with part as the outermost path component. If err is
// already a *PathError, part is prepended to its existing path rather than
// nesting another wrapper. WithPath returns nil if err is nil.
func WithPath(err error, part PathPart) error {
	if err == nil {
		return nil
	}

	if pe, ok := err.(*PathError); ok {
		return &PathError{Err: pe.Err, Path: pe.Path.Prepend(part)}
	}

	return &PathError{Err: err, Path: Path{part}}
}
