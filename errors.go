package sunshade

import "errors"

var (
	// ErrShapeRemoved is returned by hosts when an operation targets a
	// shape that is no longer part of the document.
	ErrShapeRemoved = errors.New("sunshade: shape removed")

	// ErrNilHost is returned when a nil Host is passed to Start.
	ErrNilHost = errors.New("sunshade: nil host")

	// ErrClosed is returned when operating on a closed plugin or host.
	ErrClosed = errors.New("sunshade: closed")
)
