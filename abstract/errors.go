package abstract

import "errors"

var (
	// ErrNilValue is returned by Insert when given a value whose
	// representation is nil. The tree is left untouched.
	ErrNilValue = errors.New("abstract: cannot insert nil value")

	// ErrNoSuchNode is returned when dereferencing an absent parent,
	// child or root link.
	ErrNoSuchNode = errors.New("abstract: no such node")

	// ErrExternalRotation is returned by the public rotation entry
	// points of trees whose balancing policy forbids rotation from the
	// outside. It signals API misuse, not a runtime condition.
	ErrExternalRotation = errors.New("abstract: tree does not support external rotation")
)
