// Provides common multiindex errors definitions.
package multiindex_errors

import "errors"

var (
	ErrNilContainer    = errors.New("multiindex: container is nil")
	ErrNilIndex        = errors.New("multiindex: index is nil")
	ErrNilKeyExtractor = errors.New("multiindex: key extractor is nil")

	ErrContainerPopulated        = errors.New("multiindex: container already holds data, index topology is frozen")
	ErrIndexNotRegistered        = errors.New("multiindex: index is not registered with this container")
	ErrUniqueConstraintViolation = errors.New("multiindex: unique index constraint violation")
	ErrAbsentValue               = errors.New("multiindex: absent value can't be keyed")
	ErrUncomparableValue         = errors.New("multiindex: value or key of an uncomparable dynamic type")
	ErrUnsupportedOperation      = errors.New("multiindex: unsupported operation")
)
