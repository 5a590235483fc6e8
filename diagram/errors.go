package diagram

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid associations.
var (
	// ErrNonexistentActor is returned when an association refers to an
	// actor that is not part of the diagram.
	ErrNonexistentActor = errors.New("diagram: nonexistent actor")

	// ErrNonexistentUseCase is returned when an association refers to a
	// use case that is not part of the diagram.
	ErrNonexistentUseCase = errors.New("diagram: nonexistent use case")
)

// NonexistentActorError reports an association that refers to an unknown
// actor identifier.
type NonexistentActorError struct {
	ID ActorId
}

// Error returns the error string.
func (e *NonexistentActorError) Error() string {
	return fmt.Sprintf("diagram: invalid association: nonexistent actor %s", e.ID)
}

// Is reports whether the target matches ErrNonexistentActor.
func (e *NonexistentActorError) Is(target error) bool {
	return target == ErrNonexistentActor
}

// NonexistentUseCaseError reports an association that refers to an unknown
// use case identifier.
type NonexistentUseCaseError struct {
	ID UseCaseId
}

// Error returns the error string.
func (e *NonexistentUseCaseError) Error() string {
	return fmt.Sprintf("diagram: invalid association: nonexistent use case %s", e.ID)
}

// Is reports whether the target matches ErrNonexistentUseCase.
func (e *NonexistentUseCaseError) Is(target error) bool {
	return target == ErrNonexistentUseCase
}

// IsNonexistentActor reports whether the error is a NonexistentActorError.
func IsNonexistentActor(err error) bool {
	if err == nil {
		return false
	}
	var e *NonexistentActorError
	return errors.As(err, &e) || errors.Is(err, ErrNonexistentActor)
}

// IsNonexistentUseCase reports whether the error is a NonexistentUseCaseError.
func IsNonexistentUseCase(err error) bool {
	if err == nil {
		return false
	}
	var e *NonexistentUseCaseError
	return errors.As(err, &e) || errors.Is(err, ErrNonexistentUseCase)
}
