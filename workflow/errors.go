package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrArticleNotFound is returned by Store.LoadArticle and propagated
	// verbatim by the executor.
	ErrArticleNotFound = errors.New("article not found")

	// ErrNoActor is returned when Execute is called without a resolved
	// actor.
	ErrNoActor = errors.New("no authenticated actor")
)

// DenialReason explains why the validator refused a transition. The
// invalid-transition text is deliberately shared between off-table pairs
// and insufficient roles so callers cannot probe the rule set.
type DenialReason string

const (
	ReasonMissingComment        DenialReason = "comment required"
	ReasonReviewerNotAuthorized DenialReason = "not authorized to assign reviewer"
	ReasonInvalidTransition     DenialReason = "invalid status transition or insufficient permissions"
	ReasonMissingPreviousStatus DenialReason = "previous status required"
	ReasonRestoreTargetMismatch DenialReason = "restore target does not match previous status"
)

// ForbiddenError denies a transition the actor's role is not entitled to.
type ForbiddenError struct {
	Reason DenialReason
}

func (e *ForbiddenError) Error() string {
	return string(e.Reason)
}

// InvalidRequestError denies a structurally malformed transition request:
// a pair absent from the table or a missing side condition.
type InvalidRequestError struct {
	Reason DenialReason
}

func (e *InvalidRequestError) Error() string {
	return string(e.Reason)
}

// StorageError wraps a failure of the atomic commit step. The transaction
// guarantees no partial state is observable when it is returned.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
