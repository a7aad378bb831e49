package workflow

import (
	"strings"

	"gamepress-cms/models"
)

// Request carries the caller-supplied inputs of a transition.
type Request struct {
	Status  models.ArticleStatus
	Comment string
	// ReviewerID assigns a reviewer alongside the transition. Requires
	// senior editor or above regardless of the status change itself.
	ReviewerID *uint
	// PreviousStatus must be supplied when requesting DELETED. It is an
	// authorization input only; the stored previous status is always the
	// one the executor observes on the article.
	PreviousStatus *models.ArticleStatus
}

// Decide checks a requested transition against the decision table and
// returns the audit action to record, or a typed denial. It never mutates
// its inputs.
func (e *Executor) Decide(actor Actor, article *models.Article, req Request) (models.ApprovalAction, error) {
	return decide(actor, article, req)
}

func decide(actor Actor, article *models.Article, req Request) (models.ApprovalAction, error) {
	if !req.Status.Valid() {
		return "", &InvalidRequestError{Reason: ReasonInvalidTransition}
	}

	// Reviewer assignment is gated before the table: an editor may not
	// smuggle a reviewer change into an otherwise-legal transition.
	if req.ReviewerID != nil && !Dominates(actor.Role, models.RoleSeniorEditor) {
		return "", &ForbiddenError{Reason: ReasonReviewerNotAuthorized}
	}

	// Restores cannot be keyed by pair: DELETED may leave to any
	// non-DELETED status, constrained to the remembered one.
	if article.Status == models.StatusDeleted && req.Status != models.StatusDeleted {
		if !Dominates(actor.Role, restoreRule.minRole) {
			return "", &ForbiddenError{Reason: ReasonInvalidTransition}
		}
		if article.PreviousStatus != nil && req.Status != *article.PreviousStatus {
			return "", &InvalidRequestError{Reason: ReasonRestoreTargetMismatch}
		}
		return restoreRule.action, nil
	}

	rule, ok := transitionTable[statusPair{from: article.Status, to: req.Status}]
	if !ok {
		return "", &InvalidRequestError{Reason: ReasonInvalidTransition}
	}

	if !Dominates(actor.Role, rule.minRole) {
		ownedAndAllowed := rule.ownerRole != "" &&
			article.UserID == actor.ID &&
			Dominates(actor.Role, rule.ownerRole)
		if !ownedAndAllowed {
			return "", &ForbiddenError{Reason: ReasonInvalidTransition}
		}
	}

	if rule.needsComment && strings.TrimSpace(req.Comment) == "" {
		return "", &InvalidRequestError{Reason: ReasonMissingComment}
	}

	if rule.needsPreviousStatus && req.PreviousStatus == nil {
		return "", &InvalidRequestError{Reason: ReasonMissingPreviousStatus}
	}

	return rule.action, nil
}
