package workflow

import "gamepress-cms/models"

type statusPair struct {
	from models.ArticleStatus
	to   models.ArticleStatus
}

// transitionRule is one row of the decision table: who may perform the
// transition and under which side conditions, plus the audit action the
// ledger records for it.
type transitionRule struct {
	minRole models.UserRole
	// ownerRole, when set, lets the article's own author perform the
	// transition at this lower role even though minRole would deny it.
	ownerRole models.UserRole
	// needsComment denies the transition unless a non-empty comment is
	// supplied.
	needsComment bool
	// needsPreviousStatus denies the transition unless the caller
	// supplied a previous-status value. The value itself is never stored;
	// the executor always records the status it observed.
	needsPreviousStatus bool
	action              models.ApprovalAction
}

// transitionTable is the closed set of legal status transitions. Anything
// not listed here (restores aside, see restoreRule) is denied. Restores
// out of DELETED are the one family that cannot be keyed by a fixed pair,
// since the target depends on the remembered previous status.
var transitionTable = map[statusPair]transitionRule{
	{models.StatusDraft, models.StatusPublished}: {
		minRole: models.RoleSeniorEditor,
		action:  models.ActionApproved,
	},
	{models.StatusDraft, models.StatusPendingApproval}: {
		minRole: models.RoleEditor,
		action:  models.ActionSubmitted,
	},
	{models.StatusNeedsChanges, models.StatusPendingApproval}: {
		minRole: models.RoleEditor,
		action:  models.ActionSubmitted,
	},
	{models.StatusNeedsChanges, models.StatusDraft}: {
		minRole:   models.RoleSeniorEditor,
		ownerRole: models.RoleEditor,
		action:    models.ActionSubmitted,
	},
	{models.StatusPendingApproval, models.StatusNeedsChanges}: {
		minRole:      models.RoleSeniorEditor,
		needsComment: true,
		action:       models.ActionChangesNeeded,
	},
	{models.StatusPendingApproval, models.StatusPublished}: {
		minRole: models.RoleSeniorEditor,
		action:  models.ActionApproved,
	},
	{models.StatusPublished, models.StatusArchived}: {
		minRole: models.RoleSeniorEditor,
		action:  models.ActionArchived,
	},
	{models.StatusPublished, models.StatusDeleted}: {
		minRole:             models.RoleSeniorEditor,
		needsPreviousStatus: true,
		action:              models.ActionDeleted,
	},
	{models.StatusArchived, models.StatusDeleted}: {
		minRole:             models.RoleSeniorEditor,
		needsPreviousStatus: true,
		action:              models.ActionDeleted,
	},
	{models.StatusPendingApproval, models.StatusDeleted}: {
		minRole:             models.RoleSeniorEditor,
		needsPreviousStatus: true,
		action:              models.ActionDeleted,
	},
	{models.StatusDraft, models.StatusDeleted}: {
		minRole:             models.RoleSeniorEditor,
		needsPreviousStatus: true,
		action:              models.ActionDeleted,
	},
	{models.StatusNeedsChanges, models.StatusDeleted}: {
		minRole:             models.RoleSeniorEditor,
		needsPreviousStatus: true,
		action:              models.ActionDeleted,
	},
}

// restoreRule governs DELETED -> any non-DELETED status.
var restoreRule = transitionRule{
	minRole: models.RoleSeniorEditor,
	action:  models.ActionRestored,
}
