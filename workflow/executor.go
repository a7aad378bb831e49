package workflow

import (
	"errors"
	"time"

	"gamepress-cms/models"
)

// Store is the unit of work the executor runs against. CommitTransition
// must persist the mutated article and append the ledger entry atomically:
// either both are visible afterwards or neither is.
type Store interface {
	// LoadArticle returns ErrArticleNotFound when id does not resolve.
	LoadArticle(id uint) (*models.Article, error)
	CommitTransition(article *models.Article, entry *models.ApprovalHistory) (*models.Article, error)
}

// Executor is the only component that mutates an article's workflow
// fields. Everything else goes through it.
type Executor struct {
	store Store
	now   func() time.Time
}

func NewExecutor(store Store) *Executor {
	return &Executor{store: store, now: time.Now}
}

// Execute runs one transition: load, validate, mutate, commit. On any
// denial the article is untouched and no ledger entry is written.
func (e *Executor) Execute(actor Actor, articleID uint, req Request) (*models.Article, error) {
	if actor.ID == 0 || actor.Role == "" {
		return nil, ErrNoActor
	}

	article, err := e.store.LoadArticle(articleID)
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			return nil, err
		}
		return nil, &StorageError{Err: err}
	}

	if err := verifyTrashState(article); err != nil {
		return nil, &StorageError{Err: err}
	}

	action, err := decide(actor, article, req)
	if err != nil {
		return nil, err
	}

	from := article.Status
	now := e.now()

	switch {
	case req.Status == models.StatusDeleted:
		// The stored previous status is the one observed here, never the
		// caller-supplied value.
		markTrashed(article, now)
	case from == models.StatusDeleted:
		clearTrash(article)
	}

	if req.Status == models.StatusPublished {
		if article.PublishedAt == nil {
			article.PublishedAt = &now
		}
		clearTrash(article)
	}

	article.Status = req.Status

	if req.ReviewerID != nil {
		article.CurrentReviewerID = req.ReviewerID
	}

	if err := verifyTrashState(article); err != nil {
		return nil, &StorageError{Err: err}
	}

	entry := &models.ApprovalHistory{
		ArticleID:  article.ID,
		FromStatus: from,
		ToStatus:   req.Status,
		Action:     action,
		Comment:    req.Comment,
		ActionByID: actor.ID,
		CreatedAt:  now,
	}

	updated, err := e.store.CommitTransition(article, entry)
	if err != nil {
		return nil, &StorageError{Err: err}
	}
	return updated, nil
}
