package workflow

import (
	"fmt"
	"time"

	"gamepress-cms/models"
)

// markTrashed records the status the article held at this moment so that
// restore can return to it, then stamps the deletion time. The caller is
// responsible for setting Status to DELETED afterwards.
func markTrashed(article *models.Article, now time.Time) {
	previous := article.Status
	article.PreviousStatus = &previous
	article.DeletedAt = &now
}

// clearTrash consumes the remembered previous status. Called on restore
// and, defensively, when publishing.
func clearTrash(article *models.Article) {
	article.PreviousStatus = nil
	article.DeletedAt = nil
}

// verifyTrashState checks the pairing invariant: PreviousStatus and
// DeletedAt are set exactly while the article is DELETED. It runs before
// and after every executed transition; a violation means the stored
// record is corrupt.
func verifyTrashState(article *models.Article) error {
	deleted := article.Status == models.StatusDeleted
	if deleted && (article.PreviousStatus == nil || article.DeletedAt == nil) {
		return fmt.Errorf("article %d is DELETED without trash bookkeeping", article.ID)
	}
	if !deleted && (article.PreviousStatus != nil || article.DeletedAt != nil) {
		return fmt.Errorf("article %d carries trash bookkeeping while %s", article.ID, article.Status)
	}
	return nil
}
