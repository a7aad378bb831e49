package repositories

import (
	"gamepress-cms/models"

	"gorm.io/gorm"
)

// ApprovalHistoryRepository is the read side of the ledger. Writes happen
// only inside ArticleRepository.CommitTransition; no update or delete
// exists anywhere.
type ApprovalHistoryRepository interface {
	ListByArticle(articleID uint) ([]models.ApprovalHistory, error)
	CountByArticle(articleID uint) (int64, error)
}

type approvalHistoryRepository struct {
	db *gorm.DB
}

func NewApprovalHistoryRepository(db *gorm.DB) ApprovalHistoryRepository {
	return &approvalHistoryRepository{db: db}
}

func (r *approvalHistoryRepository) ListByArticle(articleID uint) ([]models.ApprovalHistory, error) {
	var entries []models.ApprovalHistory
	err := r.db.Where("article_id = ?", articleID).
		Preload("ActionBy").
		Order("created_at asc, id asc").
		Find(&entries).Error
	return entries, err
}

func (r *approvalHistoryRepository) CountByArticle(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ApprovalHistory{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}
