package repositories

import (
	"errors"
	"fmt"

	"gamepress-cms/models"
	"gamepress-cms/workflow"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	Update(article *models.Article) error

	// workflow.Store
	LoadArticle(id uint) (*models.Article, error)
	CommitTransition(article *models.Article, entry *models.ApprovalHistory) (*models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// compile-time check: the repository satisfies the workflow's unit of work.
var _ workflow.Store = (ArticleRepository)(nil)

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("CurrentReviewer").
		Preload("Category").
		Preload("Game").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Category").Preload("Game")

	if isPublic {
		query = query.Where("articles.status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("articles.status = ?", params.Status)
	} else {
		// The trash tab asks for DELETED explicitly; default listings
		// hide it.
		query = query.Where("articles.status <> ?", models.StatusDeleted)
	}

	if params.AuthorID > 0 {
		query = query.Where("user_id = ?", params.AuthorID)
	}

	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}

	if params.GameID > 0 {
		query = query.Where("game_id = ?", params.GameID)
	}

	query.Count(&total)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	if isPublic {
		sortBy = "published_at"
	}
	query = query.Order(fmt.Sprintf("articles.%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// LoadArticle fetches the bare article row for the workflow executor.
func (r *articleRepository) LoadArticle(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, workflow.ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// CommitTransition persists the mutated article and appends the ledger
// entry in one transaction. Save writes every column so cleared
// previous_status/deleted_at values reach the row as NULLs.
func (r *articleRepository) CommitTransition(article *models.Article, entry *models.ApprovalHistory) (*models.Article, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(article).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(article.ID)
}
