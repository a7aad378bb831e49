package services

import (
	"errors"
	"strings"

	"gamepress-cms/models"
	"gamepress-cms/repositories"
	"gamepress-cms/workflow"

	"gorm.io/gorm"
)

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrNotAuthor        = errors.New("not the article author")
	ErrNotEditable      = errors.New("article is not editable in its current status")
	ErrNothingToRestore = errors.New("article is not in the trash")
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, actor workflow.Actor) (*models.Article, error)
	GetArticle(id uint, isPublic bool) (*models.Article, error)
	GetArticles(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest, actor workflow.Actor) (*models.Article, error)
	UpdateStatus(actor workflow.Actor, articleID uint, req models.UpdateArticleStatusRequest) (*models.Article, error)
	TrashArticle(actor workflow.Actor, articleID uint, previousStatus *models.ArticleStatus) (*models.Article, error)
	RestoreArticle(actor workflow.Actor, articleID uint) (*models.Article, error)
	GetHistory(articleID uint) ([]models.ApprovalHistory, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	historyRepo repositories.ApprovalHistoryRepository
	executor    *workflow.Executor
}

func NewArticleService(articleRepo repositories.ArticleRepository, historyRepo repositories.ApprovalHistoryRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		historyRepo: historyRepo,
		executor:    workflow.NewExecutor(articleRepo),
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, actor workflow.Actor) (*models.Article, error) {
	article := &models.Article{
		UserID:     actor.ID,
		Title:      strings.TrimSpace(req.Title),
		Summary:    strings.TrimSpace(req.Summary),
		Content:    req.Content,
		Status:     models.StatusDraft,
		CategoryID: req.CategoryID,
		GameID:     req.GameID,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint, isPublic bool) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if isPublic && article.Status != models.StatusPublished {
		return nil, ErrArticleNotFound
	}

	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 10
	}
	return s.articleRepo.GetList(params, isPublic)
}

// UpdateArticle edits title/summary/body. The author may edit while the
// article is in a working status; editors and above may edit any article.
// Workflow fields are untouched here.
func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest, actor workflow.Actor) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if article.UserID != actor.ID && !workflow.Dominates(actor.Role, models.RoleEditor) {
		return nil, ErrNotAuthor
	}

	if article.Status == models.StatusDeleted {
		return nil, ErrNotEditable
	}

	article.Title = strings.TrimSpace(req.Title)
	article.Summary = strings.TrimSpace(req.Summary)
	article.Content = req.Content
	article.CategoryID = req.CategoryID
	article.GameID = req.GameID

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return s.articleRepo.GetByID(article.ID)
}

// UpdateStatus hands the request straight to the workflow executor.
func (s *articleService) UpdateStatus(actor workflow.Actor, articleID uint, req models.UpdateArticleStatusRequest) (*models.Article, error) {
	return s.executor.Execute(actor, articleID, workflow.Request{
		Status:         req.Status,
		Comment:        req.Comment,
		ReviewerID:     req.ReviewerID,
		PreviousStatus: req.PreviousStatus,
	})
}

// TrashArticle is the DELETE endpoint's path into the workflow.
func (s *articleService) TrashArticle(actor workflow.Actor, articleID uint, previousStatus *models.ArticleStatus) (*models.Article, error) {
	return s.executor.Execute(actor, articleID, workflow.Request{
		Status:         models.StatusDeleted,
		PreviousStatus: previousStatus,
	})
}

// RestoreArticle brings a trashed article back to the status remembered at
// deletion time.
func (s *articleService) RestoreArticle(actor workflow.Actor, articleID uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if article.Status != models.StatusDeleted || article.PreviousStatus == nil {
		return nil, ErrNothingToRestore
	}

	return s.executor.Execute(actor, articleID, workflow.Request{
		Status: *article.PreviousStatus,
	})
}

func (s *articleService) GetHistory(articleID uint) ([]models.ApprovalHistory, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return s.historyRepo.ListByArticle(articleID)
}
