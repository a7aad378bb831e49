package services

import (
	"errors"
	"time"

	"gamepress-cms/models"
	"gamepress-cms/repositories"

	"gorm.io/gorm"
)

var (
	ErrCategoryExists   = errors.New("category already exists")
	ErrPlatformNotFound = errors.New("one or more platforms not found")
	ErrBadReleaseDate   = errors.New("release date must be YYYY-MM-DD")
)

// CatalogService covers the admin-console reference data: categories,
// platforms, companies and games.
type CatalogService interface {
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	UpdateCategory(id uint, req models.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error

	CreatePlatform(req models.CreatePlatformRequest) (*models.Platform, error)
	GetPlatforms() ([]models.Platform, error)
	DeletePlatform(id uint) error

	CreateCompany(req models.CreateCompanyRequest) (*models.Company, error)
	GetCompanies() ([]models.Company, error)
	DeleteCompany(id uint) error

	CreateGame(req models.CreateGameRequest) (*models.Game, error)
	GetGame(id uint) (*models.Game, error)
	GetGames() ([]models.Game, error)
	UpdateGame(id uint, req models.CreateGameRequest) (*models.Game, error)
	DeleteGame(id uint) error
}

type catalogService struct {
	categoryRepo repositories.CategoryRepository
	platformRepo repositories.PlatformRepository
	companyRepo  repositories.CompanyRepository
	gameRepo     repositories.GameRepository
}

func NewCatalogService(
	categoryRepo repositories.CategoryRepository,
	platformRepo repositories.PlatformRepository,
	companyRepo repositories.CompanyRepository,
	gameRepo repositories.GameRepository,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		platformRepo: platformRepo,
		companyRepo:  companyRepo,
		gameRepo:     gameRepo,
	}
}

func (s *catalogService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	_, err := s.categoryRepo.GetBySlug(req.Slug)
	if err == nil {
		return nil, ErrCategoryExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *catalogService) UpdateCategory(id uint, req models.CreateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	category.Slug = req.Slug
	category.Description = req.Description
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(id uint) error {
	return s.categoryRepo.Delete(id)
}

func (s *catalogService) CreatePlatform(req models.CreatePlatformRequest) (*models.Platform, error) {
	platform := &models.Platform{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Manufacturer: req.Manufacturer,
	}
	if err := s.platformRepo.Create(platform); err != nil {
		return nil, err
	}
	return platform, nil
}

func (s *catalogService) GetPlatforms() ([]models.Platform, error) {
	return s.platformRepo.GetAll()
}

func (s *catalogService) DeletePlatform(id uint) error {
	return s.platformRepo.Delete(id)
}

func (s *catalogService) CreateCompany(req models.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:    req.Name,
		Country: req.Country,
		Website: req.Website,
	}
	if err := s.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *catalogService) GetCompanies() ([]models.Company, error) {
	return s.companyRepo.GetAll()
}

func (s *catalogService) DeleteCompany(id uint) error {
	return s.companyRepo.Delete(id)
}

func (s *catalogService) CreateGame(req models.CreateGameRequest) (*models.Game, error) {
	game := &models.Game{
		Title:       req.Title,
		Slug:        req.Slug,
		Synopsis:    req.Synopsis,
		DeveloperID: req.DeveloperID,
		PublisherID: req.PublisherID,
	}

	if req.ReleaseDate != "" {
		released, err := time.Parse("2006-01-02", req.ReleaseDate)
		if err != nil {
			return nil, ErrBadReleaseDate
		}
		game.ReleaseDate = &released
	}

	platforms, err := s.resolvePlatforms(req.PlatformIDs)
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.Create(game); err != nil {
		return nil, err
	}
	if len(platforms) > 0 {
		if err := s.gameRepo.ReplacePlatforms(game, platforms); err != nil {
			return nil, err
		}
	}
	return s.gameRepo.GetByID(game.ID)
}

func (s *catalogService) GetGame(id uint) (*models.Game, error) {
	return s.gameRepo.GetByID(id)
}

func (s *catalogService) GetGames() ([]models.Game, error) {
	return s.gameRepo.GetAll()
}

func (s *catalogService) UpdateGame(id uint, req models.CreateGameRequest) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	game.Title = req.Title
	game.Slug = req.Slug
	game.Synopsis = req.Synopsis
	game.DeveloperID = req.DeveloperID
	game.PublisherID = req.PublisherID

	if req.ReleaseDate != "" {
		released, err := time.Parse("2006-01-02", req.ReleaseDate)
		if err != nil {
			return nil, ErrBadReleaseDate
		}
		game.ReleaseDate = &released
	}

	platforms, err := s.resolvePlatforms(req.PlatformIDs)
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.Update(game); err != nil {
		return nil, err
	}
	if err := s.gameRepo.ReplacePlatforms(game, platforms); err != nil {
		return nil, err
	}
	return s.gameRepo.GetByID(game.ID)
}

func (s *catalogService) DeleteGame(id uint) error {
	return s.gameRepo.Delete(id)
}

func (s *catalogService) resolvePlatforms(ids []uint) ([]models.Platform, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	platforms, err := s.platformRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(platforms) != len(ids) {
		return nil, ErrPlatformNotFound
	}
	return platforms, nil
}
