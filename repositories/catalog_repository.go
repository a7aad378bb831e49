package repositories

import (
	"gamepress-cms/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

type PlatformRepository interface {
	Create(platform *models.Platform) error
	GetByID(id uint) (*models.Platform, error)
	GetByIDs(ids []uint) ([]models.Platform, error)
	GetAll() ([]models.Platform, error)
	Update(platform *models.Platform) error
	Delete(id uint) error
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) Create(platform *models.Platform) error {
	return r.db.Create(platform).Error
}

func (r *platformRepository) GetByID(id uint) (*models.Platform, error) {
	var platform models.Platform
	err := r.db.First(&platform, id).Error
	if err != nil {
		return nil, err
	}
	return &platform, nil
}

func (r *platformRepository) GetByIDs(ids []uint) ([]models.Platform, error) {
	var platforms []models.Platform
	err := r.db.Where("id IN ?", ids).Find(&platforms).Error
	return platforms, err
}

func (r *platformRepository) GetAll() ([]models.Platform, error) {
	var platforms []models.Platform
	err := r.db.Order("name asc").Find(&platforms).Error
	return platforms, err
}

func (r *platformRepository) Update(platform *models.Platform) error {
	return r.db.Save(platform).Error
}

func (r *platformRepository) Delete(id uint) error {
	return r.db.Delete(&models.Platform{}, id).Error
}

type CompanyRepository interface {
	Create(company *models.Company) error
	GetByID(id uint) (*models.Company, error)
	GetAll() ([]models.Company, error)
	Update(company *models.Company) error
	Delete(id uint) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepository) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetAll() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Order("name asc").Find(&companies).Error
	return companies, err
}

func (r *companyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

func (r *companyRepository) Delete(id uint) error {
	return r.db.Delete(&models.Company{}, id).Error
}

type GameRepository interface {
	Create(game *models.Game) error
	GetByID(id uint) (*models.Game, error)
	GetAll() ([]models.Game, error)
	Update(game *models.Game) error
	Delete(id uint) error
	ReplacePlatforms(game *models.Game, platforms []models.Platform) error
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

func (r *gameRepository) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.Preload("Developer").
		Preload("Publisher").
		Preload("Platforms").
		First(&game, id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) GetAll() ([]models.Game, error) {
	var games []models.Game
	err := r.db.Preload("Platforms").Order("title asc").Find(&games).Error
	return games, err
}

func (r *gameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

func (r *gameRepository) Delete(id uint) error {
	return r.db.Delete(&models.Game{}, id).Error
}

func (r *gameRepository) ReplacePlatforms(game *models.Game, platforms []models.Platform) error {
	return r.db.Model(game).Association("Platforms").Replace(platforms)
}
