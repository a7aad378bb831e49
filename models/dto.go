package models

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateUserRoleRequest struct {
	Role UserRole `json:"role" binding:"required"`
}

type CreateArticleRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=255"`
	Summary    string `json:"summary"`
	Content    string `json:"content" binding:"required"`
	CategoryID *uint  `json:"category_id"`
	GameID     *uint  `json:"game_id"`
}

type UpdateArticleRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=255"`
	Summary    string `json:"summary"`
	Content    string `json:"content" binding:"required"`
	CategoryID *uint  `json:"category_id"`
	GameID     *uint  `json:"game_id"`
}

// UpdateArticleStatusRequest is the body of the workflow endpoint.
// PreviousStatus is required when Status is DELETED; ReviewerID may only
// be set by senior editors and above.
type UpdateArticleStatusRequest struct {
	Status         ArticleStatus  `json:"status" binding:"required"`
	Comment        string         `json:"comment"`
	ReviewerID     *uint          `json:"reviewer_id"`
	PreviousStatus *ArticleStatus `json:"previous_status"`
}

type ArticleListParams struct {
	Status     string `form:"status"`
	AuthorID   uint   `form:"author_id"`
	CategoryID uint   `form:"category_id"`
	GameID     uint   `form:"game_id"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
	SortBy     string `form:"sort_by,default=created_at"`
	SortOrder  string `form:"sort_order,default=desc"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type CreatePlatformRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
}

type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Country string `json:"country,omitempty"`
	Website string `json:"website,omitempty"`
}

type CreateGameRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Slug        string `json:"slug" binding:"required,min=1,max=255"`
	Synopsis    string `json:"synopsis"`
	DeveloperID *uint  `json:"developer_id"`
	PublisherID *uint  `json:"publisher_id"`
	PlatformIDs []uint `json:"platform_ids"`
	ReleaseDate string `json:"release_date,omitempty"`
}
