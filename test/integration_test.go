package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gamepress-cms/handlers"
	"gamepress-cms/middleware"
	"gamepress-cms/models"
	"gamepress-cms/repositories"
	"gamepress-cms/services"
)

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine

	editorToken string
	editorID    uint
	seniorToken string
	seniorID    uint
	userToken   string
}

func (suite *IntegrationTestSuite) SetupSuite() {
	dsn :="host=localhost port=5432 user=myuser password=mypassword dbname=gamepress_test_db sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("Failed to connect to test database:", err)
	}

	suite.db = db

	if err := RunSQLFile(db, "../migration/init.sql"); err != nil {
		suite.T().Fatal("Failed to run migration:", err)
	}

	suite.setupRouter()
}

// RunSQLFile executes a migration script statement by statement.
func RunSQLFile(db *gorm.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return db.Exec(string(content)).Error
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	userRepo := repositories.NewUserRepository(suite.db)
	articleRepo := repositories.NewArticleRepository(suite.db)
	historyRepo := repositories.NewApprovalHistoryRepository(suite.db)
	categoryRepo := repositories.NewCategoryRepository(suite.db)
	platformRepo := repositories.NewPlatformRepository(suite.db)
	companyRepo := repositories.NewCompanyRepository(suite.db)
	gameRepo := repositories.NewGameRepository(suite.db)

	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, historyRepo)
	catalogService := services.NewCatalogService(categoryRepo, platformRepo, companyRepo, gameRepo)

	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	router := gin.New()

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)

			users := protected.Group("/users")
			users.Use(middleware.RequireRole(models.RoleAdmin))
			{
				users.GET("", authHandler.ListUsers)
				users.PUT("/:id/role", authHandler.UpdateUserRole)
			}

			articles := protected.Group("/articles")
			{
				articles.POST("", middleware.RequireRole(models.RoleEditor), articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.PUT("/:id/status", articleHandler.UpdateArticleStatus)
				articles.DELETE("/:id", articleHandler.TrashArticle)
				articles.POST("/:id/restore", articleHandler.RestoreArticle)
				articles.GET("/:id/history", articleHandler.GetArticleHistory)
			}

			categories := protected.Group("/categories")
			{
				categories.GET("", catalogHandler.GetCategories)
				categories.POST("", middleware.RequireRole(models.RoleEditor), catalogHandler.CreateCategory)
			}
		}

		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) TearDownSuite() {
	suite.db.Exec("DROP TABLE IF EXISTS approval_histories")
	suite.db.Exec("DROP TABLE IF EXISTS articles")
	suite.db.Exec("DROP TABLE IF EXISTS game_platforms")
	suite.db.Exec("DROP TABLE IF EXISTS games")
	suite.db.Exec("DROP TABLE IF EXISTS companies")
	suite.db.Exec("DROP TABLE IF EXISTS platforms")
	suite.db.Exec("DROP TABLE IF EXISTS categories")
	suite.db.Exec("DROP TABLE IF EXISTS users")
}

func (suite *IntegrationTestSuite) SetupTest() {
	suite.db.Exec("TRUNCATE TABLE approval_histories RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE articles RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE categories RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE users RESTART IDENTITY CASCADE")

	suite.userToken, _ = suite.createUser("reader", "reader@example.com", models.RoleUser)
	suite.editorToken, suite.editorID = suite.createUser("editor", "editor@example.com", models.RoleEditor)
	suite.seniorToken, suite.seniorID = suite.createUser("senior", "senior@example.com", models.RoleSeniorEditor)
}

type apiEnvelope struct {
	Code        int             `json:"code"`
	CodeType    string          `json:"code_type"`
	CodeMessage json.RawMessage `json:"code_message"`
	Data        json.RawMessage `json:"data"`
}

// createUser registers through the API, promotes directly in the
// database (self-registration always lands on USER), then logs in again
// so the token carries the promoted role.
func (suite *IntegrationTestSuite) createUser(username, email string, role models.UserRole) (string, uint) {
	registerPayload := models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "password123",
	}

	var auth models.AuthResponse
	w := suite.doJSON("POST", "/api/v1/auth/register", registerPayload, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &auth)

	if role != models.RoleUser {
		err := suite.db.Model(&models.User{}).Where("id = ?", auth.User.ID).Update("role", role).Error
		suite.NoError(err)

		w = suite.doJSON("POST", "/api/v1/auth/login", models.LoginRequest{
			Email:    email,
			Password: "password123",
		}, "")
		suite.Equal(http.StatusOK, w.Code)
		suite.decodeData(w, &auth)
	}

	return auth.Token, auth.User.ID
}

func (suite *IntegrationTestSuite) doJSON(method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) decodeData(w *httptest.ResponseRecorder, out interface{}) {
	var envelope apiEnvelope
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	suite.NoError(json.Unmarshal(envelope.Data, out))
}

func (suite *IntegrationTestSuite) createDraft(title string) models.Article {
	var article models.Article
	w := suite.doJSON("POST", "/api/v1/articles", models.CreateArticleRequest{
		Title:   title,
		Content: "# Review\n\nSolid **platformer**.",
	}, suite.editorToken)
	suite.Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &article)
	suite.Equal(models.StatusDraft, article.Status)
	return article
}

func (suite *IntegrationTestSuite) TestAuthFlow() {
	w := suite.doJSON("POST", "/api/v1/auth/login", models.LoginRequest{
		Email:    "editor@example.com",
		Password: "password123",
	}, "")

	suite.Equal(http.StatusOK, w.Code)

	var auth models.AuthResponse
	suite.decodeData(w, &auth)
	suite.NotEmpty(auth.Token)
	suite.Equal("editor", auth.User.Username)
	suite.Equal(models.RoleEditor, auth.User.Role)
}

func (suite *IntegrationTestSuite) TestProfile() {
	w := suite.doJSON("GET", "/api/v1/profile", nil, suite.seniorToken)

	suite.Equal(http.StatusOK, w.Code)

	var user models.User
	suite.decodeData(w, &user)
	suite.Equal("senior", user.Username)
}

func (suite *IntegrationTestSuite) TestEditorCannotPublishDraft() {
	article := suite.createDraft("Blocked publish")

	w := suite.doJSON("PUT", fmt.Sprintf("/api/v1/articles/%d/status", article.ID),
		models.UpdateArticleStatusRequest{Status: models.StatusPublished}, suite.editorToken)

	suite.Equal(http.StatusForbidden, w.Code)

	// Nothing changed and nothing was logged.
	var reloaded models.Article
	w = suite.doJSON("GET", fmt.Sprintf("/api/v1/articles/%d", article.ID), nil, suite.editorToken)
	suite.Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &reloaded)
	suite.Equal(models.StatusDraft, reloaded.Status)

	var entries []models.ApprovalHistory
	w = suite.doJSON("GET", fmt.Sprintf("/api/v1/articles/%d/history", article.ID), nil, suite.editorToken)
	suite.Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &entries)
	suite.Empty(entries)
}

func (suite *IntegrationTestSuite) TestEditorialLifecycle() {
	article := suite.createDraft("Full lifecycle")
	statusURL := fmt.Sprintf("/api/v1/articles/%d/status", article.ID)

	// Editor submits for review.
	w := suite.doJSON("PUT", statusURL,
		models.UpdateArticleStatusRequest{Status: models.StatusPendingApproval}, suite.editorToken)
	suite.Equal(http.StatusOK, w.Code)

	// Senior editor asks for changes; without a comment this is refused.
	w = suite.doJSON("PUT", statusURL,
		models.UpdateArticleStatusRequest{Status: models.StatusNeedsChanges}, suite.seniorToken)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.doJSON("PUT", statusURL,
		models.UpdateArticleStatusRequest{Status: models.StatusNeedsChanges, Comment: "Please fix xyz"}, suite.seniorToken)
	suite.Equal(http.StatusOK, w.Code)

	// The owning editor pulls it back to draft, then resubmits.
	w = suite.doJSON("PUT", statusURL,
		models.UpdateArticleStatusRequest{Status: models.StatusDraft}, suite.editorToken)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("PUT", statusURL,
		models.UpdateArticleStatusRequest{Status: models.StatusPendingApproval}, suite.editorToken)
	suite.Equal(http.StatusOK, w.Code)

	// Senior editor approves.
	var published models.Article
	w = suite.doJSON("PUT", statusURL,
		models.UpdateArticleStatusRequest{Status: models.StatusPublished}, suite.seniorToken)
	suite.Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &published)
	suite.Equal(models.StatusPublished, published.Status)
	suite.NotNil(published.PublishedAt)

	// Archive, trash (hint required), restore.
	w = suite.doJSON("PUT", statusURL,
		models.UpdateArticleStatusRequest{Status: models.StatusArchived}, suite.seniorToken)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("DELETE", fmt.Sprintf("/api/v1/articles/%d", article.ID), nil, suite.seniorToken)
	suite.Equal(http.StatusBadRequest, w.Code, "trash without a previous_status hint is refused")

	var trashed models.Article
	w = suite.doJSON("DELETE", fmt.Sprintf("/api/v1/articles/%d?previous_status=ARCHIVED", article.ID), nil, suite.seniorToken)
	suite.Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &trashed)
	suite.Equal(models.StatusDeleted, trashed.Status)
	suite.NotNil(trashed.PreviousStatus)
	suite.Equal(models.StatusArchived, *trashed.PreviousStatus)
	suite.NotNil(trashed.DeletedAt)

	var restored models.Article
	w = suite.doJSON("POST", fmt.Sprintf("/api/v1/articles/%d/restore", article.ID), nil, suite.seniorToken)
	suite.Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &restored)
	suite.Equal(models.StatusArchived, restored.Status)
	suite.Nil(restored.PreviousStatus)
	suite.Nil(restored.DeletedAt)

	// The ledger recorded every successful step, oldest first.
	var entries []models.ApprovalHistory
	w = suite.doJSON("GET", fmt.Sprintf("/api/v1/articles/%d/history", article.ID), nil, suite.editorToken)
	suite.Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &entries)
	suite.Len(entries, 8)

	actions := make([]models.ApprovalAction, 0, len(entries))
	for _, entry := range entries {
		actions = append(actions, entry.Action)
	}
	suite.Equal([]models.ApprovalAction{
		models.ActionSubmitted,
		models.ActionChangesNeeded,
		models.ActionSubmitted,
		models.ActionSubmitted,
		models.ActionApproved,
		models.ActionArchived,
		models.ActionDeleted,
		models.ActionRestored,
	}, actions)
}

func (suite *IntegrationTestSuite) TestReviewerAssignmentGate() {
	article := suite.createDraft("Reviewer gate")
	statusURL := fmt.Sprintf("/api/v1/articles/%d/status", article.ID)
	reviewer := suite.seniorID

	w := suite.doJSON("PUT", statusURL, models.UpdateArticleStatusRequest{
		Status:     models.StatusPendingApproval,
		ReviewerID: &reviewer,
	}, suite.editorToken)
	suite.Equal(http.StatusForbidden, w.Code)

	// Without the reviewer the same transition is fine.
	w = suite.doJSON("PUT", statusURL,
		models.UpdateArticleStatusRequest{Status: models.StatusPendingApproval}, suite.editorToken)
	suite.Equal(http.StatusOK, w.Code)

	var updated models.Article
	w = suite.doJSON("PUT", statusURL, models.UpdateArticleStatusRequest{
		Status:     models.StatusPublished,
		ReviewerID: &reviewer,
	}, suite.seniorToken)
	suite.Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &updated)
	suite.NotNil(updated.CurrentReviewerID)
	suite.Equal(reviewer, *updated.CurrentReviewerID)
}

func (suite *IntegrationTestSuite) TestPublicSurface() {
	article := suite.createDraft("Hidden until published")

	// A draft is invisible publicly.
	w := suite.doJSON("GET", fmt.Sprintf("/api/v1/public/articles/%d", article.ID), nil, "")
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.doJSON("PUT", fmt.Sprintf("/api/v1/articles/%d/status", article.ID),
		models.UpdateArticleStatusRequest{Status: models.StatusPublished}, suite.seniorToken)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", fmt.Sprintf("/api/v1/public/articles/%d", article.ID), nil, "")
	suite.Equal(http.StatusOK, w.Code)

	var payload struct {
		Article      models.Article `json:"article"`
		RenderedHTML string         `json:"rendered_html"`
	}
	suite.decodeData(w, &payload)
	suite.Equal(article.ID, payload.Article.ID)
	suite.Contains(payload.RenderedHTML, "<strong>platformer</strong>")
}

func (suite *IntegrationTestSuite) TestCatalogRoleGate() {
	payload := models.CreateCategoryRequest{Name: "Reviews", Slug: "reviews"}

	w := suite.doJSON("POST", "/api/v1/categories", payload, suite.userToken)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.doJSON("POST", "/api/v1/categories", payload, suite.editorToken)
	suite.Equal(http.StatusOK, w.Code)

	var category models.Category
	suite.decodeData(w, &category)
	suite.Equal("reviews", category.Slug)
}

func TestIntegrationTestSuite(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Set RUN_INTEGRATION_TESTS to run against a local postgres")
	}
	suite.Run(t, new(IntegrationTestSuite))
}
