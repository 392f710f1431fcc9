package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipeshare/domain"
	"recipeshare/internal/api/handlers"
	"recipeshare/internal/api/routes"
	"recipeshare/internal/middleware"
	"recipeshare/internal/utils"
	"recipeshare/pkg/jwt"
	"recipeshare/pkg/recipe"
	"recipeshare/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type mockRecipeService struct {
	getRecipes        func(ctx context.Context, search string) ([]domain.RecipeResponse, error)
	getRecipeDetail   func(ctx context.Context, recipeID string) (domain.RecipeDetailResponse, error)
	createRecipe      func(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
	updateRecipe      func(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
	deleteRecipe      func(ctx context.Context, recipeID, userID string) error
	getMyRecipes      func(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
	likeRecipe        func(ctx context.Context, recipeID, userID string) error
	unlikeRecipe      func(ctx context.Context, recipeID, userID string) error
	getLikedRecipeIDs func(ctx context.Context, userID string) ([]string, error)
	favoriteRecipe    func(ctx context.Context, recipeID, userID string) error
	unfavoriteRecipe  func(ctx context.Context, recipeID, userID string) error
	getFavorites      func(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
	addComment        func(ctx context.Context, recipeID string, req domain.AddCommentRequest, userID string) (domain.CommentResponse, error)
	deleteComment     func(ctx context.Context, commentID, userID string) error
	uploadImage       func(ctx context.Context, file *multipart.FileHeader) (string, error)
}

func (m *mockRecipeService) GetRecipes(ctx context.Context, search string) ([]domain.RecipeResponse, error) {
	return m.getRecipes(ctx, search)
}

func (m *mockRecipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetailResponse, error) {
	return m.getRecipeDetail(ctx, recipeID)
}

func (m *mockRecipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	return m.createRecipe(ctx, req, userID)
}

func (m *mockRecipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	return m.updateRecipe(ctx, recipeID, req, userID)
}

func (m *mockRecipeService) DeleteRecipe(ctx context.Context, recipeID, userID string) error {
	return m.deleteRecipe(ctx, recipeID, userID)
}

func (m *mockRecipeService) GetMyRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	return m.getMyRecipes(ctx, userID)
}

func (m *mockRecipeService) LikeRecipe(ctx context.Context, recipeID, userID string) error {
	return m.likeRecipe(ctx, recipeID, userID)
}

func (m *mockRecipeService) UnlikeRecipe(ctx context.Context, recipeID, userID string) error {
	return m.unlikeRecipe(ctx, recipeID, userID)
}

func (m *mockRecipeService) GetLikedRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	return m.getLikedRecipeIDs(ctx, userID)
}

func (m *mockRecipeService) FavoriteRecipe(ctx context.Context, recipeID, userID string) error {
	return m.favoriteRecipe(ctx, recipeID, userID)
}

func (m *mockRecipeService) UnfavoriteRecipe(ctx context.Context, recipeID, userID string) error {
	return m.unfavoriteRecipe(ctx, recipeID, userID)
}

func (m *mockRecipeService) GetFavorites(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	return m.getFavorites(ctx, userID)
}

func (m *mockRecipeService) AddComment(ctx context.Context, recipeID string, req domain.AddCommentRequest, userID string) (domain.CommentResponse, error) {
	return m.addComment(ctx, recipeID, req, userID)
}

func (m *mockRecipeService) DeleteComment(ctx context.Context, commentID, userID string) error {
	return m.deleteComment(ctx, commentID, userID)
}

func (m *mockRecipeService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return m.uploadImage(ctx, file)
}

type mockUserService struct {
	register       func(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
	login          func(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
	profile        func(ctx context.Context, userID string) (domain.UserResponse, error)
	forgotPassword func(ctx context.Context, req domain.ForgotPasswordRequest) error
	resetPassword  func(ctx context.Context, req domain.ResetPasswordRequest) error
}

func (m *mockUserService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	return m.register(ctx, req)
}

func (m *mockUserService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	return m.login(ctx, req)
}

func (m *mockUserService) Profile(ctx context.Context, userID string) (domain.UserResponse, error) {
	return m.profile(ctx, userID)
}

func (m *mockUserService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	return m.forgotPassword(ctx, req)
}

func (m *mockUserService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	return m.resetPassword(ctx, req)
}

// newTestApp mounts the full route table over mocked services and returns
// a bearer header accepted by the real auth middleware.
func newTestApp(t *testing.T, recipeSvc recipe.RecipeService, userSvc user.UserService) (*fiber.App, string, string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")
	utils.InitValidator()

	jwtService := jwt.NewJWTService()
	userID := uuid.NewString()
	token := jwtService.GenerateTokenUser(userID)

	app := fiber.New()
	cfg := routes.Config{
		App:           app,
		UserHandler:   handlers.NewUserHandler(userSvc, utils.Validate),
		RecipeHandler: handlers.NewRecipeHandler(recipeSvc, utils.Validate),
		Middleware:    middleware.NewMiddleware(),
		JWTService:    jwtService,
	}
	cfg.Setup()

	return app, "Bearer " + token, userID
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestCreateRecipeMissingFields(t *testing.T) {
	svc := &mockRecipeService{
		createRecipe: func(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
			t.Fatal("service must not run for an invalid body")
			return domain.RecipeResponse{}, nil
		},
	}
	app, auth, _ := newTestApp(t, svc, &mockUserService{})

	req := jsonRequest(http.MethodPost, "/api/recipes/", map[string]string{"title": "only a title"})
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("got status %d, want 400", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	if body.Error != domain.MessageFailedCreateRecipe {
		t.Errorf("got error %q", body.Error)
	}
}

func TestCreateRecipeSuccess(t *testing.T) {
	var gotUserID string
	svc := &mockRecipeService{
		createRecipe: func(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
			gotUserID = userID
			return domain.RecipeResponse{ID: uuid.NewString(), Title: req.Title}, nil
		},
	}
	app, auth, userID := newTestApp(t, svc, &mockUserService{})

	req := jsonRequest(http.MethodPost, "/api/recipes/", domain.CreateRecipeRequest{
		Title:       "Tomato soup",
		Ingredients: "tomatoes, salt",
		Steps:       "simmer",
	})
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("got status %d, want 201", resp.StatusCode)
	}
	if gotUserID != userID {
		t.Errorf("recipe created for %q, want %q", gotUserID, userID)
	}

	var body struct {
		Recipe domain.RecipeResponse `json:"recipe"`
	}
	decodeBody(t, resp, &body)
	if body.Recipe.Title != "Tomato soup" {
		t.Errorf("got recipe %+v", body.Recipe)
	}
}

func TestUpdateRecipeStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"missing recipe", domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{"not owner", domain.ErrNotRecipeOwner, fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRecipeService{
				updateRecipe: func(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
					return domain.RecipeResponse{}, tt.serviceErr
				},
			}
			app, auth, _ := newTestApp(t, svc, &mockUserService{})

			req := jsonRequest(http.MethodPut, "/api/recipes/"+uuid.NewString(), map[string]string{"title": "x"})
			req.Header.Set("Authorization", auth)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("got status %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestLikeRecipeConflict(t *testing.T) {
	svc := &mockRecipeService{
		likeRecipe: func(ctx context.Context, recipeID, userID string) error {
			return domain.ErrAlreadyLiked
		},
	}
	app, auth, _ := newTestApp(t, svc, &mockUserService{})

	req := httptest.NewRequest(http.MethodPost, "/api/recipes/"+uuid.NewString()+"/like", nil)
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("got status %d, want 400", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	if body.Error != domain.ErrAlreadyLiked.Error() {
		t.Errorf("got error %q", body.Error)
	}
}

func TestGetLikesEmptyList(t *testing.T) {
	svc := &mockRecipeService{
		getLikedRecipeIDs: func(ctx context.Context, userID string) ([]string, error) {
			return nil, nil
		},
	}
	app, auth, _ := newTestApp(t, svc, &mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/likes", nil)
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}

	// The payload carries an empty array, never null.
	var body struct {
		RecipeIDs []string `json:"recipeIds"`
	}
	decodeBody(t, resp, &body)
	if body.RecipeIDs == nil || len(body.RecipeIDs) != 0 {
		t.Errorf("got recipeIds %#v, want []", body.RecipeIDs)
	}
}

func TestDeleteCommentNotAuthor(t *testing.T) {
	svc := &mockRecipeService{
		deleteComment: func(ctx context.Context, commentID, userID string) error {
			return domain.ErrNotCommentAuthor
		},
	}
	app, auth, _ := newTestApp(t, svc, &mockUserService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/recipes/comment/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("got status %d, want 403", resp.StatusCode)
	}
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	svc := &mockRecipeService{
		getMyRecipes: func(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
			t.Fatal("service must not run without a token")
			return nil, nil
		},
	}
	app, _, _ := newTestApp(t, svc, &mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/my-recipes", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", resp.StatusCode)
	}
}

func TestGetRecipesIsPublic(t *testing.T) {
	svc := &mockRecipeService{
		getRecipes: func(ctx context.Context, search string) ([]domain.RecipeResponse, error) {
			return []domain.RecipeResponse{{ID: uuid.NewString(), Title: "public soup"}}, nil
		},
	}
	app, _, _ := newTestApp(t, svc, &mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}
}

func TestGetRecipesForwardsSearch(t *testing.T) {
	var gotSearch string
	svc := &mockRecipeService{
		getRecipes: func(ctx context.Context, search string) ([]domain.RecipeResponse, error) {
			gotSearch = search
			return nil, nil
		},
	}
	app, _, _ := newTestApp(t, svc, &mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/?search=tomato", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}
	if gotSearch != "tomato" {
		t.Errorf("got search %q", gotSearch)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	userSvc := &mockUserService{
		login: func(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
			return domain.AuthResponse{}, domain.ErrCredentialsNotMatched
		},
	}
	app, _, _ := newTestApp(t, &mockRecipeService{}, userSvc)

	req := jsonRequest(http.MethodPost, "/api/auth/login", domain.LoginRequest{
		Email:    "cook@example.com",
		Password: "wrong",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", resp.StatusCode)
	}
}

func TestRegisterReturnsTokenAndUser(t *testing.T) {
	userSvc := &mockUserService{
		register: func(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
			return domain.AuthResponse{
				Token: "session-token",
				User:  domain.UserResponse{ID: uuid.NewString(), Username: req.Username, Email: req.Email},
			}, nil
		},
	}
	app, _, _ := newTestApp(t, &mockRecipeService{}, userSvc)

	req := jsonRequest(http.MethodPost, "/api/auth/register", domain.RegisterRequest{
		Username: "cook",
		Email:    "cook@example.com",
		Password: "secret123",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("got status %d, want 201", resp.StatusCode)
	}

	var body domain.AuthResponse
	decodeBody(t, resp, &body)
	if body.Token != "session-token" || body.User.Username != "cook" {
		t.Errorf("got body %+v", body)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t, &mockRecipeService{}, &mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	decodeBody(t, resp, &body)
	if body.Status != "OK" {
		t.Errorf("got status %q", body.Status)
	}
}
