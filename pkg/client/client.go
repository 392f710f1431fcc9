// Package client is a Go consumer of the recipeshare REST API. It mirrors
// the server's wire format: calls return the parsed body for any HTTP
// status, and callers check the payload's Error field instead of handling
// status codes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"recipeshare/domain"
)

type (
	// TokenStore is the persistence port for the session token.
	TokenStore interface {
		Read() (string, error)
		Write(token string) error
		Clear() error
	}

	Client struct {
		baseURL string
		http    *http.Client
		tokens  TokenStore
	}
)

// New builds a client rooted at baseURL (e.g. "http://localhost:5000/api").
// The token store is consulted on every request, so a login performed
// through the same store takes effect immediately.
func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		tokens:  tokens,
	}
}

type (
	AuthPayload struct {
		Token string              `json:"token"`
		User  domain.UserResponse `json:"user"`
		Error string              `json:"error,omitempty"`
	}

	ProfilePayload struct {
		User  domain.UserResponse `json:"user"`
		Error string              `json:"error,omitempty"`
	}

	RecipesPayload struct {
		Recipes []domain.RecipeResponse `json:"recipes"`
		Error   string                  `json:"error,omitempty"`
	}

	RecipePayload struct {
		Recipe domain.RecipeResponse `json:"recipe"`
		Error  string                `json:"error,omitempty"`
	}

	RecipeDetailPayload struct {
		Recipe domain.RecipeDetailResponse `json:"recipe"`
		Error  string                      `json:"error,omitempty"`
	}

	CommentPayload struct {
		Comment domain.CommentResponse `json:"comment"`
		Error   string                 `json:"error,omitempty"`
	}

	LikesPayload struct {
		RecipeIDs []string `json:"recipeIds"`
		Error     string   `json:"error,omitempty"`
	}

	UploadPayload struct {
		ImageURL string `json:"image_url"`
		Error    string `json:"error,omitempty"`
	}

	MessagePayload struct {
		Message string `json:"message"`
		Error   string `json:"error,omitempty"`
	}
)

func (c *Client) Register(ctx context.Context, username, email, password string) (AuthPayload, error) {
	var out AuthPayload
	err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthPayload, error) {
	var out AuthPayload
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

func (c *Client) GetProfile(ctx context.Context) (ProfilePayload, error) {
	var out ProfilePayload
	err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &out)
	return out, err
}

func (c *Client) GetRecipes(ctx context.Context, search string) (RecipesPayload, error) {
	path := "/recipes"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var out RecipesPayload
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) GetRecipe(ctx context.Context, recipeID string) (RecipeDetailPayload, error) {
	var out RecipeDetailPayload
	err := c.do(ctx, http.MethodGet, "/recipes/"+recipeID, nil, &out)
	return out, err
}

func (c *Client) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (RecipePayload, error) {
	var out RecipePayload
	err := c.do(ctx, http.MethodPost, "/recipes", req, &out)
	return out, err
}

func (c *Client) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (RecipePayload, error) {
	var out RecipePayload
	err := c.do(ctx, http.MethodPut, "/recipes/"+recipeID, req, &out)
	return out, err
}

func (c *Client) DeleteRecipe(ctx context.Context, recipeID string) (MessagePayload, error) {
	var out MessagePayload
	err := c.do(ctx, http.MethodDelete, "/recipes/"+recipeID, nil, &out)
	return out, err
}

func (c *Client) GetMyRecipes(ctx context.Context) (RecipesPayload, error) {
	var out RecipesPayload
	err := c.do(ctx, http.MethodGet, "/recipes/my-recipes", nil, &out)
	return out, err
}

func (c *Client) LikeRecipe(ctx context.Context, recipeID string) (MessagePayload, error) {
	var out MessagePayload
	err := c.do(ctx, http.MethodPost, "/recipes/"+recipeID+"/like", nil, &out)
	return out, err
}

func (c *Client) UnlikeRecipe(ctx context.Context, recipeID string) (MessagePayload, error) {
	var out MessagePayload
	err := c.do(ctx, http.MethodDelete, "/recipes/"+recipeID+"/like", nil, &out)
	return out, err
}

func (c *Client) FavoriteRecipe(ctx context.Context, recipeID string) (MessagePayload, error) {
	var out MessagePayload
	err := c.do(ctx, http.MethodPost, "/recipes/"+recipeID+"/favorite", nil, &out)
	return out, err
}

func (c *Client) UnfavoriteRecipe(ctx context.Context, recipeID string) (MessagePayload, error) {
	var out MessagePayload
	err := c.do(ctx, http.MethodDelete, "/recipes/"+recipeID+"/favorite", nil, &out)
	return out, err
}

func (c *Client) AddComment(ctx context.Context, recipeID, comment string) (CommentPayload, error) {
	var out CommentPayload
	err := c.do(ctx, http.MethodPost, "/recipes/"+recipeID+"/comment", map[string]string{"comment": comment}, &out)
	return out, err
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) (MessagePayload, error) {
	var out MessagePayload
	err := c.do(ctx, http.MethodDelete, "/recipes/comment/"+commentID, nil, &out)
	return out, err
}

func (c *Client) GetFavorites(ctx context.Context) (RecipesPayload, error) {
	var out RecipesPayload
	err := c.do(ctx, http.MethodGet, "/recipes/favorites", nil, &out)
	return out, err
}

func (c *Client) GetLikes(ctx context.Context) (LikesPayload, error) {
	var out LikesPayload
	err := c.do(ctx, http.MethodGet, "/recipes/likes", nil, &out)
	return out, err
}

func (c *Client) UploadImage(ctx context.Context, fileName string, file io.Reader) (UploadPayload, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", fileName)
	if err != nil {
		return UploadPayload{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return UploadPayload{}, err
	}
	if err := writer.Close(); err != nil {
		return UploadPayload{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recipes/upload-image", &body)
	if err != nil {
		return UploadPayload{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.attachToken(req)

	var out UploadPayload
	if err := c.send(req, &out); err != nil {
		return UploadPayload{}, err
	}
	return out, nil
}

// do issues the request and decodes the body into out regardless of status.
// Only transport failures surface as errors.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachToken(req)

	return c.send(req, out)
}

func (c *Client) attachToken(req *http.Request) {
	token, err := c.tokens.Read()
	if err != nil || token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
