package domain

import (
	"errors"
	"time"
)

var (
	MessageRecipeDeleted      = "Recipe deleted successfully"
	MessageRecipeLiked        = "Recipe liked successfully"
	MessageRecipeUnliked      = "Recipe unliked successfully"
	MessageRecipeFavorited    = "Recipe added to favorites"
	MessageRecipeUnfavorited  = "Recipe removed from favorites"
	MessageCommentDeleted     = "Comment deleted successfully"
	MessageFailedFetchRecipes = "failed to fetch recipes"
	MessageFailedCreateRecipe = "title, ingredients, and steps are required"
	MessageFailedUploadImage  = "no image file provided"

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrNotRecipeOwner    = errors.New("unauthorized to modify this recipe")
	ErrAlreadyLiked      = errors.New("recipe already liked")
	ErrAlreadyFavorited  = errors.New("recipe already in favorites")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrNotCommentAuthor  = errors.New("unauthorized to delete this comment")
	ErrCommentRequired   = errors.New("comment text is required")
	ErrImageFileRequired = errors.New("no image file provided")
)

type (
	CreateRecipeRequest struct {
		Title       string `json:"title" validate:"required"`
		Ingredients string `json:"ingredients" validate:"required"`
		Steps       string `json:"steps" validate:"required"`
		ImageURL    string `json:"image_url" validate:"omitempty,url"`
	}

	UpdateRecipeRequest struct {
		Title       string `json:"title"`
		Ingredients string `json:"ingredients"`
		Steps       string `json:"steps"`
		ImageURL    string `json:"image_url" validate:"omitempty,url"`
	}

	AddCommentRequest struct {
		Comment string `json:"comment" validate:"required"`
	}

	RecipeAuthor struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}

	RecipeResponse struct {
		ID           string       `json:"id"`
		Title        string       `json:"title"`
		Ingredients  string       `json:"ingredients"`
		Steps        string       `json:"steps"`
		ImageURL     string       `json:"image_url,omitempty"`
		CreatedBy    string       `json:"created_by"`
		CreatedAt    time.Time    `json:"created_at"`
		Author       RecipeAuthor `json:"author"`
		LikeCount    int64        `json:"like_count"`
		CommentCount int64        `json:"comment_count"`
	}

	CommentResponse struct {
		ID        string       `json:"id"`
		RecipeID  string       `json:"recipe_id"`
		Comment   string       `json:"comment"`
		CreatedAt time.Time    `json:"created_at"`
		Author    RecipeAuthor `json:"author"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Comments []CommentResponse `json:"comments"`
	}
)
