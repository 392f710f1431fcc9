package client

import (
	"context"
	"errors"

	"recipeshare/domain"
)

// DetailState is the single-recipe view model. Like/favorite state here is
// a pair of booleans local to the view, and every mutation refetches the
// recipe instead of reconciling locally, so counts and comments always
// reflect the server after an action.
type DetailState struct {
	api      *Client
	recipeID string

	recipe    *domain.RecipeDetailResponse
	liked     bool
	favorited bool
}

func NewDetailState(api *Client, recipeID string) *DetailState {
	return &DetailState{api: api, recipeID: recipeID}
}

func (d *DetailState) Load(ctx context.Context) error {
	payload, err := d.api.GetRecipe(ctx, d.recipeID)
	if err != nil {
		return err
	}
	if payload.Error != "" {
		return errors.New(payload.Error)
	}
	d.recipe = &payload.Recipe
	return nil
}

func (d *DetailState) Recipe() *domain.RecipeDetailResponse { return d.recipe }
func (d *DetailState) IsLiked() bool                        { return d.liked }
func (d *DetailState) IsFavorited() bool                    { return d.favorited }

func (d *DetailState) ToggleLike(ctx context.Context) error {
	var payload MessagePayload
	var err error
	if d.liked {
		payload, err = d.api.UnlikeRecipe(ctx, d.recipeID)
	} else {
		payload, err = d.api.LikeRecipe(ctx, d.recipeID)
	}
	if err != nil {
		return err
	}
	if payload.Error != "" {
		return errors.New(payload.Error)
	}

	d.liked = !d.liked
	return d.Load(ctx)
}

func (d *DetailState) ToggleFavorite(ctx context.Context) error {
	var payload MessagePayload
	var err error
	if d.favorited {
		payload, err = d.api.UnfavoriteRecipe(ctx, d.recipeID)
	} else {
		payload, err = d.api.FavoriteRecipe(ctx, d.recipeID)
	}
	if err != nil {
		return err
	}
	if payload.Error != "" {
		return errors.New(payload.Error)
	}

	d.favorited = !d.favorited
	return d.Load(ctx)
}

func (d *DetailState) AddComment(ctx context.Context, comment string) error {
	payload, err := d.api.AddComment(ctx, d.recipeID, comment)
	if err != nil {
		return err
	}
	if payload.Error != "" {
		return errors.New(payload.Error)
	}
	return d.Load(ctx)
}

func (d *DetailState) DeleteComment(ctx context.Context, commentID string) error {
	payload, err := d.api.DeleteComment(ctx, commentID)
	if err != nil {
		return err
	}
	if payload.Error != "" {
		return errors.New(payload.Error)
	}
	return d.Load(ctx)
}
