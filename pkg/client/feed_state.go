package client

import (
	"context"
	"errors"

	"recipeshare/domain"
)

// ToggleState is the lifecycle of one optimistic like/favorite toggle.
// The rollback path is an explicit transition, not inline error handling.
type ToggleState int

const (
	ToggleIdle ToggleState = iota
	TogglePending
	ToggleCommitted
	ToggleRolledBack
)

func (t ToggleState) String() string {
	switch t {
	case TogglePending:
		return "pending"
	case ToggleCommitted:
		return "committed"
	case ToggleRolledBack:
		return "rolled back"
	default:
		return "idle"
	}
}

// ErrTogglePending is returned when a toggle fires while the previous one
// for the same recipe has not settled; at most one mutation is in flight
// per recipe per kind.
var ErrTogglePending = errors.New("toggle already in flight")

// FeedState is the recipe-list view model: the fetched collection plus the
// session user's liked/favorited membership sets. Not safe for concurrent
// use; it models a single view's update flow.
type FeedState struct {
	api *Client

	recipes   []domain.RecipeResponse
	liked     map[string]bool
	favorited map[string]bool
	pending   map[string]bool
}

func NewFeedState(api *Client) *FeedState {
	return &FeedState{
		api:       api,
		liked:     make(map[string]bool),
		favorited: make(map[string]bool),
		pending:   make(map[string]bool),
	}
}

// Load fetches the collection, optionally filtered by a search term.
func (f *FeedState) Load(ctx context.Context, search string) error {
	payload, err := f.api.GetRecipes(ctx, search)
	if err != nil {
		return err
	}
	if payload.Error != "" {
		return errors.New(payload.Error)
	}
	f.recipes = payload.Recipes
	return nil
}

// Prime populates the membership sets from the favorites and likes
// endpoints, once per authenticated session.
func (f *FeedState) Prime(ctx context.Context) error {
	favorites, err := f.api.GetFavorites(ctx)
	if err != nil {
		return err
	}
	likes, err := f.api.GetLikes(ctx)
	if err != nil {
		return err
	}

	f.favorited = make(map[string]bool, len(favorites.Recipes))
	for _, r := range favorites.Recipes {
		f.favorited[r.ID] = true
	}
	f.liked = make(map[string]bool, len(likes.RecipeIDs))
	for _, id := range likes.RecipeIDs {
		f.liked[id] = true
	}
	return nil
}

func (f *FeedState) Recipes() []domain.RecipeResponse { return f.recipes }
func (f *FeedState) IsLiked(recipeID string) bool     { return f.liked[recipeID] }
func (f *FeedState) IsFavorited(recipeID string) bool { return f.favorited[recipeID] }

func (f *FeedState) LikeCount(recipeID string) int64 {
	for i := range f.recipes {
		if f.recipes[i].ID == recipeID {
			return f.recipes[i].LikeCount
		}
	}
	return 0
}

// ToggleLike flips membership and adjusts the displayed count before the
// network call resolves, and reverts both if the call reports an error.
func (f *FeedState) ToggleLike(ctx context.Context, recipeID string) (ToggleState, error) {
	key := "like:" + recipeID
	if f.pending[key] {
		return TogglePending, ErrTogglePending
	}

	wasLiked := f.liked[recipeID]
	originalCount := f.LikeCount(recipeID)

	// Optimistic flip.
	f.pending[key] = true
	f.liked[recipeID] = !wasLiked
	if wasLiked {
		f.setLikeCount(recipeID, max64(0, originalCount-1))
	} else {
		f.setLikeCount(recipeID, originalCount+1)
	}

	var payload MessagePayload
	var err error
	if wasLiked {
		payload, err = f.api.UnlikeRecipe(ctx, recipeID)
	} else {
		payload, err = f.api.LikeRecipe(ctx, recipeID)
	}
	delete(f.pending, key)

	if err != nil || payload.Error != "" {
		// Rollback to the pre-toggle view.
		f.liked[recipeID] = wasLiked
		f.setLikeCount(recipeID, originalCount)
		if err == nil {
			err = errors.New(payload.Error)
		}
		return ToggleRolledBack, err
	}
	return ToggleCommitted, nil
}

// ToggleFavorite follows the same protocol; favorites carry no public
// counter, so only membership flips.
func (f *FeedState) ToggleFavorite(ctx context.Context, recipeID string) (ToggleState, error) {
	key := "favorite:" + recipeID
	if f.pending[key] {
		return TogglePending, ErrTogglePending
	}

	wasFavorited := f.favorited[recipeID]

	f.pending[key] = true
	f.favorited[recipeID] = !wasFavorited

	var payload MessagePayload
	var err error
	if wasFavorited {
		payload, err = f.api.UnfavoriteRecipe(ctx, recipeID)
	} else {
		payload, err = f.api.FavoriteRecipe(ctx, recipeID)
	}
	delete(f.pending, key)

	if err != nil || payload.Error != "" {
		f.favorited[recipeID] = wasFavorited
		if err == nil {
			err = errors.New(payload.Error)
		}
		return ToggleRolledBack, err
	}
	return ToggleCommitted, nil
}

func (f *FeedState) setLikeCount(recipeID string, count int64) {
	for i := range f.recipes {
		if f.recipes[i].ID == recipeID {
			f.recipes[i].LikeCount = count
			return
		}
	}
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
