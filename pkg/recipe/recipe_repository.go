package recipe

import (
	"context"

	"recipeshare/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, search string) ([]*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error

		GetLikeCounts(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]int64, error)
		GetCommentCounts(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]int64, error)

		CreateLike(ctx context.Context, like *entities.RecipeLike) error
		DeleteLike(ctx context.Context, recipeID, userID string) error
		GetLikedRecipeIDs(ctx context.Context, userID string) ([]string, error)

		CreateFavorite(ctx context.Context, favorite *entities.RecipeFavorite) error
		DeleteFavorite(ctx context.Context, recipeID, userID string) error
		GetFavoriteRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)

		CreateComment(ctx context.Context, comment *entities.RecipeComment) error
		GetCommentByID(ctx context.Context, id string) (*entities.RecipeComment, error)
		GetComments(ctx context.Context, recipeID string) ([]*entities.RecipeComment, error)
		DeleteComment(ctx context.Context, id string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, search string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	query := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC")

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR ingredients ILIKE ?", pattern, pattern)
	}

	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Recipe{}).Error
}

type countRow struct {
	RecipeID uuid.UUID
	Total    int64
}

func (r *recipeRepository) GetLikeCounts(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.countByRecipe(ctx, &entities.RecipeLike{}, recipeIDs)
}

func (r *recipeRepository) GetCommentCounts(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.countByRecipe(ctx, &entities.RecipeComment{}, recipeIDs)
}

func (r *recipeRepository) countByRecipe(ctx context.Context, model interface{}, recipeIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	if err := r.db.WithContext(ctx).
		Model(model).
		Select("recipe_id, count(*) as total").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.RecipeID] = row.Total
	}
	return counts, nil
}

func (r *recipeRepository) CreateLike(ctx context.Context, like *entities.RecipeLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *recipeRepository) DeleteLike(ctx context.Context, recipeID, userID string) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&entities.RecipeLike{}).Error
}

func (r *recipeRepository) GetLikedRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("user_id = ?", userID).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *recipeRepository) CreateFavorite(ctx context.Context, favorite *entities.RecipeFavorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *recipeRepository) DeleteFavorite(ctx context.Context, recipeID, userID string) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&entities.RecipeFavorite{}).Error
}

func (r *recipeRepository) GetFavoriteRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Where("recipe_favorites.user_id = ?", userID).
		Order("recipe_favorites.created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CreateComment(ctx context.Context, comment *entities.RecipeComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *recipeRepository) GetCommentByID(ctx context.Context, id string) (*entities.RecipeComment, error) {
	var comment entities.RecipeComment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *recipeRepository) GetComments(ctx context.Context, recipeID string) ([]*entities.RecipeComment, error) {
	var comments []*entities.RecipeComment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *recipeRepository) DeleteComment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.RecipeComment{}).Error
}
