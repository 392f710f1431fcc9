package recipe

import (
	"context"
	"errors"
	"mime/multipart"

	"recipeshare/domain"
	"recipeshare/entities"
	"recipeshare/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, search string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		GetMyRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)

		LikeRecipe(ctx context.Context, recipeID, userID string) error
		UnlikeRecipe(ctx context.Context, recipeID, userID string) error
		GetLikedRecipeIDs(ctx context.Context, userID string) ([]string, error)

		FavoriteRecipe(ctx context.Context, recipeID, userID string) error
		UnfavoriteRecipe(ctx context.Context, recipeID, userID string) error
		GetFavorites(ctx context.Context, userID string) ([]domain.RecipeResponse, error)

		AddComment(ctx context.Context, recipeID string, req domain.AddCommentRequest, userID string) (domain.CommentResponse, error)
		DeleteComment(ctx context.Context, commentID, userID string) error

		UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, search string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, search)
	if err != nil {
		return nil, err
	}
	return s.toRecipeResponses(ctx, recipes)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	responses, err := s.toRecipeResponses(ctx, []*entities.Recipe{recipe})
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	comments, err := s.recipeRepository.GetComments(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	detail := domain.RecipeDetailResponse{
		RecipeResponse: responses[0],
		Comments:       make([]domain.CommentResponse, 0, len(comments)),
	}
	for _, comment := range comments {
		detail.Comments = append(detail.Comments, toCommentResponse(comment))
	}
	return detail, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	creator, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := entities.Recipe{
		Title:       req.Title,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		ImageURL:    req.ImageURL,
		CreatedBy:   creator,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	// Reload so the author join is present in the response.
	created, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(created, 0, 0), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Ingredients != "" {
		recipe.Ingredients = req.Ingredients
	}
	if req.Steps != "" {
		recipe.Steps = req.Steps
	}
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	responses, err := s.toRecipeResponses(ctx, []*entities.Recipe{recipe})
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return responses[0], nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe.ID.String()); err != nil {
		return err
	}

	// Stored image is orphaned once the recipe row is gone.
	if recipe.ImageURL != "" {
		if key := s.s3.GetObjectKeyFromLink(recipe.ImageURL); key != "" {
			_ = s.s3.DeleteFile(key)
		}
	}
	return nil
}

func (s *recipeService) GetMyRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toRecipeResponses(ctx, recipes)
}

func (s *recipeService) LikeRecipe(ctx context.Context, recipeID, userID string) error {
	like, err := s.interactionPair(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.CreateLike(ctx, &entities.RecipeLike{
		RecipeID: like.recipeID,
		UserID:   like.userID,
	}); err != nil {
		// The composite unique index is the duplicate guard; no pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (s *recipeService) UnlikeRecipe(ctx context.Context, recipeID, userID string) error {
	return s.recipeRepository.DeleteLike(ctx, recipeID, userID)
}

func (s *recipeService) GetLikedRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	return s.recipeRepository.GetLikedRecipeIDs(ctx, userID)
}

func (s *recipeService) FavoriteRecipe(ctx context.Context, recipeID, userID string) error {
	favorite, err := s.interactionPair(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.CreateFavorite(ctx, &entities.RecipeFavorite{
		RecipeID: favorite.recipeID,
		UserID:   favorite.userID,
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

func (s *recipeService) UnfavoriteRecipe(ctx context.Context, recipeID, userID string) error {
	return s.recipeRepository.DeleteFavorite(ctx, recipeID, userID)
}

func (s *recipeService) GetFavorites(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetFavoriteRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toRecipeResponses(ctx, recipes)
}

func (s *recipeService) AddComment(ctx context.Context, recipeID string, req domain.AddCommentRequest, userID string) (domain.CommentResponse, error) {
	pair, err := s.interactionPair(ctx, recipeID, userID)
	if err != nil {
		return domain.CommentResponse{}, err
	}

	comment := entities.RecipeComment{
		RecipeID: pair.recipeID,
		UserID:   pair.userID,
		Comment:  req.Comment,
	}
	if err := s.recipeRepository.CreateComment(ctx, &comment); err != nil {
		return domain.CommentResponse{}, err
	}

	created, err := s.recipeRepository.GetCommentByID(ctx, comment.ID.String())
	if err != nil {
		return domain.CommentResponse{}, err
	}
	return toCommentResponse(created), nil
}

func (s *recipeService) DeleteComment(ctx context.Context, commentID, userID string) error {
	comment, err := s.recipeRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if comment.UserID.String() != userID {
		return domain.ErrNotCommentAuthor
	}

	return s.recipeRepository.DeleteComment(ctx, commentID)
}

func (s *recipeService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	objectKey, err := s.s3.UploadFile(file.Filename, file, "recipes", storage.AllowImage...)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

// ownedRecipe fetches the recipe and enforces the ownership invariant:
// absent recipe before non-owner, so callers can map 404 before 403.
func (s *recipeService) ownedRecipe(ctx context.Context, recipeID, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.CreatedBy.String() != userID {
		return nil, domain.ErrNotRecipeOwner
	}
	return recipe, nil
}

type interactionIDs struct {
	recipeID uuid.UUID
	userID   uuid.UUID
}

func (s *recipeService) interactionPair(ctx context.Context, recipeID, userID string) (interactionIDs, error) {
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return interactionIDs{}, domain.ErrRecipeNotFound
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return interactionIDs{}, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return interactionIDs{}, domain.ErrRecipeNotFound
		}
		return interactionIDs{}, err
	}
	return interactionIDs{recipeID: rid, userID: uid}, nil
}

func (s *recipeService) toRecipeResponses(ctx context.Context, recipes []*entities.Recipe) ([]domain.RecipeResponse, error) {
	ids := make([]uuid.UUID, 0, len(recipes))
	for _, recipe := range recipes {
		ids = append(ids, recipe.ID)
	}

	likeCounts, err := s.recipeRepository.GetLikeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.recipeRepository.GetCommentCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, toRecipeResponse(recipe, likeCounts[recipe.ID], commentCounts[recipe.ID]))
	}
	return responses, nil
}

func toRecipeResponse(recipe *entities.Recipe, likeCount, commentCount int64) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:           recipe.ID.String(),
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Steps:        recipe.Steps,
		ImageURL:     recipe.ImageURL,
		CreatedBy:    recipe.CreatedBy.String(),
		CreatedAt:    recipe.CreatedAt,
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}
	if recipe.User != nil {
		res.Author = domain.RecipeAuthor{
			ID:       recipe.User.ID.String(),
			Username: recipe.User.Username,
		}
	}
	return res
}

func toCommentResponse(comment *entities.RecipeComment) domain.CommentResponse {
	res := domain.CommentResponse{
		ID:        comment.ID.String(),
		RecipeID:  comment.RecipeID.String(),
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt,
	}
	if comment.User != nil {
		res.Author = domain.RecipeAuthor{
			ID:       comment.User.ID.String(),
			Username: comment.User.Username,
		}
	}
	return res
}
