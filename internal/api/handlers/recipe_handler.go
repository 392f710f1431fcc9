package handlers

import (
	"errors"

	"recipeshare/domain"
	"recipeshare/internal/api/presenters"
	"recipeshare/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetMyRecipes(c *fiber.Ctx) error

		LikeRecipe(c *fiber.Ctx) error
		UnlikeRecipe(c *fiber.Ctx) error
		GetLikes(c *fiber.Ctx) error

		FavoriteRecipe(c *fiber.Ctx) error
		UnfavoriteRecipe(c *fiber.Ctx) error
		GetFavorites(c *fiber.Ctx) error

		AddComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error

		UploadImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	search := c.Query("search", "")

	recipes, err := h.recipeService.GetRecipes(c.Context(), search)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchRecipes)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"recipes": recipes})
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, err.Error())
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"recipe": res})
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"recipe": res})
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req, userID)
	if err != nil {
		return ownershipError(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"recipe": res})
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID, userID); err != nil {
		return ownershipError(c, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageRecipeDeleted)
}

func (h *recipeHandler) GetMyRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipes, err := h.recipeService.GetMyRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchRecipes)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"recipes": recipes})
}

func (h *recipeHandler) LikeRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.LikeRecipe(c.Context(), recipeID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyLiked):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrRecipeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, err.Error())
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
		}
	}

	return presenters.MessageResponse(c, fiber.StatusCreated, domain.MessageRecipeLiked)
}

func (h *recipeHandler) UnlikeRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.UnlikeRecipe(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageRecipeUnliked)
}

func (h *recipeHandler) GetLikes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	ids, err := h.recipeService.GetLikedRecipeIDs(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
	}
	if ids == nil {
		ids = []string{}
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"recipeIds": ids})
}

func (h *recipeHandler) FavoriteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.FavoriteRecipe(c.Context(), recipeID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyFavorited):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrRecipeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, err.Error())
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
		}
	}

	return presenters.MessageResponse(c, fiber.StatusCreated, domain.MessageRecipeFavorited)
}

func (h *recipeHandler) UnfavoriteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.UnfavoriteRecipe(c.Context(), recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageRecipeUnfavorited)
}

func (h *recipeHandler) GetFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipes, err := h.recipeService.GetFavorites(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFetchRecipes)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"recipes": recipes})
}

func (h *recipeHandler) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.AddCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrCommentRequired.Error())
	}

	res, err := h.recipeService.AddComment(c.Context(), recipeID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, err.Error())
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"comment": res})
}

func (h *recipeHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("commentId")

	if err := h.recipeService.DeleteComment(c.Context(), commentID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNotCommentAuthor):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, err.Error())
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
		}
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageCommentDeleted)
}

func (h *recipeHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage)
	}

	imageURL, err := h.recipeService.UploadImage(c.Context(), file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, "failed to upload image")
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"image_url": imageURL})
}

// ownershipError maps the owner-mutation error pair: absent resource wins
// over forbidden.
func ownershipError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotRecipeOwner):
		return presenters.ErrorResponse(c, fiber.StatusForbidden, err.Error())
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
	}
}
