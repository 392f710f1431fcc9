package routes

import (
	"recipeshare/internal/api/handlers"
	"recipeshare/internal/middleware"
	"recipeshare/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Recipes()
	c.Health()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Profile)
		auth.Post("/forgot-password", c.UserHandler.ForgotPassword)
		auth.Post("/reset-password", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Recipes() {
	authRequired := c.Middleware.AuthMiddleware(c.JWTService)
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("/", c.RecipeHandler.GetRecipes)

		// Fixed paths must register before /:id.
		recipes.Get("/my-recipes", authRequired, c.RecipeHandler.GetMyRecipes)
		recipes.Get("/favorites", authRequired, c.RecipeHandler.GetFavorites)
		recipes.Get("/likes", authRequired, c.RecipeHandler.GetLikes)
		recipes.Post("/upload-image", authRequired, c.RecipeHandler.UploadImage)
		recipes.Delete("/comment/:commentId", authRequired, c.RecipeHandler.DeleteComment)

		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Post("/", authRequired, c.RecipeHandler.CreateRecipe)
		recipes.Put("/:id", authRequired, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", authRequired, c.RecipeHandler.DeleteRecipe)

		recipes.Post("/:id/like", authRequired, c.RecipeHandler.LikeRecipe)
		recipes.Delete("/:id/like", authRequired, c.RecipeHandler.UnlikeRecipe)

		recipes.Post("/:id/favorite", authRequired, c.RecipeHandler.FavoriteRecipe)
		recipes.Delete("/:id/favorite", authRequired, c.RecipeHandler.UnfavoriteRecipe)

		recipes.Post("/:id/comment", authRequired, c.RecipeHandler.AddComment)
	}
}

func (c *Config) Health() {
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK"})
	})
}
