package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Ingredients string    `gorm:"type:text;not null" json:"ingredients"`
	Steps       string    `gorm:"type:text;not null" json:"steps"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedBy   uuid.UUID `json:"created_by"`

	User *User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE"`
	Timestamp
}

type RecipeLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_recipe_like_pair" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_recipe_like_pair" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type RecipeFavorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_recipe_favorite_pair" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_recipe_favorite_pair" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type RecipeComment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"index" json:"recipe_id"`
	UserID    uuid.UUID `json:"user_id"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
