package migration

import (
	"fmt"
	"log"

	"recipeshare/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeLike{}); err != nil {
		log.Fatalf("Error migrating recipe like table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeFavorite{}); err != nil {
		log.Fatalf("Error migrating recipe favorite table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeComment{}); err != nil {
		log.Fatalf("Error migrating recipe comment table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
