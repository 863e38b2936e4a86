package main

import (
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/recipe-sharing-api/internal/config"
	"github.com/yukikurage/recipe-sharing-api/internal/database"
	"github.com/yukikurage/recipe-sharing-api/internal/models"
	"github.com/yukikurage/recipe-sharing-api/internal/utils"
)

// Seeds the database with demo users and recipes. Drops existing tables first.
func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := database.Connect(cfg); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	db := database.GetDB()

	// Clear existing data
	if err := db.Migrator().DropTable(&models.Recipe{}, &models.User{}); err != nil {
		logrus.Fatalf("Failed to drop tables: %v", err)
	}
	if err := database.Migrate(); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	passwordHash, err := utils.HashPassword("password123")
	if err != nil {
		logrus.Fatalf("Failed to hash seed password: %v", err)
	}

	users := []models.User{
		{
			Username:     "chef_john",
			PasswordHash: passwordHash,
			ImageURL:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150",
			Bio:          "Professional chef with 10 years of experience in French and Italian cuisine.",
		},
		{
			Username:     "baking_betty",
			PasswordHash: passwordHash,
			ImageURL:     "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150",
			Bio:          "Home baker and dessert enthusiast specializing in cakes and pastries.",
		},
		{
			Username:     "healthy_harry",
			PasswordHash: passwordHash,
			ImageURL:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150",
			Bio:          "Certified nutritionist and healthy cooking advocate focused on plant-based recipes.",
		},
	}

	if err := db.Create(&users).Error; err != nil {
		logrus.Fatalf("Failed to seed users: %v", err)
	}

	recipes := []models.Recipe{
		{
			Title: "Classic Chocolate Chip Cookies",
			Instructions: "Preheat oven to 375F. Whisk together flour, baking soda, and salt. " +
				"Beat softened butter with granulated sugar, brown sugar, and vanilla until creamy. " +
				"Add eggs one at a time, then gradually beat in the flour mixture and stir in chocolate chips. " +
				"Drop by rounded tablespoon onto ungreased baking sheets and bake for 9 to 11 minutes until golden brown.",
			MinutesToComplete: 30,
			UserID:            &users[1].ID,
		},
		{
			Title: "Vegetable Stir Fry",
			Instructions: "Heat oil in a large wok over high heat. Add minced garlic and grated ginger, stir for 30 seconds. " +
				"Add broccoli florets, sliced bell pepper, and carrots, stir-fry for 4-5 minutes until tender-crisp. " +
				"Add soy sauce, sesame oil, and sugar, then snow peas for another 2 minutes. Serve over rice or noodles.",
			MinutesToComplete: 20,
			UserID:            &users[2].ID,
		},
		{
			Title: "Homemade Pizza Dough",
			Instructions: "Combine warm water, active dry yeast, and sugar; let sit for 5 minutes until foamy. " +
				"Add flour, salt, and olive oil and mix until a dough forms. Knead for 8-10 minutes until smooth, " +
				"then let rise covered for 1-2 hours until doubled. Roll out, add toppings, and bake at 475F for 12-15 minutes.",
			MinutesToComplete: 90,
			UserID:            &users[0].ID,
		},
		{
			Title: "Creamy Tomato Soup",
			Instructions: "Heat olive oil in a large pot over medium heat. Cook chopped onion and minced garlic until soft. " +
				"Add crushed tomatoes, vegetable broth, heavy cream, and sugar. Simmer for 20 minutes, " +
				"then puree with an immersion blender until smooth. Season with salt and pepper and serve hot.",
			MinutesToComplete: 35,
			UserID:            &users[0].ID,
		},
		{
			Title: "Banana Bread",
			Instructions: "Preheat oven to 350F and grease a loaf pan. Mash ripe bananas, then mix in melted butter, " +
				"sugar, a beaten egg, and vanilla. Whisk flour, baking soda, and salt in another bowl and stir into " +
				"the banana mixture until just combined. Bake for 60-65 minutes until a toothpick comes out clean.",
			MinutesToComplete: 75,
			UserID:            &users[1].ID,
		},
	}

	if err := db.Create(&recipes).Error; err != nil {
		logrus.Fatalf("Failed to seed recipes: %v", err)
	}

	logrus.Infof("Database seeded successfully: %d users, %d recipes", len(users), len(recipes))
}
