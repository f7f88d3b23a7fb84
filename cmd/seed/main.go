package main

import (
	"log"
	"os"

	"ai-chatapp-be/internal/model"
	"ai-chatapp-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	defer database.Close(db)

	color.Cyan("Seeding demo data...")

	// Demo user
	var demo model.User
	if err := db.Where("email = ?", "demo@example.com").First(&demo).Error; err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Error: hashing demo password:", err)
		}
		hashStr := string(hash)
		demo = model.User{
			Email:        "demo@example.com",
			Name:         "Demo User",
			PasswordHash: &hashStr,
			Role:         "user",
		}
		if err := db.Create(&demo).Error; err != nil {
			log.Fatal("Error: creating demo user:", err)
		}
		color.Green("Created demo user demo@example.com (password: demo1234)")
	} else {
		color.Yellow("Demo user already exists, skipping")
	}

	// Public starter templates
	templates := []model.PromptTemplate{
		{
			UserId:      demo.Id,
			Name:        "プログラミングアシスタント",
			Description: strPtr("コードの説明、レビュー、デバッグを手伝います"),
			Category:    strPtr("development"),
			Content:     "あなたは経験豊富なソフトウェアエンジニアです。コードの質問に対して、具体例を添えて簡潔に答えてください。",
			IsPublic:    true,
		},
		{
			UserId:      demo.Id,
			Name:        "翻訳アシスタント",
			Description: strPtr("日本語と英語の自然な翻訳を行います"),
			Category:    strPtr("language"),
			Content:     "あなたはプロの翻訳者です。入力された文章を、文脈に合った自然な表現で翻訳してください。",
			IsPublic:    true,
		},
		{
			UserId:      demo.Id,
			Name:        "文章要約",
			Description: strPtr("長い文章を要点だけにまとめます"),
			Category:    strPtr("writing"),
			Content:     "入力された文章を3〜5個の箇条書きに要約してください。重要な数字や固有名詞は落とさないでください。",
			IsPublic:    true,
		},
	}

	for _, t := range templates {
		var existing model.PromptTemplate
		if err := db.Where("user_id = ? AND name = ?", t.UserId, t.Name).First(&existing).Error; err == nil {
			color.Yellow("Template %q already exists, skipping", t.Name)
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating template %q: %v", t.Name, err)
		} else {
			color.Green("Created template: %s", t.Name)
		}
	}

	color.Cyan("Seeding completed")
}
