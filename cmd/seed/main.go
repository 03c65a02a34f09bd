// Command seed populates the database with demo data. It is idempotent:
// a database that already has users is left untouched.
package main

import (
	"log"
	"log/slog"
	"os"

	"gorm.io/gorm"

	"bookshelf/internal/config"
	"bookshelf/internal/database"
	"bookshelf/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db)

	var existing int64
	if err := db.Model(&models.User{}).Count(&existing).Error; err != nil {
		log.Fatalf("could not inspect database: %v", err)
	}
	if existing > 0 {
		logger.Info("database already seeded, nothing to do")
		return
	}

	if err := seed(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	logger.Info("database seeded")
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		admin := models.User{Username: "admin", Email: "admin@example.com", Password: "admin", Role: "admin"}
		reader := models.User{Username: "reader", Email: "reader@example.com", Password: "reader", Role: "reader"}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		if err := tx.Create(&reader).Error; err != nil {
			return err
		}

		fiction := models.Category{Name: "Fiction", Description: strPtr("Fiction books")}
		science := models.Category{Name: "Science", Description: strPtr("Science books")}
		mystery := models.Category{Name: "Mystery", Description: strPtr("Mystery books")}
		for _, c := range []*models.Category{&fiction, &science, &mystery} {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		}

		doe := models.Author{Name: "John Doe", Bio: strPtr("Sample author"), UserID: &admin.ID}
		smith := models.Author{Name: "Jane Smith", Bio: strPtr("Another author"), UserID: &admin.ID}
		for _, a := range []*models.Author{&doe, &smith} {
			if err := tx.Create(a).Error; err != nil {
				return err
			}
		}

		adventure := models.Book{
			Title:           "The Great Adventure",
			Description:     strPtr("An amazing fictional story"),
			ISBN:            strPtr("1234567890"),
			PublicationYear: intPtr(2023),
			AuthorID:        doe.ID,
			CategoryID:      fiction.ID,
			CreatedBy:       admin.ID,
		}
		explained := models.Book{
			Title:           "Science Explained",
			Description:     strPtr("Understanding the world through science"),
			ISBN:            strPtr("0987654321"),
			PublicationYear: intPtr(2022),
			AuthorID:        smith.ID,
			CategoryID:      science.ID,
			CreatedBy:       admin.ID,
		}
		for _, b := range []*models.Book{&adventure, &explained} {
			if err := tx.Create(b).Error; err != nil {
				return err
			}
		}

		review := models.Review{
			Rating:  5,
			Content: "Could not put it down.",
			UserID:  reader.ID,
			BookID:  adventure.ID,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		collection := models.UserBookCollection{
			UserID: reader.ID,
			BookID: adventure.ID,
			Status: "reading",
		}
		return tx.Create(&collection).Error
	})
}
