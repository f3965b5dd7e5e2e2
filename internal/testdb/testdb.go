// Package testdb builds throwaway databases with the reviews schema and a
// small fixed data set for tests.
package testdb

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emilythestrangee/game-reviews/backend/internal/models"
)

// SQLiteSchema is the sqlite rendition of the externally managed schema.
var SQLiteSchema = []string{
	`CREATE TABLE categories (
		slug TEXT PRIMARY KEY,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE users (
		username TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		avatar_url TEXT
	)`,
	`CREATE TABLE reviews (
		review_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		review_body TEXT NOT NULL,
		designer TEXT,
		review_img_url TEXT,
		votes INTEGER NOT NULL DEFAULT 0,
		category TEXT NOT NULL REFERENCES categories(slug),
		owner TEXT NOT NULL REFERENCES users(username),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE comments (
		comment_id INTEGER PRIMARY KEY AUTOINCREMENT,
		body TEXT NOT NULL,
		review_id INTEGER NOT NULL REFERENCES reviews(review_id) ON DELETE CASCADE,
		author TEXT NOT NULL REFERENCES users(username),
		votes INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// PostgresSchema is the postgres rendition used by integration tests.
var PostgresSchema = []string{
	`CREATE TABLE categories (
		slug VARCHAR PRIMARY KEY,
		description VARCHAR NOT NULL
	)`,
	`CREATE TABLE users (
		username VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		avatar_url VARCHAR
	)`,
	`CREATE TABLE reviews (
		review_id SERIAL PRIMARY KEY,
		title VARCHAR NOT NULL,
		review_body VARCHAR NOT NULL,
		designer VARCHAR,
		review_img_url VARCHAR,
		votes INT NOT NULL DEFAULT 0,
		category VARCHAR NOT NULL REFERENCES categories(slug),
		owner VARCHAR NOT NULL REFERENCES users(username),
		created_at TIMESTAMP DEFAULT NOW()
	)`,
	`CREATE TABLE comments (
		comment_id SERIAL PRIMARY KEY,
		body VARCHAR NOT NULL,
		review_id INT NOT NULL REFERENCES reviews(review_id) ON DELETE CASCADE,
		author VARCHAR NOT NULL REFERENCES users(username),
		votes INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT NOW()
	)`,
}

// Fixture sizes and a few well known rows.
const (
	ReviewCount   = 5
	CommentCount  = 6
	CategoryCount = 4
	UserCount     = 4

	// ReviewWithComments has three comments; ReviewWithoutComments has none.
	ReviewWithComments    = 2
	ReviewWithoutComments = 1
)

func ts(s string) time.Time {
	t, err := time.Parse(time.DateTime, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func str(s string) *string {
	return &s
}

var Categories = []models.Category{
	{Slug: "euro game", Description: "Abstact games that involve little luck"},
	{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
	{Slug: "dexterity", Description: "Games involving physical skill"},
	{Slug: "children's games", Description: "Games suitable for children"},
}

var Users = []models.User{
	{Username: "mallionaire", Name: "haz", AvatarURL: str("https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg")},
	{Username: "philippaclaire9", Name: "philippa", AvatarURL: str("https://avatars2.githubusercontent.com/u/24604688?s=460&v=4")},
	{Username: "bainesface", Name: "sarah", AvatarURL: str("https://avatars2.githubusercontent.com/u/24394918?s=400&v=4")},
	{Username: "dav3rid", Name: "dave", AvatarURL: str("https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png")},
}

var Reviews = []models.Review{
	{Title: "Agricola", Designer: str("Uwe Rosenberg"), Owner: "mallionaire", ReviewImgURL: str("https://images.pexels.com/photos/974314/pexels-photo-974314.jpeg"), ReviewBody: "Farmyard fun!", Category: "euro game", Votes: 1, CreatedAt: ts("2021-01-18 10:00:20")},
	{Title: "Jenga", Designer: str("Leslie Scott"), Owner: "philippaclaire9", ReviewImgURL: str("https://images.pexels.com/photos/4473494/pexels-photo-4473494.jpeg"), ReviewBody: "Fiddly fun for all the family", Category: "dexterity", Votes: 5, CreatedAt: ts("2021-01-18 10:01:41")},
	{Title: "Ultimate Werewolf", Designer: str("Akihisa Okui"), Owner: "bainesface", ReviewImgURL: str("https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg"), ReviewBody: "We couldn't find the werewolf!", Category: "social deduction", Votes: 7, CreatedAt: ts("2021-01-18 10:02:41")},
	{Title: "Dolphin Pictionary", Designer: str("Gamey McGameface"), Owner: "mallionaire", ReviewImgURL: str("https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg"), ReviewBody: "Balancing a pencil on a fin", Category: "dexterity", Votes: 3, CreatedAt: ts("2021-01-22 11:35:50")},
	{Title: "Proident tempor et.", Designer: str("Seymour Buttz"), Owner: "dav3rid", ReviewImgURL: str("https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg"), ReviewBody: "Labore occaecat sunt qui commodo anim anim aliqua", Category: "social deduction", Votes: 10, CreatedAt: ts("2021-01-07 09:06:08")},
}

var Comments = []models.Comment{
	{Body: "I loved this game too!", ReviewID: 2, Author: "bainesface", Votes: 16, CreatedAt: ts("2017-11-22 12:43:33")},
	{Body: "My dog loved this game too!", ReviewID: 3, Author: "mallionaire", Votes: 13, CreatedAt: ts("2021-01-18 10:09:05")},
	{Body: "I didn't know dogs could play games", ReviewID: 3, Author: "philippaclaire9", Votes: 10, CreatedAt: ts("2021-01-18 10:09:48")},
	{Body: "EPIC board game!", ReviewID: 2, Author: "bainesface", Votes: 16, CreatedAt: ts("2017-11-22 12:36:03")},
	{Body: "Now this is a story all about how, board games turned my life upside down", ReviewID: 2, Author: "mallionaire", Votes: 13, CreatedAt: ts("2021-01-18 10:24:05")},
	{Body: "Not sure about dogs, but my cat likes to get involved with board games", ReviewID: 3, Author: "philippaclaire9", Votes: 10, CreatedAt: ts("2021-03-27 19:48:58")},
}

// New opens an in-memory sqlite database, creates the schema and seeds it.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// every pooled connection to :memory: is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Apply(db, SQLiteSchema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("failed to seed database: %v", err)
	}
	return db
}

// Apply runs each statement in order.
func Apply(db *gorm.DB, statements []string) error {
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// Seed inserts copies of the fixture rows so callers never see generated ids
// written back into the package level slices.
func Seed(db *gorm.DB) error {
	categories := append([]models.Category(nil), Categories...)
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	users := append([]models.User(nil), Users...)
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	for _, r := range Reviews {
		review := r
		if err := db.Create(&review).Error; err != nil {
			return err
		}
	}
	for _, c := range Comments {
		comment := c
		if err := db.Create(&comment).Error; err != nil {
			return err
		}
	}
	return nil
}
