package database

import (
	"log"
	"os"
	"time"

	"steamviz/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InMemoryDSN is the default database location. The catalog lives and
// dies with the process; the CSV is the only durable artifact. cache=shared
// keeps every pooled connection on the same in-memory database.
const InMemoryDSN = "file::memory:?cache=shared"

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	// Run migrations
	err = DB.AutoMigrate(&models.Game{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
}

// Seed inserts the loaded catalog records. Called once at startup after
// Connect; the table is read-only from then on.
func Seed(games []models.Game) error {
	if len(games) == 0 {
		return nil
	}
	return DB.CreateInBatches(games, 500).Error
}
