package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stroydoc/internal/config"
)

// New открывает единственное на процесс подключение к БД, накатывает
// миграции и заводит служебные учётные записи. Хэндл живёт до остановки
// процесса и передаётся репозиториям явно.
func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Info().Int("attempt", i).Int("max", maxAttempts).Msg("connecting to database")

		db, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
		if err == nil {
			log.Info().Msg("connected to database")
			break
		}

		log.Warn().Err(err).Msg("database connection failed")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to database after %d attempts: %w", maxAttempts, err)
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}
	if err := seedUsers(db, cfg.SeedPassword, log); err != nil {
		return nil, err
	}

	return db, nil
}
