package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go_certify/internal/model"
)

// Migrate runs database migrations for all models
func Migrate(gdb *gorm.DB) error {
	logrus.Info("starting database migration")

	models := []interface{}{
		&model.Certificate{},
	}

	if err := gdb.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logrus.Infof("database migration completed (%d tables)", len(models))
	return nil
}
