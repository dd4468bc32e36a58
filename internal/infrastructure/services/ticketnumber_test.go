package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/infrastructure/persistence/migrations"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "helpdesk.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.Migrate(conn))
	return conn
}

func TestTicketNumberGenerator_SequentialNumbers(t *testing.T) {
	conn := openTestDB(t)
	gen := NewTicketNumberGenerator(conn)
	txManager := db.NewTransactionManager(conn)

	var numbers []string
	for i := 0; i < 3; i++ {
		require.NoError(t, txManager.RunInTransaction(context.Background(), func(ctx context.Context) error {
			number, err := gen.Next(ctx)
			if err != nil {
				return err
			}
			numbers = append(numbers, number)
			return nil
		}))
	}

	assert.Equal(t, []string{"TK0001", "TK0002", "TK0003"}, numbers)
}

func TestTicketNumberGenerator_RollbackReturnsNumber(t *testing.T) {
	conn := openTestDB(t)
	gen := NewTicketNumberGenerator(conn)
	txManager := db.NewTransactionManager(conn)

	err := txManager.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if _, err := gen.Next(ctx); err != nil {
			return err
		}
		return fmt.Errorf("creation failed after reserving a number")
	})
	require.Error(t, err)

	var number string
	require.NoError(t, txManager.RunInTransaction(context.Background(), func(ctx context.Context) error {
		n, err := gen.Next(ctx)
		number = n
		return err
	}))

	// The rolled-back reservation must not burn TK0001.
	assert.Equal(t, "TK0001", number)
}

func TestTicketNumberGenerator_MissingSequenceRow(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, conn.
		Where(&models.SettingModel{Key: models.TicketNextIDKey}).
		Delete(&models.SettingModel{}).Error)

	gen := NewTicketNumberGenerator(conn)
	_, err := gen.Next(context.Background())
	require.Error(t, err)
}
