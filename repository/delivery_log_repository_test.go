package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/take-two/storefront/models"
	"github.com/take-two/storefront/repository"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestSaveLog_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewDeliveryLogRepository(gormDB)

	entry := &models.DeliveryLog{
		FromName:  "Nour",
		FromEmail: "nour@example.com",
		Status:    models.DeliveryStatusSent,
		AckRef:    "OK",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "delivery_logs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.SaveLog(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveLog_DBError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewDeliveryLogRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "delivery_logs"`)).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	err := repo.SaveLog(context.Background(), &models.DeliveryLog{FromName: "Nour"})
	assert.Error(t, err)
}

func TestGetLogs_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewDeliveryLogRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "delivery_logs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "from_name", "from_email", "status", "ack_ref", "error", "created_at"}).
		AddRow(2, "Nour", "nour@example.com", models.DeliveryStatusSent, "OK", "", now).
		AddRow(1, "Omar", "omar@example.com", models.DeliveryStatusSent, "OK", "", now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_logs"`)).
		WillReturnRows(rows)

	logs, total, err := repo.GetLogs(context.Background(), models.DeliveryLogFilter{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, logs, 2)
	assert.Equal(t, "Nour", logs[0].FromName)
}

func TestGetLogs_StatusFilter(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewDeliveryLogRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "delivery_logs" WHERE status = $1`)).
		WithArgs(models.DeliveryStatusFailed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows([]string{"id", "from_name", "from_email", "status", "ack_ref", "error", "created_at"}).
		AddRow(3, "Sara", "sara@example.com", models.DeliveryStatusFailed, "", "status 401", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_logs" WHERE status = $1`)).
		WithArgs(models.DeliveryStatusFailed).
		WillReturnRows(rows)

	logs, total, err := repo.GetLogs(context.Background(), models.DeliveryLogFilter{
		Status: models.DeliveryStatusFailed, Page: 1, PageSize: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, models.DeliveryStatusFailed, logs[0].Status)
}

func TestGetLogs_ClampsPageSize(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewDeliveryLogRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "delivery_logs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_logs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := repo.GetLogs(context.Background(), models.DeliveryLogFilter{Page: 0, PageSize: 5000})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
