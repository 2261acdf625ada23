package users

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRecordLoginReusesUserForSameEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	first, err := svc.RecordLogin(ctx, "Ada@Example.com ")
	if err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}
	second, err := svc.RecordLogin(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same user, got %s and %s", first.ID, second.ID)
	}
	if second.Email != "ada@example.com" || second.LastLoginAt == nil {
		t.Fatalf("unexpected user: %+v", second)
	}

	got, err := svc.GetByID(ctx, first.ID)
	if err != nil || got.Email != "ada@example.com" {
		t.Fatalf("GetByID: %+v %v", got, err)
	}
	if _, err := svc.GetByID(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpsertLogin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("new-id", "ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "created_at", "updated_at", "last_login_at"}).
			AddRow("existing-id", "ada@example.com", now.Add(-time.Hour), now, now))

	user, err := (&PGRepo{DB: db}).UpsertLogin(context.Background(), "new-id", "ada@example.com")
	if err != nil {
		t.Fatalf("UpsertLogin: %v", err)
	}
	if user.ID != "existing-id" || user.LastLoginAt == nil || !user.LastLoginAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, email").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "created_at", "updated_at", "last_login_at"}))

	if _, err := (&PGRepo{DB: db}).GetByID(context.Background(), "nobody"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
