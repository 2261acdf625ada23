package exports

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	export := Export{
		ID:        "exp-1",
		UserID:    "user-1",
		SessionID: "sess-1",
		Template:  "modern",
		Format:    FormatText,
		SizeBytes: 42,
		CreatedAt: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO exports").
		WithArgs(
			export.ID,
			export.UserID,
			export.SessionID,
			export.Template,
			export.Format,
			export.Pages,
			export.SizeBytes,
			nil,
			export.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), export); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	created := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "session_id", "template", "format", "pages", "size_bytes", "file_key", "created_at"}).
		AddRow("exp-2", "user-1", "sess-1", "creative", FormatPDF, 2, 2048, "abc/previews/sess-1/2.pdf", created).
		AddRow("exp-1", "user-1", "sess-1", "modern", FormatText, 0, 12, nil, created.Add(-time.Minute))

	mock.ExpectQuery("SELECT id, user_id, session_id").
		WithArgs("user-1", 100, 0).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	items, err := repo.ListByUser(context.Background(), "user-1", 500, -3)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 exports, got %d", len(items))
	}
	if items[0].FileKey != "abc/previews/sess-1/2.pdf" || items[0].Pages != 2 {
		t.Fatalf("unexpected first export: %+v", items[0])
	}
	if items[1].FileKey != "" {
		t.Fatalf("expected empty file key for text export, got %q", items[1].FileKey)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
