package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aurora-gallery/colorscan/internal/model"
)

// testRow is one seeded dominant_colors row.
type testRow struct {
	filePath  string
	status    string
	createdAt int64
	updatedAt int64
	colors    string
}

// seedTestDB creates a colors.db fixture with the gallery schema and
// the given rows, returning its path.
func seedTestDB(t *testing.T, rows []testRow) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "colors.db")

	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		t.Fatalf("failed to create fixture database: %v", err)
	}
	defer db.Close()

	schema := `
	CREATE TABLE dominant_colors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file_path TEXT UNIQUE NOT NULL,
		colors TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		status TEXT NOT NULL
	);
	CREATE INDEX idx_status ON dominant_colors(status);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create fixture schema: %v", err)
	}

	for _, r := range rows {
		_, err := db.Exec(`
			INSERT INTO dominant_colors (file_path, colors, created_at, updated_at, status)
			VALUES (?, ?, ?, ?, ?)`,
			r.filePath, r.colors, r.createdAt, r.updatedAt, r.status)
		if err != nil {
			t.Fatalf("failed to insert fixture row: %v", err)
		}
	}

	return dbPath
}

// openTestDB opens a seeded fixture and registers cleanup.
func openTestDB(t *testing.T, rows []testRow) *ColorDB {
	t.Helper()

	cdb, err := Open(seedTestDB(t, rows), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = cdb.Close() })

	return cdb
}

// TestOpen tests database opening behavior.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns ErrNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := Open(filepath.Join(t.TempDir(), "nope.db"), DefaultOptions())
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing file is not created", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "nope.db")
		_, _ = Open(dbPath, DefaultOptions())

		if _, err := Open(dbPath, DefaultOptions()); !errors.Is(err, ErrNotFound) {
			t.Error("open must not create the database file")
		}
	})

	t.Run("opens an existing database", func(t *testing.T) {
		t.Parallel()

		dbPath := seedTestDB(t, nil)
		cdb, err := Open(dbPath, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer cdb.Close()

		if cdb.Path() != dbPath {
			t.Errorf("expected path %q, got %q", dbPath, cdb.Path())
		}
	})
}

// TestTables tests catalog introspection.
func TestTables(t *testing.T) {
	t.Parallel()

	cdb := openTestDB(t, nil)

	tables, err := cdb.Tables(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found *model.TableSchema
	for i := range tables {
		if tables[i].Name == "dominant_colors" {
			found = &tables[i]
		}
	}
	if found == nil {
		t.Fatal("expected dominant_colors in catalog")
	}

	wantColumns := []model.ColumnInfo{
		{Name: "id", Type: "INTEGER"},
		{Name: "file_path", Type: "TEXT"},
		{Name: "colors", Type: "TEXT"},
		{Name: "created_at", Type: "INTEGER"},
		{Name: "updated_at", Type: "INTEGER"},
		{Name: "status", Type: "TEXT"},
	}
	if len(found.Columns) != len(wantColumns) {
		t.Fatalf("expected %d columns, got %d", len(wantColumns), len(found.Columns))
	}
	for i, want := range wantColumns {
		if found.Columns[i] != want {
			t.Errorf("column %d: expected %+v, got %+v", i, want, found.Columns[i])
		}
	}
}

// TestCounts tests total and per-status counting.
func TestCounts(t *testing.T) {
	t.Parallel()

	rows := []testRow{
		{"/photos/a.jpg", "extracted", 100, 200, `[{"hex":"#FF0000"}]`},
		{"/photos/b.jpg", "extracted", 110, 210, `[{"hex":"#00FF00"}]`},
		{"/photos/c.jpg", "pending", 120, 120, ""},
		{"/photos/d.jpg", "error", 130, 230, ""},
	}
	cdb := openTestDB(t, rows)
	ctx := context.Background()

	t.Run("total count", func(t *testing.T) {
		total, err := cdb.TotalCount(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 4 {
			t.Errorf("expected 4 rows, got %d", total)
		}
	})

	t.Run("grouped status counts", func(t *testing.T) {
		counts, err := cdb.StatusCounts(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := make(map[model.Status]int64, len(counts))
		var sum int64
		for _, sc := range counts {
			got[sc.Status] = sc.Count
			sum += sc.Count
		}
		if got[model.StatusExtracted] != 2 || got[model.StatusPending] != 1 || got[model.StatusError] != 1 {
			t.Errorf("unexpected breakdown: %v", got)
		}
		if sum != 4 {
			t.Errorf("expected breakdown to sum to 4, got %d", sum)
		}
	})

	t.Run("count by single status", func(t *testing.T) {
		for status, want := range map[model.Status]int64{
			model.StatusExtracted: 2,
			model.StatusPending:   1,
			model.StatusError:     1,
			model.Status("other"): 0,
		} {
			count, err := cdb.CountByStatus(ctx, status)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if count != want {
				t.Errorf("status %q: expected %d, got %d", status, want, count)
			}
		}
	})
}

// TestRecentRecords tests the newest-first record listing.
func TestRecentRecords(t *testing.T) {
	t.Parallel()

	rows := []testRow{
		{"/photos/a.jpg", "extracted", 100, 500, `[{"hex":"#FF0000"}]`},
		{"/photos/b.jpg", "extracted", 100, 700, `[]`},
		{"/photos/c.jpg", "pending", 100, 300, ""},
		{"/photos/d.jpg", "error", 100, 600, "broken"},
		{"/photos/e.jpg", "extracted", 100, 400, `[{"hex":"#0000FF"}]`},
		{"/photos/f.jpg", "extracted", 100, 200, `[{"hex":"#AABBCC"}]`},
		{"/photos/g.jpg", "extracted", 100, 100, `[{"hex":"#DDEEFF"}]`},
	}
	cdb := openTestDB(t, rows)

	t.Run("limits and orders by updated_at descending", func(t *testing.T) {
		records, err := cdb.RecentRecords(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 5 {
			t.Fatalf("expected 5 records, got %d", len(records))
		}

		wantPaths := []string{"/photos/b.jpg", "/photos/d.jpg", "/photos/a.jpg", "/photos/e.jpg", "/photos/f.jpg"}
		for i, want := range wantPaths {
			if records[i].FilePath != want {
				t.Errorf("record %d: expected %q, got %q", i, want, records[i].FilePath)
			}
		}
		for i := 1; i < len(records); i++ {
			if records[i].UpdatedAt > records[i-1].UpdatedAt {
				t.Error("records are not ordered newest first")
			}
		}
	})

	t.Run("returns fewer records than the limit", func(t *testing.T) {
		records, err := cdb.RecentRecords(context.Background(), 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != len(rows) {
			t.Errorf("expected %d records, got %d", len(rows), len(records))
		}
	})
}

// TestColorsForFile tests the single-file palette lookup.
func TestColorsForFile(t *testing.T) {
	t.Parallel()

	rows := []testRow{
		{"/photos/a.jpg", "extracted", 100, 200, `[{"hex":"#FF0000","rgb":[255,0,0],"is_dark":false}]`},
	}
	cdb := openTestDB(t, rows)

	t.Run("existing file", func(t *testing.T) {
		rec, err := cdb.ColorsForFile(context.Background(), "/photos/a.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Status != model.StatusExtracted {
			t.Errorf("expected status extracted, got %q", rec.Status)
		}

		palette, err := rec.Palette()
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if palette.Primary() != "#FF0000" {
			t.Errorf("expected primary #FF0000, got %q", palette.Primary())
		}
	})

	t.Run("unknown file returns ErrNoRecord", func(t *testing.T) {
		_, err := cdb.ColorsForFile(context.Background(), "/photos/missing.jpg")
		if !errors.Is(err, ErrNoRecord) {
			t.Errorf("expected ErrNoRecord, got %v", err)
		}
	})
}

// TestPendingFiles tests the oldest-first pending queue listing.
func TestPendingFiles(t *testing.T) {
	t.Parallel()

	rows := []testRow{
		{"/photos/a.jpg", "pending", 300, 300, ""},
		{"/photos/b.jpg", "extracted", 100, 900, `[{"hex":"#FF0000"}]`},
		{"/photos/c.jpg", "pending", 100, 100, ""},
		{"/photos/d.jpg", "pending", 200, 200, ""},
	}
	cdb := openTestDB(t, rows)

	pending, err := cdb.PendingFiles(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 records, got %d", len(pending))
	}
	if pending[0].FilePath != "/photos/c.jpg" || pending[1].FilePath != "/photos/d.jpg" {
		t.Errorf("expected oldest pending files first, got %q, %q",
			pending[0].FilePath, pending[1].FilePath)
	}
}

// TestStorageErrorClassification tests that storage failures carry the
// StorageError type for tiered error handling.
func TestStorageErrorClassification(t *testing.T) {
	t.Parallel()

	// A database without the dominant_colors table makes every record
	// query fail at the storage layer.
	dbPath := filepath.Join(t.TempDir(), "colors.db")
	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	if _, err := db.Exec("CREATE TABLE unrelated (id INTEGER PRIMARY KEY)"); err != nil {
		t.Fatalf("failed to create fixture table: %v", err)
	}
	_ = db.Close()

	cdb, err := Open(dbPath, DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer cdb.Close()

	_, err = cdb.TotalCount(context.Background())
	if err == nil {
		t.Fatal("expected error for missing table")
	}

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("expected *StorageError, got %T: %v", err, err)
	}
}
