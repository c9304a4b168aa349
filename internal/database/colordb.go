package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/aurora-gallery/colorscan/internal/model"
)

// ColorDB provides read-only queries over a colors.db file.
// The file is created and written by the gallery application's color
// worker; this tool only observes it.
type ColorDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ColorDB behavior.
type Options struct {
	// BusyTimeout is how long queries wait on a locked database before
	// failing. The gallery application may hold the file while its
	// extraction worker runs, so a short grace period avoids spurious
	// "database is locked" failures.
	BusyTimeout time.Duration
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		BusyTimeout: 5 * time.Second,
	}
}

// Open opens the colors database at the specified path for reading.
// If the file does not exist, ErrNotFound is returned before any
// database work happens. Any driver-level failure is reported as a
// *StorageError.
//
// The connection string uses mode=ro so the underlying file is never
// created or modified, whatever queries run later.
func Open(dbPath string, opts Options) (*ColorDB, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dbPath)
	} else if err != nil {
		return nil, storageErr("stat database file", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		return nil, storageErr("open", err)
	}

	// SQLite serializes access through a single connection anyway;
	// a pool of one keeps the busy-timeout pragma on the connection
	// every query actually uses.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if opts.BusyTimeout > 0 {
		pragma := fmt.Sprintf("PRAGMA busy_timeout = %d", opts.BusyTimeout.Milliseconds())
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			_ = db.Close()
			return nil, storageErr("set busy timeout", err)
		}
	}

	return &ColorDB{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (cdb *ColorDB) Close() error {
	return cdb.db.Close()
}

// Path returns the path of the opened database file.
func (cdb *ColorDB) Path() string {
	return cdb.dbPath
}

// FileSize returns the byte size of the database file on disk.
func (cdb *ColorDB) FileSize() (int64, error) {
	info, err := os.Stat(cdb.dbPath)
	if err != nil {
		return 0, storageErr("stat database file", err)
	}
	return info.Size(), nil
}

// Tables lists every table in the database catalog together with its
// column definitions.
func (cdb *ColorDB) Tables(ctx context.Context) ([]model.TableSchema, error) {
	rows, err := cdb.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table'")
	if err != nil {
		return nil, storageErr("list tables", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storageErr("scan table name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list tables", err)
	}

	tables := make([]model.TableSchema, 0, len(names))
	for _, name := range names {
		columns, err := cdb.tableColumns(ctx, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, model.TableSchema{
			Name:    name,
			Columns: columns,
		})
	}
	return tables, nil
}

// tableColumns returns the column definitions of one table via the
// table_info pragma.
func (cdb *ColorDB) tableColumns(ctx context.Context, table string) ([]model.ColumnInfo, error) {
	// PRAGMA arguments cannot be bound as parameters; quote the
	// catalog-provided name instead.
	rows, err := cdb.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, storageErr("read table info", err)
	}
	defer rows.Close()

	var columns []model.ColumnInfo
	for rows.Next() {
		var (
			cid     int
			name    string
			colType sql.NullString
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, storageErr("scan table info", err)
		}
		columns = append(columns, model.ColumnInfo{
			Name: name,
			Type: colType.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read table info", err)
	}
	return columns, nil
}

// TotalCount returns the number of rows in dominant_colors.
func (cdb *ColorDB) TotalCount(ctx context.Context) (int64, error) {
	var count int64
	err := cdb.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM dominant_colors").Scan(&count)
	if err != nil {
		return 0, storageErr("count rows", err)
	}
	return count, nil
}

// StatusCounts returns the number of rows per distinct status value.
// Unclassified status values are included as-is.
func (cdb *ColorDB) StatusCounts(ctx context.Context) ([]model.StatusCount, error) {
	rows, err := cdb.db.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM dominant_colors GROUP BY status")
	if err != nil {
		return nil, storageErr("count by status", err)
	}
	defer rows.Close()

	var counts []model.StatusCount
	for rows.Next() {
		var sc model.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, storageErr("scan status count", err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("count by status", err)
	}
	return counts, nil
}

// CountByStatus returns the number of rows carrying exactly the given status.
func (cdb *ColorDB) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	var count int64
	err := cdb.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM dominant_colors WHERE status = ?", string(status)).Scan(&count)
	if err != nil {
		return 0, storageErr("count by status", err)
	}
	return count, nil
}

// RecentRecords returns up to limit records ordered by updated_at,
// newest first. Ties are broken by whatever order the storage layer
// happens to return.
func (cdb *ColorDB) RecentRecords(ctx context.Context, limit int) ([]model.ColorRecord, error) {
	rows, err := cdb.db.QueryContext(ctx, `
		SELECT file_path, status, created_at, updated_at, colors
		FROM dominant_colors
		ORDER BY updated_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, storageErr("query recent records", err)
	}
	defer rows.Close()

	var records []model.ColorRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("query recent records", err)
	}
	return records, nil
}

// ColorsForFile returns the stored record for a single image file.
// Returns ErrNoRecord when the file path has no row.
func (cdb *ColorDB) ColorsForFile(ctx context.Context, filePath string) (model.ColorRecord, error) {
	row := cdb.db.QueryRowContext(ctx, `
		SELECT file_path, status, created_at, updated_at, colors
		FROM dominant_colors
		WHERE file_path = ?`, filePath)

	var (
		rec    model.ColorRecord
		colors sql.NullString
	)
	err := row.Scan(&rec.FilePath, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt, &colors)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ColorRecord{}, fmt.Errorf("%w: %s", ErrNoRecord, filePath)
	}
	if err != nil {
		return model.ColorRecord{}, storageErr("query record", err)
	}
	rec.RawColors = colors.String
	return rec, nil
}

// PendingFiles returns up to limit records still waiting for extraction,
// oldest first. The ordering matches the gallery worker's own queue, so
// the first entry here is the next file the worker will pick up.
func (cdb *ColorDB) PendingFiles(ctx context.Context, limit int) ([]model.ColorRecord, error) {
	rows, err := cdb.db.QueryContext(ctx, `
		SELECT file_path, status, created_at, updated_at, colors
		FROM dominant_colors
		WHERE status = ?
		ORDER BY created_at ASC
		LIMIT ?`, string(model.StatusPending), limit)
	if err != nil {
		return nil, storageErr("query pending files", err)
	}
	defer rows.Close()

	var records []model.ColorRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("query pending files", err)
	}
	return records, nil
}

// scanRecord scans one full dominant_colors row.
// The colors column is declared NOT NULL by current app versions, but
// older databases carry NULLs; NullString tolerates both.
func scanRecord(rows *sql.Rows) (model.ColorRecord, error) {
	var (
		rec    model.ColorRecord
		colors sql.NullString
	)
	if err := rows.Scan(&rec.FilePath, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt, &colors); err != nil {
		return model.ColorRecord{}, storageErr("scan record", err)
	}
	rec.RawColors = colors.String
	return rec, nil
}
