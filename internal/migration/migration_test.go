package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReadMigrations(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"002_add_index.sql": {Data: []byte("CREATE INDEX idx ON settings (key);")},
			"001_init.sql":      {Data: []byte("CREATE TABLE settings (key TEXT);")},
			"README.md":         {Data: []byte("not a migration")},
		}
		r := NewRunner(nil, fsys)

		got, err := r.ReadMigrations()
		if err != nil {
			t.Fatalf("ReadMigrations failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("migrations = %d, want 2", len(got))
		}
		if got[0].Version != 1 || got[0].Name != "init" {
			t.Errorf("first = %+v", got[0])
		}
		if got[1].Version != 2 || got[1].Name != "add_index" {
			t.Errorf("second = %+v", got[1])
		}
	})

	t.Run("invalid filename", func(t *testing.T) {
		r := NewRunner(nil, fstest.MapFS{"init.sql": {Data: []byte("x")}})
		if _, err := r.ReadMigrations(); err == nil {
			t.Error("expected an error for a filename without a version prefix")
		}
	})

	t.Run("duplicate version", func(t *testing.T) {
		r := NewRunner(nil, fstest.MapFS{
			"001_a.sql": {Data: []byte("x")},
			"001_b.sql": {Data: []byte("y")},
		})
		if _, err := r.ReadMigrations(); err == nil {
			t.Error("expected an error for duplicate versions")
		}
	})
}

func TestApply(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql":    {Data: []byte("CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL);")},
		"002_prefill.sql": {Data: []byte("INSERT INTO settings (key, value) VALUES ('theme', 'system');")},
	}
	r := NewRunner(db, fsys)

	applied, err := r.Apply(nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	var theme string
	if err := db.QueryRow("SELECT value FROM settings WHERE key = 'theme'").Scan(&theme); err != nil {
		t.Fatalf("settings row missing: %v", err)
	}
	if theme != "system" {
		t.Errorf("theme = %q", theme)
	}

	// Re-running applies nothing.
	applied, err = r.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("applied = %d on re-run, want 0", applied)
	}
}

func TestValidateVersion(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL);")},
	}
	r := NewRunner(db, fsys)

	if err := r.ValidateVersion(); err != nil {
		t.Errorf("fresh database should validate: %v", err)
	}

	if _, err := r.Apply(nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := r.ValidateVersion(); err != nil {
		t.Errorf("up-to-date database should validate: %v", err)
	}

	// A database stamped by a newer binary must be refused.
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
		t.Fatal(err)
	}
	if err := r.ValidateVersion(); err == nil {
		t.Error("expected an error for a newer schema version")
	}
}
