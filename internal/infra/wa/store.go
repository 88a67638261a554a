package wa

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	_ "modernc.org/sqlite"
)

// Each session gets its own sqlite file holding the whatsmeow device
// credentials. That file is the only thing that survives a restart; every
// other piece of session state is rebuilt from lifecycle events.

func openSQLStoreContainer(sqlPath string) (*sqlstore.Container, error) {
	if err := os.MkdirAll(filepath.Dir(sqlPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	db, err := sql.Open("sqlite", sqliteDSN(sqlPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	container := sqlstore.NewWithDB(db, "sqlite", nil)
	if err := container.Upgrade(context.Background()); err != nil {
		return nil, fmt.Errorf("upgrade db schema: %w", err)
	}

	return container, nil
}

func sqliteDSN(path string) string {
	params := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	if strings.Contains(path, "?") {
		return path + "&" + params
	}
	return path + "?" + params
}

func dbPathForSession(basePath, session string) string {
	if basePath == "" {
		return session + ".db"
	}

	if filepath.Ext(basePath) == ".db" {
		dir := filepath.Dir(basePath)
		base := strings.TrimSuffix(filepath.Base(basePath), ".db")
		return filepath.Join(dir, base+"-"+session+".db")
	}

	return filepath.Join(basePath, session+".db")
}

func deviceFromContainer(ctx context.Context, container *sqlstore.Container) (*store.Device, error) {
	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, err
	}
	if device == nil {
		device = container.NewDevice()
	}
	return device, nil
}
