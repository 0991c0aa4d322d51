package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS dig_events (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			pool_id         TEXT,
			asset_id        TEXT,
			cost            REAL,
			reward          REAL,
			credits_after   REAL,
			remaining_after INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dig_ts ON dig_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS credit_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			kind          TEXT,
			amount        REAL,
			credits_after REAL,
			note          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_credit_ts ON credit_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS withdraw_events (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			assets_cleared INTEGER,
			address        TEXT,
			tx_id          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_withdraw_ts ON withdraw_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS daily_snapshots (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp           INTEGER NOT NULL,
			day_key             TEXT,
			digs                INTEGER,
			credits             REAL,
			credits_minted      REAL,
			credits_spent       REAL,
			credits_burned      REAL,
			credits_transferred REAL,
			dig_count           INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshot_ts ON daily_snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordDig(evt *DigEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO dig_events
		(timestamp, pool_id, asset_id, cost, reward, credits_after, remaining_after)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.PoolID, evt.AssetID, evt.Cost, evt.Reward,
		evt.CreditsAfter, evt.RemainingAfter,
	)
	return err
}

func (r *SQLiteRecorder) RecordCredit(evt *CreditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO credit_events
		(timestamp, kind, amount, credits_after, note)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Kind, evt.Amount, evt.CreditsAfter, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) RecordWithdraw(evt *WithdrawEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO withdraw_events
		(timestamp, assets_cleared, address, tx_id)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), evt.AssetsCleared, evt.Address, evt.TxID,
	)
	return err
}

func (r *SQLiteRecorder) RecordSnapshot(snap *DailySnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO daily_snapshots
		(timestamp, day_key, digs, credits, credits_minted, credits_spent,
		 credits_burned, credits_transferred, dig_count)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.DayKey, snap.Digs, snap.Credits,
		snap.CreditsMinted, snap.CreditsSpent, snap.CreditsBurned,
		snap.CreditsTransferred, snap.DigCount,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
