package sqlq

import (
	"testing"
	"time"

	"github.com/maxshaw/sqlq/qb"
	"github.com/maxshaw/sqlq/types"
)

func TestBindableTypesThroughBuilder(t *testing.T) {
	db, err := Open("events.db", WithResolver(DirResolver(t.TempDir())))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(db.Close)

	if err := db.Exec(`CREATE TABLE events (id INTEGER PRIMARY KEY, payload TEXT, at TEXT)`); err != nil {
		t.Fatalf("create table failed: %v", err)
	}

	at := time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)
	payload := types.NewJSON(map[string]string{"kind": "login"})

	_, err = db.Table("events").Insert(qb.H{
		"payload": payload,
		"at":      types.Time(at),
	}).Exec()
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	row, err := db.Table("events").Select("payload", "at").Row()
	if err != nil {
		t.Fatalf("Row failed: %v", err)
	}

	var back types.JSON[map[string]string]
	if err := back.Scan(row["payload"]); err != nil {
		t.Fatalf("payload scan failed: %v", err)
	}
	if back.Val()["kind"] != "login" {
		t.Errorf("payload = %v", back.Val())
	}

	var when types.Time
	if err := when.Scan(row["at"]); err != nil {
		t.Fatalf("at scan failed: %v", err)
	}
	if !time.Time(when).Equal(at) {
		t.Errorf("at = %v, want %v", when, at)
	}
}
