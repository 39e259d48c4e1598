// Package ltgcache memoizes the part of an LL(k) run that is expensive and
// stable across invocations against an unchanged grammar: the rendered
// table (plain and CSV) and whether the grammar is LL(k) at all. It is
// consulted only when no word list is given, since a cached table can
// answer "print the table" but cannot replay a recognizer run against it
// (the live ll.Table and ll.Parser objects are not persisted).
//
// Grounded on server/dao/sqlite's single-file-per-store shape
// (server/dao/sqlite/sqlite.go) and its rezi-encoded BLOB column
// (server/dao/sqlite/sessions.go's State column), adapted from "game save
// state" to "analysis result".
package ltgcache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dekarrin/rezi"
	"modernc.org/sqlite"
)

// Entry is the memoized result of one (grammar text, k) analysis.
type Entry struct {
	IsLL      bool
	TableText string
	CSVText   string
}

// Cache is a sqlite-backed store of Entry values keyed by Key.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite file at path and ensures
// its schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapErr(err)
	}

	c := &Cache{db: db}
	if _, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		key TEXT NOT NULL PRIMARY KEY,
		data BLOB NOT NULL
	);`); err != nil {
		db.Close()
		return nil, wrapErr(err)
	}

	return c, nil
}

// Key derives a stable cache key from a grammar's raw text and the depth it
// was analyzed at; two calls with identical text and k always collide.
func Key(grammarText string, k int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%s", k, grammarText)))
	return hex.EncodeToString(sum[:])
}

// Get looks up key, reporting ok=false (not an error) on a cache miss.
func (c *Cache) Get(key string) (e Entry, ok bool, err error) {
	var data []byte
	row := c.db.QueryRow(`SELECT data FROM entries WHERE key = ?;`, key)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, false, nil
		}
		return Entry{}, false, wrapErr(err)
	}

	if _, err := rezi.DecBinary(data, &e); err != nil {
		return Entry{}, false, fmt.Errorf("decode cache entry: %w", err)
	}
	return e, true, nil
}

// Put stores (or replaces) the entry for key.
func (c *Cache) Put(key string, e Entry) error {
	data := rezi.EncBinary(e)
	_, err := c.db.Exec(`INSERT INTO entries (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data;`, key, data)
	return wrapErr(err)
}

// Close releases the underlying database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		return fmt.Errorf("sqlite: %s", sqlite.ErrorCodeString[sqliteErr.Code()])
	}
	return err
}
