/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqldataset package that works
over an SQLite3 database.
*/
package sqlite3adapter

import (
	"database/sql"
	"strings"

	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pkg/errors"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite3 database %s", path)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) Identifier(name string) (string, error) {
	if name == "" {
		return "", errors.New("empty names cannot be used as identifiers")
	}
	if strings.ContainsRune(name, 0) {
		return "", errors.Errorf("name %q contains invalid character NUL", name)
	}
	return `"` + strings.Replace(name, `"`, `""`, -1) + `"`, nil
}

func (a *adapter) Placeholder(int) string {
	return "?"
}

func (a *adapter) ContinuousColumnType() string {
	return "REAL"
}

func (a *adapter) Close() error {
	return a.db.Close()
}
