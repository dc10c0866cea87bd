/*
Package pgadapter provides an implementation of the
Adapter interface in the sqldataset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pkg/errors"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "opening postgresql database")
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
	return pq.QuoteIdentifier(name), nil
}

func (a *adapter) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

func (a *adapter) ContinuousColumnType() string {
	return "DOUBLE PRECISION"
}

func (a *adapter) Close() error {
	return a.db.Close()
}
