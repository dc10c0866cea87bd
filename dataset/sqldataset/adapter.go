/*
Package sqldataset reads datasets from SQL database tables and writes them
onto them.

A dataset is kept in a single table with a column per feature, named after
it, plus a column for the class. Nominal features and the class are stored as
text, continuous features as numbers. Database specifics are provided by an
Adapter, see packages sqlite3adapter and pgadapter.
*/
package sqldataset

import "database/sql"

/*
Adapter is an interface providing the database
specific details needed to read and write datasets
on a database.
*/
type Adapter interface {
	// DB returns the database the adapter works on.
	DB() *sql.DB
	// Identifier takes a table or feature name and returns
	// it quoted to be used as an identifier in statements,
	// or an error if it cannot be used as such.
	Identifier(name string) (string, error)
	// Placeholder returns the placeholder for the i-th
	// (1-based) parameter of a statement.
	Placeholder(i int) string
	// ContinuousColumnType returns the type of the columns
	// for continuous features.
	ContinuousColumnType() string
	// Close closes the database.
	Close() error
}
