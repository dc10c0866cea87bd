package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pkg/errors"
)

/*
MaxInstanceInsertionsPerStatement is the maximum number
of instances that are added with a single insert command
by Write. Writing more will result in making more
insertion commands.
*/
const MaxInstanceInsertionsPerStatement = 10

/*
Read takes a context, an Adapter, a table name, a slice of features and a
class feature and returns the dataset with the rows of the table, which must
have a column for every feature and the class. Rows are read in the order the
database returns them. Values that are NULL or continuous values that are not
numbers produce a *dataset.DataFormatError with the 1-based row number.
*/
func Read(ctx context.Context, a Adapter, table string, features []feature.Feature, class *feature.ClassFeature) (*dataset.Dataset, error) {
	if class == nil {
		return nil, errors.New("no class feature defined")
	}
	query, err := selectStatement(a, table, features, class)
	if err != nil {
		return nil, err
	}
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "querying table %s", table)
	}
	defer rows.Close()
	instances := []dataset.Instance{}
	values := make([]sql.NullString, len(features)+1)
	dest := make([]interface{}, len(values))
	for i := range values {
		dest[i] = &values[i]
	}
	for row := 1; rows.Next(); row++ {
		err = rows.Scan(dest...)
		if err != nil {
			return nil, errors.Wrapf(err, "scanning row %d of table %s", row, table)
		}
		instance := make(dataset.Instance, len(values))
		for i, v := range values {
			if !v.Valid {
				name := class.Name()
				if i < len(features) {
					name = features[i].Name()
				}
				return nil, &dataset.DataFormatError{Row: row, Feature: name, Reason: "missing value"}
			}
			instance[i] = v.String
		}
		if err = dataset.Validate(features, instance, row); err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading table %s", table)
	}
	return dataset.New(features, class, instances)
}

/*
Write takes a context, an Adapter, a table name and a dataset and adds the
instances of the dataset to the table, creating the table if it does not
exist. All instances are added in a single transaction. It returns the number
of instances written or an error.
*/
func Write(ctx context.Context, a Adapter, table string, d *dataset.Dataset) (int, error) {
	createStmt, err := createStatement(a, table, d.Features(), d.Class())
	if err != nil {
		return 0, err
	}
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "starting transaction")
	}
	_, err = tx.ExecContext(ctx, createStmt)
	if err != nil {
		tx.Rollback()
		return 0, errors.Wrapf(err, "ensuring table %s exists", table)
	}
	instances := d.Instances()
	for start := 0; start < len(instances); start += MaxInstanceInsertionsPerStatement {
		end := start + MaxInstanceInsertionsPerStatement
		if end > len(instances) {
			end = len(instances)
		}
		err = insert(ctx, tx, a, table, d.Features(), d.Class(), instances[start:end])
		if err != nil {
			tx.Rollback()
			return 0, errors.Wrapf(err, "inserting instances %d to %d", start+1, end)
		}
	}
	err = tx.Commit()
	if err != nil {
		return 0, errors.Wrap(err, "committing transaction")
	}
	return len(instances), nil
}

func insert(ctx context.Context, tx *sql.Tx, a Adapter, table string, features []feature.Feature, class *feature.ClassFeature, instances []dataset.Instance) error {
	tableID, columns, err := identifiers(a, table, features, class)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES ", tableID, columns))
	args := make([]interface{}, 0, len(instances)*(len(features)+1))
	for i, instance := range instances {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for j, v := range instance {
			if j > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(a.Placeholder(len(args) + 1))
			if j < len(features) {
				if _, ok := features[j].(*feature.ContinuousFeature); ok {
					fv, err := feature.ParseFloat(v)
					if err != nil {
						return err
					}
					args = append(args, fv)
					continue
				}
			}
			args = append(args, v)
		}
		buf.WriteString(")")
	}
	_, err = tx.ExecContext(ctx, buf.String(), args...)
	return err
}

func selectStatement(a Adapter, table string, features []feature.Feature, class *feature.ClassFeature) (string, error) {
	tableID, columns, err := identifiers(a, table, features, class)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT %s FROM %s", columns, tableID), nil
}

func createStatement(a Adapter, table string, features []feature.Feature, class *feature.ClassFeature) (string, error) {
	tableID, err := a.Identifier(table)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", tableID))
	for _, f := range features {
		c, err := a.Identifier(f.Name())
		if err != nil {
			return "", err
		}
		columnType := "TEXT"
		if _, ok := f.(*feature.ContinuousFeature); ok {
			columnType = a.ContinuousColumnType()
		}
		buf.WriteString(fmt.Sprintf("%s %s NOT NULL, ", c, columnType))
	}
	c, err := a.Identifier(class.Name())
	if err != nil {
		return "", err
	}
	buf.WriteString(fmt.Sprintf("%s TEXT NOT NULL)", c))
	return buf.String(), nil
}

func identifiers(a Adapter, table string, features []feature.Feature, class *feature.ClassFeature) (string, string, error) {
	tableID, err := a.Identifier(table)
	if err != nil {
		return "", "", err
	}
	var buf bytes.Buffer
	for _, f := range features {
		c, err := a.Identifier(f.Name())
		if err != nil {
			return "", "", err
		}
		buf.WriteString(c)
		buf.WriteString(", ")
	}
	c, err := a.Identifier(class.Name())
	if err != nil {
		return "", "", err
	}
	buf.WriteString(c)
	return tableID, buf.String(), nil
}
