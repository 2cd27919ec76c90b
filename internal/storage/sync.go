package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/gymlog/internal/config"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// dumpTables lists the tables in the database dump, parents before children.
var dumpTables = []string{"exercises", "sessions", "entries", "sets", "templates", "template_items"}

// ExportDBToTOML writes every row of every table into a single TOML file,
// keyed by table name. NULL columns are left out of the row.
func (s *Storage) ExportDBToTOML(ctx context.Context, outputPath string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	dbDump := make(map[string][]map[string]any, len(dumpTables))
	for _, table := range dumpTables {
		rows, err := dumpTable(ctx, tx, table)
		if err != nil {
			return err
		}
		dbDump[table] = rows
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dbDump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	logrus.WithField("path", outputPath).Info("database exported")
	return nil
}

func dumpTable(ctx context.Context, q queryer, table string) ([]map[string]any, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s;", table))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("getting columns for table %s: %w", table, err)
	}

	var tableData []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scanning row in table %s: %w", table, err)
		}

		rowMap := make(map[string]any, len(cols))
		for i, col := range cols {
			switch val := values[i].(type) {
			case nil:
			case []byte:
				rowMap[col] = string(val)
			default:
				rowMap[col] = val
			}
		}
		tableData = append(tableData, rowMap)
	}
	return tableData, rows.Err()
}

// GetDBExportPath returns the default dump location inside the config dir.
func GetDBExportPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump.toml"), nil
}

// ImportDBFromTOML replaces the contents of the database with the dump at
// filePath. Tables are cleared children first and refilled parents first, so
// foreign keys hold throughout.
func (s *Storage) ImportDBFromTOML(ctx context.Context, filePath string) (err error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", filePath, err)
	}

	var dbDump map[string][]map[string]any
	if _, err := toml.Decode(string(data), &dbDump); err != nil {
		return fmt.Errorf("decoding TOML: %w", err)
	}
	for table := range dbDump {
		if !knownTable(table) {
			return fmt.Errorf("unknown table %q in dump", table)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, tx.Rollback())
		}
	}()

	for i := len(dumpTables) - 1; i >= 0; i-- {
		if _, err = tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", dumpTables[i])); err != nil {
			return fmt.Errorf("clearing table %s: %w", dumpTables[i], err)
		}
	}

	imported := 0
	for _, table := range dumpTables {
		for _, row := range dbDump[table] {
			query, values := insertStatement(table, row)
			if _, err = tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("inserting into table %s: %w", table, err)
			}
			imported++
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{"path": filePath, "rows": imported}).Info("database rebuilt from dump")
	return nil
}

func knownTable(name string) bool {
	for _, t := range dumpTables {
		if t == name {
			return true
		}
	}
	return false
}

func insertStatement(table string, row map[string]any) (string, []any) {
	columns := make([]string, 0, len(row))
	for col := range row {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	placeholders := make([]string, len(columns))
	values := make([]any, len(columns))
	for i, col := range columns {
		placeholders[i] = "?"
		values[i] = row[col]
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	return query, values
}
