// assets/embed.go
//
// Embedded SQL migrations. Files under sql/ are applied in lexical order by
// store.Migrate and recorded in the _migrations table.
package assets

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed sql/*.sql
var FS embed.FS

// Migrations returns the embedded migration paths in lexical order.
func Migrations() ([]string, error) {
	names, err := fs.Glob(FS, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// ReadMigration returns the contents of one migration file.
func ReadMigration(name string) (string, error) {
	b, err := fs.ReadFile(FS, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
