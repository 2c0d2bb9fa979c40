// Package migrations embeds the goose schema migrations, one directory per
// SQL dialect.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// SQLite returns the migrations for the SQLite dialect rooted at ".".
func SQLite() fs.FS {
	return mustSub("sqlite")
}

// Postgres returns the migrations for the PostgreSQL dialect rooted at ".".
func Postgres() fs.FS {
	return mustSub("postgres")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(Migrations, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
