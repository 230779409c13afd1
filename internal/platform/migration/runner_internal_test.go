// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/diwan/data/migrations"
)

/*
TestPgx5DSN verifies scheme rewriting for the migrate driver.
*/
func TestPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/diwan", "pgx5://u:p@db:5432/diwan"},
		{"postgresql://u@db/diwan?sslmode=disable", "pgx5://u@db/diwan?sslmode=disable"},
		{"pgx5://db/diwan", "pgx5://db/diwan"},
		{"host=db dbname=diwan", "host=db dbname=diwan"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pgx5DSN(tt.in))
	}
}

/*
TestEmbeddedMigrations verifies that every up migration ships with its down pair.
*/
func TestEmbeddedMigrations(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := up[:len(up)-len(".up.sql")] + ".down.sql"
		_, err := fs.Stat(migrations.FS, down)
		assert.NoError(t, err, down)
	}

	assert.Equal(t, "embedded", sourceName(""))
	assert.Equal(t, "./data/migrations", sourceName("./data/migrations"))
}
