// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migrations embeds the SQL files that create and seed the curated library.
package migrations

import "embed"

// FS holds every *.up.sql and *.down.sql file in this directory.
//
//go:embed *.sql
var FS embed.FS
