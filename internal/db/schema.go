package db

import _ "embed"

// Schema creates all tables, it is safe to run more than once.
//
//go:embed schema.sql
var Schema string
