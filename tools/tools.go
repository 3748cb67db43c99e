//go:build tools

// Package tools pins the code generator behind internal/api and the goose CLI
// used to run internal/adapters/postgres/migrations by hand.
// Run `go mod tidy` after adding/removing tools here.
package tools

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
