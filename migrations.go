// Package root exposes files embedded at the repository root: the goose SQL
// migrations and the OpenAPI document served by the backend.
package root

import "embed"

// Migrations holds the goose migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Specs holds the OpenAPI documents of the REST surface.
//
//go:embed specs/*.yaml
var Specs embed.FS
