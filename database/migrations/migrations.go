// Package migrations contains all database migration files. Each
// migration registers itself from init(); the package is imported by
// cmd/server so the registry is populated at CLI startup.
package migrations
