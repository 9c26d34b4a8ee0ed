// Package sqlite implements the snippet store on a local SQLite database.
package sqlite
