// Package storage defines the snippet persistence contract for the preview
// service.
package storage
