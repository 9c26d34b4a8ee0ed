// Package icons defines the catalog of well known icon sets.
//
// The catalog maps stable set slugs to the class prefix and base class each
// icon font expects, so commands and services can configure the render
// pipeline by name without hardcoding CSS conventions.
package icons
