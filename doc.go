// Package main provides the entry point for the visitor tracking service.
// It initializes and runs a web server using the Fiber framework that records
// page visits, enriches each visit with best-effort IP geolocation and
// browser-reported device metadata, and exposes an operator dashboard for
// reviewing recorded visits and editing the displayed homepage texts. The
// application uses gorm for data persistence with a local SQLite database
// by default.
package main
