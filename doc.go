// Package main provides the entry point for the inkpress content management
// backend. It runs a web server using the Fiber framework that exposes a REST
// API for managing users, categories, tags, content with revision history,
// moderated comments and site settings. The application uses gorm for data
// persistence and bearer tokens for authentication.
package main
