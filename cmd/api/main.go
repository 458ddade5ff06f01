// Package main is the entry point for the progress API.
package main

import "github.com/progresstrack/progress-api/cmd/api/cmd"

// @title Progress API
// @version 1.0
// @description Multi-tenant project, progress and task tracking with role-based access
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cmd.Execute()
}
