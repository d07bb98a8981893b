// Package docs Site Builder API documentation
package docs

// Swagger documentation info
// @title Site Builder API
// @version 1.0
// @description Backend API for the multi-tenant website builder

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

// @tag.name auth
// @tag.description Registration, login, email verification and token management

// @tag.name users
// @tag.description User profile and administration

// @tag.name websites
// @tag.description Website management and cloning

// @tag.name pages
// @tag.description Page management and ordering

// @tag.name sections
// @tag.description Page section management and ordering

// @tag.name content
// @tag.description Section content and media

// @tag.name themes
// @tag.description Website themes and presets
