// Package docs provides Swagger documentation for the API.
package docs

// @title TripNest Hotel Services API
// @version 1.0
// @description Backend API for hotel booking, chat and catalog management

// @contact.name API Support
// @contact.email support@tripnest.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
