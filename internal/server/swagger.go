package server

//go:generate swag init -g internal/server/server.go -o internal/server/docs

// @title XSS Risk Analysis API
// @version 1.0.0
// @description Scores DOM-XSS evidence reports and returns a verdict with explanations and recommendations.
// @contact.name xssrisk maintainers
// @contact.url https://github.com/raysh454/xssrisk
// @BasePath /
