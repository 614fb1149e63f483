package main

import (
	"fmt"
	"os"

	_ "schoolconnect/docs" // Swagger docs
)

// @title School Connect API
// @version 1.0
// @description Konaseema school community portal API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
