package main

import (
	"log"

	"github.com/lintang-b-s/foodmap-search/pkg/di"

	"github.com/joho/godotenv"
)

//	@title			foodmap-search API
//	@version		1.0
//	@description	restaurant search around a location, ranked by distance, rating and type match.
//	@host			localhost:6060
//	@BasePath		/
//	@schemes		http
func main() {
	// .env is optional, real environment variables take precedence
	_ = godotenv.Load()

	server, cleanup, err := di.InitializeSearcherService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	server.Log.Info("foodmap-search started")
	if err := server.Wait(); err != nil {
		server.Log.Error(err.Error())
	}
}
