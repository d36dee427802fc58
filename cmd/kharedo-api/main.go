package main

import (
	"log"
	"os"

	"github.com/UmmeHabiba1312/Kharedo-api/cmd/kharedo-api/app"
	"github.com/UmmeHabiba1312/Kharedo-api/configs"
)

func main() {
	env := os.Getenv("APP_ENV") // dev | staging | prod
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("kharedo-api (%s) listening on %s", env, cfg.App.HTTPAddr)
	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
