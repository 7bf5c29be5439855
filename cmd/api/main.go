package main

import (
	"context"
	"log"

	"github.com/Apurer/scanpack-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("scanpack-api: %v", err)
	}
}
