package main

import (
	"flag"
	"log"

	"lifeloop/internal/app"
	"lifeloop/internal/engine"
	_ "lifeloop/internal/life"
)

// setup parses the command line and builds the loop, exiting before any
// window or terminal exists when the configuration is invalid.
func setup() (*app.Config, *engine.Loop) {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	loop, err := cfg.Build()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.Printf("lifeloop: %s", cfg.Summary())
	return cfg, loop
}
