// Package config provides configuration management for the fabric-index
// service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file loaded through godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, upload body limit)
//   - Log: Logging level and format
//   - Match: Reconciliation column layout and policy toggles
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
