// Package config provides configuration management for the property service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections owned by their respective packages:
//   - Server: HTTP port, API key, properties file path, game server address
//   - Database: property catalog connection details
//   - Storage: S3/MinIO credentials and bucket settings for backups
//   - Log: logging level and format
//
// Defaults come from `default` struct tags, resolved by reflection so every
// key is registered with Viper before AutomaticEnv kicks in.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
