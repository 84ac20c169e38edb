// Package config provides configuration management for Conference Hub.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Log: Logging level and format
//   - Feed: Event feed base URI and request timeout
//   - Stats: Statistics API base URI, token and event slug (optional)
//   - Photos: Shared-photo sync job (query URL, page size, cache size, schedule)
//   - Storage: S3/MinIO credentials for the optional photo archive
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
