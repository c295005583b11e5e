package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite file path or postgres:// URI)
//	-c/-config json file path with configs
//	-version application version string
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var appVersion string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&appVersion, "version", "", "Application version string")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
