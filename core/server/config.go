package server

// Config holds configuration for the HTTP server and the managed game server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// PropertiesPath is the path to the server.properties file being managed.
	PropertiesPath string `mapstructure:"properties_path" default:"server.properties"`
	// GameHost is the host of the game server to ping for status.
	GameHost string `mapstructure:"game_host" default:"localhost"`
	// GamePort is the port of the game server to ping for status.
	GamePort int `mapstructure:"game_port" default:"25565"`
}

// HasGameServer reports whether a game server endpoint is configured.
func (c Config) HasGameServer() bool {
	return c.GameHost != "" && c.GamePort > 0
}
