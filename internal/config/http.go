package config

type HttpConfig struct {
	BaseConfig
	MaxBodyBytes int64            `envconfig:"HTTP_MAX_BODY_BYTES" default:"1048576" validate:"min=1"`
	Server       HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit    RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS         CORSConfig       `envconfig:"CORS"`
}

// Host and Port are untagged so only HTTP_SERVER_HOST and HTTP_SERVER_PORT
// are read, never a bare HOST or PORT.
type HttpServerConfig struct {
	Host         string `default:"0.0.0.0"`
	Port         int    `default:"8080" validate:"gte=0,lte=65535"`
	ReadTimeout  int    `envconfig:"READ_TIMEOUT" default:"30"`
	WriteTimeout int    `envconfig:"WRITE_TIMEOUT" default:"30"`
	IdleTimeout  int    `envconfig:"IDLE_TIMEOUT" default:"120"`

	// ReadHeaderTimeout and ShutdownTimeout are in seconds like the others.
	ReadHeaderTimeout int `envconfig:"READ_HEADER_TIMEOUT" default:"10" validate:"gte=0"`
	ShutdownTimeout   int `envconfig:"SHUTDOWN_TIMEOUT" default:"30" validate:"gte=1"`
}

type RateLimitConfig struct {
	GlobalRequests int `envconfig:"GLOBAL_REQUESTS" default:"1000"`
	GlobalWindow   int `envconfig:"GLOBAL_WINDOW" default:"60"`
	RequestsPerIP  int `envconfig:"REQUESTS_PER_IP" default:"100"`
	WindowSeconds  int `envconfig:"WINDOW_SECONDS" default:"60"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type,X-CSRF-Token"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:""`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400"`
}

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
