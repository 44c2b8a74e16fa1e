package config

// JwtConfig holds JWT signing configuration for the admin API
type JwtConfig struct {
	Secret            string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
	Issuer            string `env:"JWT_ISSUER" env-default:"simple-hrms"`
	Audience          string `env:"JWT_AUDIENCE" env-default:"simple-hrms"`
	AccessTokenExpiry string `env:"ACCESS_TOKEN_EXPIRY" env-default:"8h"`
}
