package cmd

// Config carries all runtime settings for the application.
// Values come from the environment, loaded in main.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string

	JWTSecret string

	GoogleMapsAPIKey string

	WhatsAppPhoneID    string
	WhatsAppToken      string
	WhatsAppAPIVersion string
	TrackingBaseURL    string
}
