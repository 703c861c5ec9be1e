package gemini

// Config contains the generate-content provider configuration. The API key
// here is the system-wide default; per-user keys arrive on each request and
// take precedence.
type Config struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	BaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	Timeout int    `env:"GEMINI_TIMEOUT"  envDefault:"60"`
}
