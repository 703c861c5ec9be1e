package openai

// Config contains the chat-completions provider configuration. The API key
// here is the system-wide default; per-user keys arrive on each request and
// take precedence.
type Config struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Timeout int    `env:"OPENAI_TIMEOUT"  envDefault:"60"`
}
