package config

type ServiceConfig struct {
	Name        string         `yaml:"name"`
	Environment string         `yaml:"environment"`
	Version     string         `yaml:"version"`
	ClientURL   string         `yaml:"client_url"`
	JWTSecret   string         `yaml:"jwt_secret"`
	Razorpay    RazorpayConfig `yaml:"razorpay"`
}

type RazorpayConfig struct {
	KeyID         string `yaml:"key_id"`
	KeySecret     string `yaml:"key_secret"`
	WebhookSecret string `yaml:"webhook_secret"`
	Currency      string `yaml:"currency"`
}

// NotificationSecret returns the secret used for webhook body signatures.
// Falls back to the key secret when no dedicated webhook secret is
// configured, matching the gateway dashboard default.
func (c *RazorpayConfig) NotificationSecret() string {
	if c.WebhookSecret != "" {
		return c.WebhookSecret
	}
	return c.KeySecret
}
