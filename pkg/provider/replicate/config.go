package replicate

import (
	"net/http"
	"strings"

	"github.com/replicate/replicate-go"
)

const ServiceName = "Replicate"

type Config struct {
	url   string
	token string

	version string
	input   Input

	client *http.Client
}

type Option func(*Config)

func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

// WithVersion selects the model version predictions are created for.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.version = version
	}
}

func (c *Config) Options() []replicate.ClientOption {
	options := []replicate.ClientOption{
		replicate.WithToken(c.token),

		// one request per submit and per poll
		replicate.WithRetryPolicy(0, &replicate.ConstantBackoff{}),
	}

	if c.url != "" {
		options = append(options, replicate.WithBaseURL(strings.TrimRight(c.url, "/")))
	}

	if c.client != nil {
		options = append(options, replicate.WithHTTPClient(c.client))
	}

	return options
}
