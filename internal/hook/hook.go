// Package hook defines the named webhook destination and the URL checks
// every hook must pass before it is stored.
package hook

import (
	"errors"
	"regexp"
	"strings"
)

// SlackPrefix is the only URL prefix accepted for a webhook
const SlackPrefix = "https://hooks.slack.com/services/"

var (
	ErrEmptyName  = errors.New("hook name must not be empty")
	ErrInvalidURL = errors.New("not a Slack webhook URL (https://hooks.slack.com/services/T.../B.../...)")
)

var (
	urlPattern = regexp.MustCompile(`(?i)^(?:http|ftp)s?://` +
		`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+(?:[A-Z]{2,6}\.?|[A-Z0-9-]{2,}\.?)|` + // domain
		`localhost|` +
		`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` + // ipv4
		`(?::\d+)?` +
		`(?:/?|[/?]\S+)$`)

	// team / bot / secret
	webhookSuffixPattern = regexp.MustCompile(`^T[A-Za-z0-9]{8}/B[A-Za-z0-9]{8}/[A-Za-z0-9]{24}/?$`)
)

// Hook is a named destination URL for outbound chat messages
type Hook struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Same reports whether h and other identify the same hook.
// Identity is the name alone; URLs are not compared.
func (h Hook) Same(other Hook) bool {
	return h.Name == other.Name
}

// IsWellFormedURL reports whether s looks like an http(s) or ftp(s) URL
// with a domain, localhost or IPv4 host. No network lookups are made.
func IsWellFormedURL(s string) bool {
	return urlPattern.MatchString(s)
}

// IsWebhookURL reports whether s is a well-formed Slack incoming webhook URL
func IsWebhookURL(s string) bool {
	if !IsWellFormedURL(s) {
		return false
	}
	suffix, ok := strings.CutPrefix(s, SlackPrefix)
	if !ok {
		return false
	}
	return webhookSuffixPattern.MatchString(suffix)
}

// Validate checks a name/url pair before it is added to a store
func Validate(name, url string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if !IsWebhookURL(url) {
		return ErrInvalidURL
	}
	return nil
}
