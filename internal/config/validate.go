package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Game.validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	if err := c.OCR.validate(); err != nil {
		return fmt.Errorf("ocr: %w", err)
	}

	if c.RateLimit.OCRPerMinute <= 0 || c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit: limits must be > 0")
	}

	if c.Cleanup.AnonymousRetentionDays <= 0 {
		return fmt.Errorf("cleanup.anonymous_retention_days must be > 0 (got %d)", c.Cleanup.AnonymousRetentionDays)
	}

	return nil
}

func (g *GameConfig) validate() error {
	if g.MaxTextBytes <= 0 {
		return fmt.Errorf("max_text_bytes must be > 0 (got %d)", g.MaxTextBytes)
	}
	if g.MaxImageBytes <= 0 {
		return fmt.Errorf("max_image_bytes must be > 0 (got %d)", g.MaxImageBytes)
	}
	if g.MaxWordsPerRequest <= 0 {
		return fmt.Errorf("max_words_per_request must be > 0 (got %d)", g.MaxWordsPerRequest)
	}
	if g.TrackerCacheSize <= 0 {
		return fmt.Errorf("tracker_cache_size must be > 0 (got %d)", g.TrackerCacheSize)
	}
	if g.TrackerCacheTTL <= 0 {
		return fmt.Errorf("tracker_cache_ttl must be > 0 (got %v)", g.TrackerCacheTTL)
	}
	if g.MirrorQueueSize <= 0 {
		return fmt.Errorf("mirror_queue_size must be > 0 (got %d)", g.MirrorQueueSize)
	}
	return nil
}

func (o *OCRConfig) validate() error {
	if o.URL == "" {
		return nil
	}
	u, err := url.Parse(o.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url %q is not an absolute URL", o.URL)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", o.Timeout)
	}
	return nil
}
