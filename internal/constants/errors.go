package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'congress config set-api-key' or set CONGRESS_API_KEY")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
)

// Argument errors.
var (
	ErrInvalidCongress       = errors.New("congress must be a positive integer")
	ErrInvalidNumber         = errors.New("number must be a positive integer")
	ErrBillTypeNeedsCongress = errors.New("--type requires --congress")
	ErrInvalidOutputFormat   = errors.New("output format must be table, json, or yaml")
)
