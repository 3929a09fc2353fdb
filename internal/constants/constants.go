package constants

import "time"

// Client identity.
const (
	// ClientName identifies the library in the default User-Agent.
	ClientName = "congress-client"

	// Version is the library version reported in the default User-Agent.
	Version = "0.3.0"

	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = ClientName + "/" + Version

	// DefaultBaseURL is the root of the Congress.gov API.
	DefaultBaseURL = "https://api.congress.gov/"
)

// Fixed query parameters attached to every request.
const (
	// QueryAPIKey carries the api.data.gov key.
	QueryAPIKey = "api_key"

	// QueryFormat selects the response encoding.
	QueryFormat = "format"

	// FormatJSON is the only response format the client decodes.
	FormatJSON = "json"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent requests issued by the CLI.
	DefaultConcurrencyLimit = 3
)

// Pagination and display limits.
const (
	// DefaultPageSize is the page size the API uses when limit is unset.
	DefaultPageSize = 20

	// MaxPageSize is the largest limit the API accepts.
	MaxPageSize = 250

	// SmallPageSize is used for demonstrations or small lists.
	SmallPageSize = 5

	// DefaultMaxPages bounds --all walks in the CLI.
	DefaultMaxPages = 50
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// RedactedValue replaces secrets in logged URLs.
	RedactedValue = "REDACTED"

	// TitleDisplayLength is the length titles are truncated to in tables.
	TitleDisplayLength = 60

	// TextDisplayLength is the length action text is truncated to in tables.
	TextDisplayLength = 80
)

// Format constants.
const (
	// OutputJSON for JSON output format.
	OutputJSON = "json"

	// OutputYAML for YAML output format.
	OutputYAML = "yaml"

	// OutputTable for table output format.
	OutputTable = "table"
)

// API path segments.
const (
	// APIPathPrefix is the version prefix of every endpoint.
	APIPathPrefix = "/v3"

	PathBill        = "bill"
	PathAmendment   = "amendment"
	PathSummaries   = "summaries"
	PathMember      = "member"
	PathCongress    = "congress"
	PathCurrent     = "current"
	PathActions     = "actions"
	PathAmendments  = "amendments"
	PathCommittees  = "committees"
	PathCosponsors  = "cosponsors"
	PathRelated     = "relatedbills"
	PathSubjects    = "subjects"
	PathText        = "text"
	PathTitles      = "titles"
	PathSponsored   = "sponsored-legislation"
	PathCosponsored = "cosponsored-legislation"
)
