package hedgegate

// Option configures a Client at creation time.
type Option func(*clientConfig)

type clientConfig struct {
	rulesPath    string
	auditLogPath string
	sessionID    string
}

// WithRules sets the path to a rules YAML file.
func WithRules(path string) Option {
	return func(c *clientConfig) { c.rulesPath = path }
}

// WithAuditLog enables hash-chained JSONL audit logging at the given path.
func WithAuditLog(path string) Option {
	return func(c *clientConfig) { c.auditLogPath = path }
}

// WithSessionID sets the session identifier stamped on audit entries.
func WithSessionID(id string) Option {
	return func(c *clientConfig) { c.sessionID = id }
}
