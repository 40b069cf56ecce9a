package redact

import "regexp"

// builtinPatterns covers the secret shapes this module's own tool surfaces
// can emit: brokerage session tokens, bearer headers from the model adapter
// and tastytrade clients, and generic high-entropy key=value assignments
// that filesystem tools (read_file, git_status output) might surface from a
// .env or similar file a git_commit touches.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)bearer\s+[a-z0-9._\-]{16,}`),
		Replacement: "Bearer [REDACTED]",
	},
	{
		Name:        "tastytrade_session_token",
		Regex:       regexp.MustCompile(`"session-token"\s*:\s*"[^"]+"`),
		Replacement: `"session-token":"[REDACTED]"`,
	},
	{
		Name:        "remember_token",
		Regex:       regexp.MustCompile(`"remember-token"\s*:\s*"[^"]+"`),
		Replacement: `"remember-token":"[REDACTED]"`,
	},
	{
		Name:        "generic_api_key_assignment",
		Regex:       regexp.MustCompile(`(?i)(api[_-]?key|secret|password|passwd)\s*[:=]\s*["']?[a-z0-9._\-]{8,}["']?`),
		Replacement: "$1=[REDACTED]",
	},
	{
		Name:        "aws_access_key_id",
		Regex:       regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
		Replacement: "[REDACTED_AWS_KEY]",
	},
}

// dotenvMasker replaces every value on a KEY=value line in content that
// looks like a .env file, regardless of whether the key name matches a
// known-secret pattern, defensive-by-default for the one protected-path
// file type the filesystem tools are most likely to echo back.
type dotenvMasker struct{}

func (m *dotenvMasker) Name() string { return "dotenv" }

var dotenvLine = regexp.MustCompile(`(?m)^([A-Za-z_][A-Za-z0-9_]*)=(.+)$`)

func (m *dotenvMasker) AppliesTo(data string) bool {
	return dotenvLine.MatchString(data)
}

func (m *dotenvMasker) Mask(data string) string {
	return dotenvLine.ReplaceAllString(data, "$1=[REDACTED]")
}
