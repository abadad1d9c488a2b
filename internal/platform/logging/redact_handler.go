package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the canonical set of HTTP header names (lowercase) that
// carry credentials and must be redacted before logging. This set is shared
// between the masq layer and the HTTP middleware's RedactHeaders utility so
// the two cannot silently drift apart.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// passwordInlinePattern matches inline "password=<value>" patterns such as
// connection strings that may appear in arbitrary string fields.
var passwordInlinePattern = regexp.MustCompile(`(?i)password\s*[:=]\s*\S+`)

// fixedRedactOptions is the number of masq options beyond the dynamic
// SensitiveHeaders set (2 field names + 1 prefix + 2 regexes).
const fixedRedactOptions = 5

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// (the Redis password being the main concern here) and by regex for values
// that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveHeaders))

	// Sensitive header names shared with the HTTP middleware layer.
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),

		// Prefix-based redaction for variations like "secret_key".
		masq.WithFieldPrefix("secret"),

		// Regex-based redaction for raw sensitive values.
		masq.WithRegex(bearerPattern),
		masq.WithRegex(passwordInlinePattern),
	)

	return masq.New(opts...)
}
