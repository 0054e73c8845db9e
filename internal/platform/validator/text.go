package validator

import (
	"net/url"
	"regexp"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var (
	// tags backs the URL and host grammars. A Validate instance is safe for concurrent use.
	tags = playground.New()

	slugRegex = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

type urlKind struct{ stringKind }

func (urlKind) name() string { return "url" }

func (urlKind) defaults() map[string]string { return urlMessages }

func (k urlKind) isValid(f *Field, value any) error {
	if err := k.stringKind.isValid(f, value); err != nil {
		return err
	}
	s := value.(string)
	if tags.Var(s, "url") != nil {
		return f.fail(CodeURL, nil)
	}
	if u, err := url.Parse(s); err != nil || u.Host == "" {
		return f.fail(CodeURL, nil)
	}
	return nil
}

// URL accepts text shaped as scheme://host[/path].
func URL(opts ...Option) *Field {
	return newField(urlKind{}, opts...)
}

type hostKind struct{ stringKind }

func (hostKind) name() string { return "host" }

func (hostKind) defaults() map[string]string { return hostMessages }

func (k hostKind) isValid(f *Field, value any) error {
	if err := k.stringKind.isValid(f, value); err != nil {
		return err
	}
	if tags.Var(value.(string), "ipv4|hostname_rfc1123") != nil {
		return f.fail(CodePattern, nil)
	}
	return nil
}

func (hostKind) toRepresentation(_ *Field, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}
	return strings.ToLower(s), nil
}

// Host accepts a dotted-decimal IPv4 address or a DNS host name. Host names are
// returned lower-cased.
func Host(opts ...Option) *Field {
	return newField(hostKind{}, opts...)
}

type slugKind struct{ stringKind }

func (slugKind) name() string { return "slug" }

func (slugKind) defaults() map[string]string { return slugMessages }

func (k slugKind) isValid(f *Field, value any) error {
	if err := k.stringKind.isValid(f, value); err != nil {
		return err
	}
	if !slugRegex.MatchString(value.(string)) {
		return f.fail(CodePattern, nil)
	}
	return nil
}

// Slug accepts letters, digits, hyphens and underscores only.
func Slug(opts ...Option) *Field {
	return newField(slugKind{}, opts...)
}
