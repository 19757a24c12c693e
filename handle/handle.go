// Package handle resolves human-readable payment handles of the form
// name@domain to ledger principals.
//
// A domain publishes its account directory as DNS TXT records under
// _rebase.{domain}, one record per handle:
//
//	rebase:alice=7f1a...40 hex chars...e3
//
// Resolution is a single TXT lookup; the DNSSEC-validating resolver is
// recommended for anything that moves value.
package handle

import (
	"fmt"
	"net"
	"strings"

	"github.com/rebaseorg/librebase-go/ledger"
)

// txtLabel is the DNS label queried under the handle's domain.
const txtLabel = "_rebase."

// Resolver defines the DNS lookup interface.
// This allows tests to mock DNS resolution.
type Resolver interface {
	// LookupTXT looks up TXT records for the given name.
	LookupTXT(name string) ([]string, error)
}

// defaultResolver wraps the standard net package DNS functions.
type defaultResolver struct{}

func (defaultResolver) LookupTXT(name string) ([]string, error) {
	return net.LookupTXT(name)
}

// DefaultResolver is the production DNS resolver using the net package.
var DefaultResolver Resolver = defaultResolver{}

// Parse splits a handle into its name and domain parts.
func Parse(h string) (name, domain string, err error) {
	h = strings.TrimSpace(h)
	at := strings.Count(h, "@")
	if at != 1 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidHandle, h)
	}
	parts := strings.SplitN(h, "@", 2)
	name, domain = strings.ToLower(parts[0]), strings.ToLower(parts[1])
	if name == "" || domain == "" || !strings.Contains(domain, ".") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidHandle, h)
	}
	return name, domain, nil
}

// Resolve resolves a handle to a ledger principal using the default resolver.
func Resolve(h string) (ledger.Principal, error) {
	return ResolveWithResolver(h, DefaultResolver)
}

// ResolveWithResolver resolves a handle using the provided DNS resolver.
// It looks up _rebase.{domain} TXT records and extracts the principal from
// the record with the matching "rebase:{name}=" prefix.
func ResolveWithResolver(h string, resolver Resolver) (ledger.Principal, error) {
	var zero ledger.Principal

	name, domain, err := Parse(h)
	if err != nil {
		return zero, err
	}

	qname := txtLabel + domain
	txts, err := resolver.LookupTXT(qname)
	if err != nil {
		return zero, fmt.Errorf("%w: TXT lookup for %s: %w", ErrLookupFailed, qname, err)
	}

	prefix := "rebase:" + name + "="
	for _, txt := range txts {
		txt = strings.TrimSpace(txt)
		if !strings.HasPrefix(txt, prefix) {
			continue
		}
		enc := strings.TrimSpace(strings.TrimPrefix(txt, prefix))
		p, err := ledger.ParsePrincipal(enc)
		if err != nil {
			return zero, fmt.Errorf("%w: %s: %v", ErrInvalidRecord, qname, err)
		}
		if p.IsZero() {
			return zero, fmt.Errorf("%w: %s resolves to the zero principal", ErrInvalidRecord, qname)
		}
		return p, nil
	}

	return zero, fmt.Errorf("%w: %s in %s", ErrNoRecord, name, qname)
}
