package handle

import "errors"

var (
	// ErrInvalidHandle indicates the handle is not of the form name@domain.
	ErrInvalidHandle = errors.New("handle: invalid handle")

	// ErrLookupFailed indicates a DNS TXT lookup failed.
	ErrLookupFailed = errors.New("handle: DNS lookup failed")

	// ErrNoRecord indicates no ledger TXT record exists for the handle.
	ErrNoRecord = errors.New("handle: no record for handle")

	// ErrInvalidRecord indicates a TXT record that does not decode to a principal.
	ErrInvalidRecord = errors.New("handle: invalid principal record")

	// ErrDNSSECValidationFailed indicates the resolver could not
	// authenticate the DNS response.
	ErrDNSSECValidationFailed = errors.New("handle: DNSSEC validation failed")
)
