package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// DomainResolver is the part of *net.Resolver the email check needs.
type DomainResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomainChecker rejects staff sign-ups whose email domain cannot
// receive mail, which catches typos like "gmial.com" at registration.
type EmailDomainChecker struct {
	resolver DomainResolver
	timeout  time.Duration
}

func NewEmailDomainChecker(r DomainResolver) *EmailDomainChecker {
	if r == nil {
		r = net.DefaultResolver
	}
	return &EmailDomainChecker{resolver: r, timeout: 3 * time.Second}
}

// Valid accepts an address whose domain has an MX record, or failing that
// an A/AAAA record. Lookups share one timeout.
func (c *EmailDomainChecker) Valid(ctx context.Context, email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if mx, err := c.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := c.resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "", false
	}
	domain := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(email[at+1:])), ".")
	if domain == "" || !strings.Contains(domain, ".") {
		return "", false
	}
	return domain, true
}
