package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailDomainValid checks the address syntactically and then probes
// DNS for the domain. MX is preferred; a bare A/AAAA record is accepted
// because plenty of small domains receive mail without MX entries.
func IsEmailDomainValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 0 {
		return false
	}
	domain := addr.Address[at+1:]
	if domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
