package validators

import (
	"net"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailFormatValid hace solo la verificación sintáctica
// (local@dominio.tld), sin tocar la red.
func IsEmailFormatValid(email string) bool {
	return emailRe.MatchString(email)
}

// IsEmailDomainValid verifica que el dominio del correo resuelva
// (MX o A). Se usa en el registro de usuarios, no en cada cita.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
