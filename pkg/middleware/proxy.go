package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const ContextKeyClientIP contextKey = "client_ip"

// TrustedProxy resolve o IP do cliente e guarda no contexto.
// X-Forwarded-For e X-Real-IP só são lidos quando a conexão vem de um proxy confiável;
// caso contrário são removidos da requisição.
func TrustedProxy(trustedProxies []string) func(http.Handler) http.Handler {
	trusted := parseTrustedProxies(trustedProxies)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := remoteHost(r.RemoteAddr)

			if isTrustedProxy(ip, trusted) {
				ip = forwardedClientIP(r, trusted, ip)
			} else {
				r.Header.Del("X-Forwarded-For")
				r.Header.Del("X-Real-IP")
				r.Header.Del("X-Forwarded-Proto")
			}

			ctx := context.WithValue(r.Context(), ContextKeyClientIP, ip)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseTrustedProxies(entries []string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, "/") {
			_, ipNet, err := net.ParseCIDR(entry)
			if err != nil {
				logrus.WithField("proxy", entry).Warn("Proxy confiável inválido, ignorado")
				continue
			}
			nets = append(nets, ipNet)
			continue
		}

		ip := net.ParseIP(entry)
		if ip == nil {
			logrus.WithField("proxy", entry).Warn("Proxy confiável inválido, ignorado")
			continue
		}

		bits := 128
		if ip.To4() != nil {
			ip = ip.To4()
			bits = 32
		}
		nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}

	return nets
}

func isTrustedProxy(host string, trusted []*net.IPNet) bool {
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}

	for _, n := range trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// forwardedClientIP percorre o X-Forwarded-For da direita para a esquerda e para no
// primeiro endereço que não é proxy confiável; entradas à esquerda dele são do cliente e não valem.
func forwardedClientIP(r *http.Request, trusted []*net.IPNet, fallback string) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		for i := len(parts) - 1; i >= 0; i-- {
			candidate := strings.TrimSpace(parts[i])
			if net.ParseIP(candidate) == nil {
				break
			}
			fallback = candidate
			if !isTrustedProxy(candidate, trusted) {
				return candidate
			}
		}
		return fallback
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(xri) != nil {
		return xri
	}

	return fallback
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
