// Package middleware содержит HTTP middleware локальной панели управления:
// логирование, сжатие ответов и ограничение доступа доверенной подсетью.
package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"
)

// TrustedSubnetMiddleware пропускает только запросы с адресов из trustedSubnet.
// Адрес клиента берётся из RemoteAddr: панель слушает локально и не стоит за прокси.
func TrustedSubnetMiddleware(trustedSubnet string, logger *zap.Logger) func(http.Handler) http.Handler {
	var network *net.IPNet
	var cidrErr error
	if trustedSubnet != "" {
		_, network, cidrErr = net.ParseCIDR(trustedSubnet)
		if cidrErr != nil {
			logger.Error("Invalid trusted_subnet CIDR",
				zap.String("trusted_subnet", trustedSubnet),
				zap.Error(cidrErr))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cidrErr != nil {
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if network == nil {
				logger.Warn("Access denied: trusted_subnet is empty",
					zap.String("uri", r.RequestURI),
					zap.String("remote_addr", r.RemoteAddr))
				http.Error(w, "Access denied", http.StatusForbidden)
				return
			}

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			ip := net.ParseIP(host)
			if ip == nil || !network.Contains(ip) {
				logger.Warn("Access denied: IP not in trusted subnet",
					zap.String("uri", r.RequestURI),
					zap.String("remote_addr", r.RemoteAddr),
					zap.String("trusted_subnet", trustedSubnet))
				http.Error(w, "Access denied", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
