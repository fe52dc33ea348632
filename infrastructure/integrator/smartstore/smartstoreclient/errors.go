package smartstoreclient

import (
	"crypto/tls"
	"crypto/x509"
	"net"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrTransientTransport cobre falhas de handshake TLS/SSL, que costumam passar na tentativa seguinte
	ErrTransientTransport = errors.New("smartstore: falha transitória de TLS")
	ErrEmptyResponse      = errors.New("smartstore: resposta vazia")
	ErrMalformedResponse  = errors.New("smartstore: resposta inválida")
	ErrForeignHost        = errors.New("smartstore: host fora da SmartStore")
)

func isTransientTransportError(err error) bool {
	if err == nil {
		return false
	}

	// falha de DNS carrega o nome do host na mensagem, nunca é TLS
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return false
	}

	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return true
	}

	var alertErr tls.AlertError
	if errors.As(err, &alertErr) {
		return true
	}

	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return true
	}

	var authorityErr x509.UnknownAuthorityError
	if errors.As(err, &authorityErr) {
		return true
	}

	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return true
	}

	// alertas TLS enviados pelo servidor não têm tipo exportado
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "remote error" {
		return true
	}

	// só a causa mais interna: a mensagem de *url.Error inclui a URL, e o host pode conter "ssl"
	msg := strings.ToLower(rootCause(err).Error())
	return strings.Contains(msg, "tls") ||
		strings.Contains(msg, "ssl") ||
		strings.Contains(msg, "handshake")
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func classifyTransportError(err error) error {
	if isTransientTransportError(err) {
		return errors.Wrap(ErrTransientTransport, err.Error())
	}

	return errors.Wrap(err, "smartstore: erro de transporte")
}
