package smartstore

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	smartstoredomain "github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/domain"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/smartstoreclient"
	"github.com/vfg2006/smartstore-sales-api/internal/config"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
)

const defaultMaxAttempts = 3

var ErrSessionExpired = errors.New("smartstore: sessão da Naver aparenta estar expirada")

type SmartStoreIntegrator interface {
	Probe(ctx context.Context, productID string, basis int) domain.ProbeResult
	CheckSession(ctx context.Context) error
}

// Backoff decide se a falha merece nova tentativa e quanto esperar antes dela
type Backoff func(err error, attempt int) (time.Duration, bool)

// Sleeper espera d ou até o contexto ser cancelado
type Sleeper func(ctx context.Context, d time.Duration) error

type Option func(*SmartStoreService)

func WithBackoff(b Backoff) Option {
	return func(s *SmartStoreService) {
		s.backoff = b
	}
}

func WithSleeper(sl Sleeper) Option {
	return func(s *SmartStoreService) {
		s.sleep = sl
	}
}

type SmartStoreService struct {
	cfg         *config.Config
	Client      smartstoreclient.Client
	maxAttempts int
	backoff     Backoff
	sleep       Sleeper
}

func New(cfg *config.Config, client smartstoreclient.Client, opts ...Option) SmartStoreIntegrator {
	maxAttempts := cfg.Estimation.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	s := &SmartStoreService{
		cfg:         cfg,
		Client:      client,
		maxAttempts: maxAttempts,
		backoff:     DefaultBackoff,
		sleep:       ContextSleep,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DefaultBackoff: TLS espera attempt x 100ms, corpo vazio ou inválido attempt x 1s.
// Demais erros de transporte não são repetidos.
func DefaultBackoff(err error, attempt int) (time.Duration, bool) {
	switch {
	case errors.Is(err, smartstoreclient.ErrTransientTransport):
		return time.Duration(attempt) * 100 * time.Millisecond, true
	case errors.Is(err, smartstoreclient.ErrEmptyResponse),
		errors.Is(err, smartstoreclient.ErrMalformedResponse):
		return time.Duration(attempt) * time.Second, true
	default:
		return 0, false
	}
}

func ContextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Probe nunca falha: qualquer erro, esgotamento de tentativas ou pânico vira {Count: 0}
func (s *SmartStoreService) Probe(ctx context.Context, productID string, basis int) (result domain.ProbeResult) {
	if basis < 0 {
		basis = 0
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"product_id": productID,
				"basis":      basis,
				"panic":      fmt.Sprint(r),
			}).Error("smartstore: pânico durante a sondagem")
			result = domain.ProbeResult{}
		}
	}()

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return domain.ProbeResult{}
		}

		logger := logrus.WithFields(logrus.Fields{
			"product_id": productID,
			"basis":      basis,
			"attempt":    attempt,
		})
		logger.Debug("smartstore: consultando vendas")

		msg, err := s.Client.GetMarketingMessage(ctx, productID, basis)
		if err == nil {
			count, parseErr := smartstoredomain.ParseCount(*msg)
			if parseErr != nil {
				logger.WithError(parseErr).Warn("smartstore: não foi possível extrair a contagem")
				return domain.ProbeResult{}
			}

			logger.WithField("count", count).Debug("smartstore: contagem obtida")
			return domain.ProbeResult{Count: count}
		}

		delay, retry := s.backoff(err, attempt)
		if !retry {
			logger.WithError(err).Error("smartstore: falha sem retentativa")
			return domain.ProbeResult{}
		}

		if attempt == s.maxAttempts {
			break
		}

		logger.WithError(err).WithField("delay", delay.String()).Warn("smartstore: nova tentativa agendada")

		if err := s.sleep(ctx, delay); err != nil {
			return domain.ProbeResult{}
		}
	}

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"basis":      basis,
	}).Warn("smartstore: tentativas esgotadas, assumindo zero")

	return domain.ProbeResult{}
}

// CheckSession usa o cliente direto, sem fail-open, para detectar cookie expirado
func (s *SmartStoreService) CheckSession(ctx context.Context) error {
	productID := s.cfg.SessionCheck.ProductID
	if productID == "" {
		return errors.New("smartstore: produto de verificação de sessão não configurado")
	}

	msg, err := s.Client.GetMarketingMessage(ctx, productID, 0)
	if err != nil {
		return errors.Wrap(err, "smartstore: verificação de sessão")
	}

	if _, err := smartstoredomain.ParseCount(*msg); errors.Is(err, smartstoredomain.ErrPhraseMissing) {
		return ErrSessionExpired
	}

	return nil
}
