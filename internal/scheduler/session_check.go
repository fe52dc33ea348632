package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartstore-sales-api/internal/config"
)

const sessionCheckTimeout = 30 * time.Second

// SessionChecker consulta a SmartStore sem fail-open para detectar NAVER_COOKIE expirado
type SessionChecker interface {
	CheckSession(ctx context.Context) error
}

// SessionCheckConfig representa a configuração do agendador de verificação de sessão
type SessionCheckConfig struct {
	CronSchedule string
	ProductID    string
	Enabled      bool
}

// SessionCheckService agenda a sondagem de um produto canário. As sondagens de vendas
// degradam para zero em silêncio; sem esta checagem um cookie vencido passaria despercebido.
type SessionCheckService struct {
	scheduler *gocron.Scheduler
	config    SessionCheckConfig
	checker   SessionChecker

	checkRunning     bool
	checkMutex       sync.Mutex
	lastCheckAt      time.Time
	lastCheckHealthy bool
	lastCheckError   string
}

func NewSessionCheckService(checker SessionChecker, appConfig *config.Config) *SessionCheckService {
	checkConfig := SessionCheckConfig{
		CronSchedule: appConfig.SessionCheck.CronSchedule,
		ProductID:    appConfig.SessionCheck.ProductID,
		Enabled:      appConfig.SessionCheck.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"product_id":    checkConfig.ProductID,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração da verificação de sessão carregada")

	return &SessionCheckService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    checkConfig,
		checker:   checker,
	}
}

// Start inicia o agendador
func (s *SessionCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação de sessão desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação de sessão")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCheck(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de sessão: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação de sessão")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SessionCheckService) runCheck(ctx context.Context) {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação de sessão já em andamento, ignorando")
		return
	}
	s.checkRunning = true
	s.checkMutex.Unlock()

	checkCtx, cancel := context.WithTimeout(ctx, sessionCheckTimeout)
	defer cancel()

	err := s.checker.CheckSession(checkCtx)

	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	s.checkRunning = false
	s.lastCheckAt = time.Now()
	s.lastCheckHealthy = err == nil
	s.lastCheckError = ""

	if err != nil {
		s.lastCheckError = err.Error()
		logrus.WithError(err).Error("Sessão da SmartStore inválida, renove o NAVER_COOKIE")
		return
	}

	logrus.Info("Sessão da SmartStore válida")
}

// TriggerManualCheck executa a verificação fora do agendamento
func (s *SessionCheckService) TriggerManualCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação de sessão já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando verificação manual de sessão")
	go s.runCheck(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SessionCheckService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	return map[string]any{
		"enabled":         s.config.Enabled,
		"cron":            s.config.CronSchedule,
		"product_id":      s.config.ProductID,
		"running":         s.checkRunning,
		"last_check_at":   s.lastCheckAt,
		"session_healthy": s.lastCheckHealthy,
		"last_error":      s.lastCheckError,
	}
}
