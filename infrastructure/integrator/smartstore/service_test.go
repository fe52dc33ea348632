package smartstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	smartstoredomain "github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/domain"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/mocks"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/smartstoreclient"
	"github.com/vfg2006/smartstore-sales-api/internal/config"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func message(phrase string) *smartstoredomain.MarketingMessage {
	return &smartstoredomain.MarketingMessage{MainPhrase: &phrase}
}

type recordingSleeper struct {
	delays []time.Duration
	err    error
}

func (r *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return r.err
}

func newTestService(client smartstoreclient.Client, sleeper *recordingSleeper) SmartStoreIntegrator {
	cfg := &config.Config{
		Estimation: config.Estimation{MaxAttempts: 3},
	}

	return New(cfg, client, WithSleeper(sleeper.Sleep))
}

func TestSmartStoreService_Probe(t *testing.T) {
	tests := []struct {
		name       string
		basis      int
		setup      func(client *mocks.MockClient)
		want       domain.ProbeResult
		wantDelays []time.Duration
	}{
		{
			name:  "sucesso na primeira tentativa",
			basis: 0,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetMarketingMessage(gomock.Any(), "100", 0).
					Return(message("1,234명 구매"), nil)
			},
			want: domain.ProbeResult{Count: 1234},
		},
		{
			name:  "falha de TLS repete com backoff de 100ms",
			basis: 5,
			setup: func(client *mocks.MockClient) {
				gomock.InOrder(
					client.EXPECT().GetMarketingMessage(gomock.Any(), "100", 5).Return(nil, smartstoreclient.ErrTransientTransport),
					client.EXPECT().GetMarketingMessage(gomock.Any(), "100", 5).Return(nil, smartstoreclient.ErrTransientTransport),
					client.EXPECT().GetMarketingMessage(gomock.Any(), "100", 5).Return(message("8명 구매"), nil),
				)
			},
			want:       domain.ProbeResult{Count: 8},
			wantDelays: []time.Duration{100 * time.Millisecond, 200 * time.Millisecond},
		},
		{
			name:  "corpo vazio esgota as tentativas",
			basis: 1,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetMarketingMessage(gomock.Any(), "100", 1).
					Return(nil, smartstoreclient.ErrEmptyResponse).
					Times(3)
			},
			want:       domain.ProbeResult{},
			wantDelays: []time.Duration{time.Second, 2 * time.Second},
		},
		{
			name:  "resposta inválida repete com backoff de 1s",
			basis: 1,
			setup: func(client *mocks.MockClient) {
				gomock.InOrder(
					client.EXPECT().GetMarketingMessage(gomock.Any(), "100", 1).Return(nil, smartstoreclient.ErrMalformedResponse),
					client.EXPECT().GetMarketingMessage(gomock.Any(), "100", 1).Return(message("3명 구매"), nil),
				)
			},
			want:       domain.ProbeResult{Count: 3},
			wantDelays: []time.Duration{time.Second},
		},
		{
			name:  "outro erro de transporte não é repetido",
			basis: 0,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetMarketingMessage(gomock.Any(), "100", 0).
					Return(nil, errors.New("connection refused")).
					Times(1)
			},
			want: domain.ProbeResult{},
		},
		{
			name:  "mainPhrase ausente vira zero sem repetir",
			basis: 0,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetMarketingMessage(gomock.Any(), "100", 0).
					Return(&smartstoredomain.MarketingMessage{}, nil).
					Times(1)
			},
			want: domain.ProbeResult{},
		},
		{
			name:  "basis negativo é tratado como zero",
			basis: -4,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetMarketingMessage(gomock.Any(), "100", 0).
					Return(message("2명 구매"), nil)
			},
			want: domain.ProbeResult{Count: 2},
		},
		{
			name:  "pânico no cliente vira zero",
			basis: 0,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetMarketingMessage(gomock.Any(), "100", 0).
					Return(nil, nil)
			},
			want: domain.ProbeResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			sleeper := &recordingSleeper{}
			service := newTestService(client, sleeper)

			got := service.Probe(context.Background(), "100", tt.basis)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDelays, sleeper.delays)
		})
	}
}

func TestSmartStoreService_Probe_Cancellation(t *testing.T) {
	t.Run("contexto cancelado não chama o cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockClient(ctrl)
		service := newTestService(client, &recordingSleeper{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Equal(t, domain.ProbeResult{}, service.Probe(ctx, "100", 0))
	})

	t.Run("espera interrompida encerra as tentativas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockClient(ctrl)
		client.EXPECT().
			GetMarketingMessage(gomock.Any(), "100", 0).
			Return(nil, smartstoreclient.ErrEmptyResponse).
			Times(1)

		sleeper := &recordingSleeper{err: context.Canceled}
		service := newTestService(client, sleeper)

		assert.Equal(t, domain.ProbeResult{}, service.Probe(context.Background(), "100", 0))
		assert.Len(t, sleeper.delays, 1)
	})
}

func TestDefaultBackoff(t *testing.T) {
	delay, retry := DefaultBackoff(smartstoreclient.ErrTransientTransport, 3)
	assert.True(t, retry)
	assert.Equal(t, 300*time.Millisecond, delay)

	delay, retry = DefaultBackoff(smartstoreclient.ErrMalformedResponse, 2)
	assert.True(t, retry)
	assert.Equal(t, 2*time.Second, delay)

	_, retry = DefaultBackoff(errors.New("dial tcp: no such host"), 1)
	assert.False(t, retry)
}

func TestSmartStoreService_CheckSession(t *testing.T) {
	cfg := &config.Config{
		Estimation:   config.Estimation{MaxAttempts: 3},
		SessionCheck: config.SessionCheck{ProductID: "canary"},
	}

	t.Run("sessão válida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().GetMarketingMessage(gomock.Any(), "canary", 0).Return(message("10명 구매"), nil)

		assert.NoError(t, New(cfg, client).CheckSession(context.Background()))
	})

	t.Run("sem mainPhrase indica sessão expirada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().GetMarketingMessage(gomock.Any(), "canary", 0).Return(&smartstoredomain.MarketingMessage{}, nil)

		assert.ErrorIs(t, New(cfg, client).CheckSession(context.Background()), ErrSessionExpired)
	})

	t.Run("erro do cliente é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		client.EXPECT().GetMarketingMessage(gomock.Any(), "canary", 0).Return(nil, smartstoreclient.ErrEmptyResponse)

		assert.ErrorIs(t, New(cfg, client).CheckSession(context.Background()), smartstoreclient.ErrEmptyResponse)
	})

	t.Run("produto não configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		err := New(&config.Config{}, client).CheckSession(context.Background())
		assert.Error(t, err)
	})
}
