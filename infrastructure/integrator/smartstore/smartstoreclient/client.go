package smartstoreclient

import (
	"context"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	smartstoredomain "github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/domain"
	"github.com/vfg2006/smartstore-sales-api/internal/config"
	"github.com/vfg2006/smartstore-sales-api/pkg/utils"
	"go.opentelemetry.io/otel"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var tracer = otel.Tracer("smartstore/client")

const defaultTimeout = 30 * time.Second

type Client interface {
	GetMarketingMessage(ctx context.Context, productID string, basis int) (*smartstoredomain.MarketingMessage, error)
	GetStorePage(ctx context.Context, storeURL string) ([]byte, error)
}

type SmartStoreClient struct {
	http    *resty.Client
	baseURL string
	host    string
	cookie  string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.SmartStore.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New()
	client.SetBaseURL(cfg.SmartStore.BaseURL)
	client.SetTimeout(timeout)
	client.SetHeader("accept", "application/json, text/plain, */*")
	client.SetHeader("user-agent", cfg.SmartStore.UserAgent)

	if cfg.SmartStore.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	return &SmartStoreClient{
		http:    client,
		baseURL: cfg.SmartStore.BaseURL,
		host:    utils.StoreHost(cfg.SmartStore.BaseURL),
		cookie:  cfg.SmartStore.Cookie,
	}
}
