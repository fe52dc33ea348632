package smartstore

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	smartstoredomain "github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/domain"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/smartstoreclient"
	"github.com/vfg2006/smartstore-sales-api/internal/config"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
)

const defaultBrowserTimeout = 45 * time.Second

// BrowserProductLister renderiza a vitrine num Chrome headless, para lojas que
// só montam o estado inicial depois de executar o JavaScript da página
type BrowserProductLister struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	timeout     time.Duration
}

func NewBrowserProductLister(cfg *config.Config) *BrowserProductLister {
	l := &BrowserProductLister{
		timeout: cfg.SmartStore.RequestTimeout,
	}
	if l.timeout <= 0 {
		l.timeout = defaultBrowserTimeout
	}

	if cfg.SmartStore.ChromeRemoteURL != "" {
		l.allocCtx, l.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.SmartStore.ChromeRemoteURL)
		return l
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
	)
	if cfg.SmartStore.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.SmartStore.UserAgent))
	}
	l.allocCtx, l.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)

	return l
}

func (l *BrowserProductLister) ListProducts(ctx context.Context, storeURL string) ([]domain.ProductInput, error) {
	browserCtx, browserCancel := chromedp.NewContext(l.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			logrus.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	runCtx, cancel := context.WithTimeout(browserCtx, l.timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var state string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(storeURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(`JSON.stringify(window.__PRELOADED_STATE__ || null)`, &state),
	)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_url": storeURL,
			"error":     err.Error(),
		}).Error("smartstore: falha ao renderizar a vitrine")
		return nil, errors.Wrap(ErrNoProducts, err.Error())
	}

	if state == "" || state == "null" {
		return nil, errors.Wrap(ErrNoProducts, smartstoredomain.ErrPreloadedStateNotFound.Error())
	}

	parsed, err := smartstoredomain.ParsePreloadedState(smartstoredomain.PreloadedStatePrefix + state)
	if err != nil {
		return nil, errors.Wrap(ErrNoProducts, err.Error())
	}

	products := parsed.Products()
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	return products, nil
}

func (l *BrowserProductLister) Close() {
	if l.allocCancel != nil {
		l.allocCancel()
	}
}

// NewProductLister escolhe a implementação conforme SMARTSTORE_PRODUCT_LISTER
func NewProductLister(cfg *config.Config, client smartstoreclient.Client) ProductLister {
	if cfg.SmartStore.ProductLister == config.ProductListerBrowser {
		return NewBrowserProductLister(cfg)
	}

	return NewHTTPProductLister(client)
}
