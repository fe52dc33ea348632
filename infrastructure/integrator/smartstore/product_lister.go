package smartstore

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	smartstoredomain "github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/domain"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/smartstoreclient"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
)

var ErrNoProducts = errors.New("smartstore: nenhum produto encontrado na loja")

type ProductLister interface {
	ListProducts(ctx context.Context, storeURL string) ([]domain.ProductInput, error)
}

type HTTPProductLister struct {
	Client smartstoreclient.Client
}

func NewHTTPProductLister(client smartstoreclient.Client) ProductLister {
	return &HTTPProductLister{
		Client: client,
	}
}

func (l *HTTPProductLister) ListProducts(ctx context.Context, storeURL string) ([]domain.ProductInput, error) {
	body, err := l.Client.GetStorePage(ctx, storeURL)
	if err != nil {
		return nil, errors.Wrap(ErrNoProducts, err.Error())
	}

	products, err := ExtractProducts(body)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_url": storeURL,
			"error":     err.Error(),
		}).Error("smartstore: falha ao extrair produtos da página")
		return nil, errors.Wrap(ErrNoProducts, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"store_url": storeURL,
		"products":  len(products),
	}).Info("smartstore: produtos extraídos da vitrine")

	return products, nil
}

// ExtractProducts procura o <script> com window.__PRELOADED_STATE__ e devolve os produtos dele
func ExtractProducts(html []byte) ([]domain.ProductInput, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}

	var script string
	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := sel.Text()
		if strings.Contains(text, smartstoredomain.PreloadedStatePrefix) {
			script = text
			return false
		}
		return true
	})

	if script == "" {
		return nil, smartstoredomain.ErrPreloadedStateNotFound
	}

	state, err := smartstoredomain.ParsePreloadedState(script)
	if err != nil {
		return nil, err
	}

	products := state.Products()
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	return products, nil
}
