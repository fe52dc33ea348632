package smartstoreclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GetStorePage baixa o HTML da vitrine. storeURL é absoluta e precisa estar no host da SmartStore.
func (c *SmartStoreClient) GetStorePage(ctx context.Context, storeURL string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "GetStorePage", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(attribute.String("store_url", storeURL))

	parsed, err := url.Parse(storeURL)
	if err != nil || !strings.EqualFold(parsed.Host, c.host) {
		span.SetStatus(codes.Error, ErrForeignHost.Error())
		return nil, errors.Wrap(ErrForeignHost, storeURL)
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("accept", "text/html,application/xhtml+xml").
		Get(storeURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("erro ao buscar página da loja: %w", err)
	}

	if !res.IsSuccess() {
		err := fmt.Errorf("página da loja respondeu com status: %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return res.Body(), nil
}
