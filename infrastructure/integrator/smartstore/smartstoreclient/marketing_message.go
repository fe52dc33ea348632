package smartstoreclient

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	smartstoredomain "github.com/vfg2006/smartstore-sales-api/infrastructure/integrator/smartstore/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const marketingMessagePath = "/i/v1/marketing-message/%s"

// GetMarketingMessage faz uma única requisição, sem retentativa.
// Os erros são classificados para que o chamador decida o backoff.
func (c *SmartStoreClient) GetMarketingMessage(ctx context.Context, productID string, basis int) (*smartstoredomain.MarketingMessage, error) {
	ctx, span := tracer.Start(ctx, "GetMarketingMessage", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.String("product_id", productID),
		attribute.Int("basis", basis),
	)

	req := c.http.R().
		SetContext(ctx).
		SetHeader("referer", fmt.Sprintf("%s/product/%s", c.baseURL, productID))

	// sem o cookie de sessão a Naver responde sem mainPhrase
	if c.cookie != "" {
		req.SetHeader("Cookie", c.cookie)
	}

	res, err := req.
		SetQueryParams(map[string]string{
			"currentPurchaseType": "Repaid",
			"usePurchased":        "true",
			"basisPurchased":      strconv.Itoa(basis),
		}).
		Get(fmt.Sprintf(marketingMessagePath, url.PathEscape(productID)))
	if err != nil {
		classified := classifyTransportError(err)
		span.RecordError(classified)
		span.SetStatus(codes.Error, classified.Error())
		return nil, classified
	}

	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode()))

	body := bytes.TrimSpace(res.Body())
	if len(body) == 0 {
		span.SetStatus(codes.Error, ErrEmptyResponse.Error())
		return nil, ErrEmptyResponse
	}

	if !res.IsSuccess() {
		err := errors.Wrapf(ErrMalformedResponse, "status %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// o corpo precisa ser um objeto JSON; arrays e literais contam como inválidos
	if body[0] != '{' {
		span.SetStatus(codes.Error, ErrMalformedResponse.Error())
		return nil, errors.Wrap(ErrMalformedResponse, "corpo não é um objeto JSON")
	}

	msg := &smartstoredomain.MarketingMessage{}
	if err := json.Unmarshal(body, msg); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, errors.Wrap(ErrMalformedResponse, err.Error())
	}

	span.SetStatus(codes.Ok, "")

	return msg, nil
}
