package smartstoredomain

import (
	"errors"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PreloadedStatePrefix marca o script da vitrine que carrega o estado inicial da página
const PreloadedStatePrefix = "window.__PRELOADED_STATE__="

var ErrPreloadedStateNotFound = errors.New("smartstore: __PRELOADED_STATE__ não encontrado na página da loja")

type PreloadedState struct {
	WidgetContents WidgetContents `json:"widgetContents"`
}

type WidgetContents struct {
	NewProductWidget   *ProductWidget      `json:"newProductWidget"`
	WholeProductWidget *WholeProductWidget `json:"wholeProductWidget"`
	ProductList        *ProductWidget      `json:"productList"`
}

type ProductWidget struct {
	A *struct {
		Data []Product `json:"data"`
	} `json:"A"`
}

type WholeProductWidget struct {
	A *struct {
		Data *struct {
			SimpleProducts []Product `json:"simpleProducts"`
		} `json:"data"`
	} `json:"A"`
}

type Product struct {
	ProductNo     ProductNo `json:"productNo"`
	Name          string    `json:"name"`
	StockQuantity *int      `json:"stockQuantity"`
	SalePrice     *int      `json:"salePrice"`
	BenefitsView  *struct {
		DiscountedSalePrice *int `json:"discountedSalePrice"`
	} `json:"benefitsView"`
}

// ProductNo aceita o identificador tanto como número quanto como string
type ProductNo string

func (n *ProductNo) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = ProductNo(s)
		return nil
	}

	var num jsoniter.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = ProductNo(num.String())

	return nil
}

// ToProductInput aplica os mesmos defaults da vitrine: estoque 0 e preço com desconto quando houver
func (p Product) ToProductInput() domain.ProductInput {
	input := domain.ProductInput{
		ProductID: string(p.ProductNo),
		Name:      p.Name,
	}

	if p.StockQuantity != nil {
		input.StockQuantity = *p.StockQuantity
	}

	switch {
	case p.BenefitsView != nil && p.BenefitsView.DiscountedSalePrice != nil:
		input.Price = *p.BenefitsView.DiscountedSalePrice
	case p.SalePrice != nil:
		input.Price = *p.SalePrice
	}

	return input
}

// Products devolve a primeira lista não vazia entre os widgets conhecidos
func (s *PreloadedState) Products() []domain.ProductInput {
	w := s.WidgetContents

	var raw []Product
	switch {
	case w.NewProductWidget != nil && w.NewProductWidget.A != nil && len(w.NewProductWidget.A.Data) > 0:
		raw = w.NewProductWidget.A.Data
	case w.WholeProductWidget != nil && w.WholeProductWidget.A != nil && w.WholeProductWidget.A.Data != nil &&
		len(w.WholeProductWidget.A.Data.SimpleProducts) > 0:
		raw = w.WholeProductWidget.A.Data.SimpleProducts
	case w.ProductList != nil && w.ProductList.A != nil:
		raw = w.ProductList.A.Data
	}

	products := make([]domain.ProductInput, 0, len(raw))
	for _, p := range raw {
		products = append(products, p.ToProductInput())
	}

	return products
}

// ParsePreloadedState recebe o texto do <script> e decodifica o JSON após o prefixo
func ParsePreloadedState(script string) (*PreloadedState, error) {
	idx := strings.Index(script, PreloadedStatePrefix)
	if idx < 0 {
		return nil, ErrPreloadedStateNotFound
	}

	payload := strings.TrimSpace(script[idx+len(PreloadedStatePrefix):])
	payload = strings.TrimSuffix(payload, ";")

	state := &PreloadedState{}
	if err := json.Unmarshal([]byte(payload), state); err != nil {
		return nil, err
	}

	return state, nil
}
