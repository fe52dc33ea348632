package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProbeResult é a resposta de uma única sondagem ao endpoint de marketing.
// Zero significa "nenhuma venda nesse basis" ou "falha após as tentativas".
type ProbeResult struct {
	Count int `json:"count"`
}

// SalesSnapshot é a tripla de vendas inferidas para um produto
type SalesSnapshot struct {
	Today    int `json:"today"`
	Week     int `json:"week"`
	HalfYear int `json:"halfYear"`
}

// ProductInput é o produto extraído da vitrine da loja
type ProductInput struct {
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stockQuantity"`
	Price         int    `json:"price"`
}

type ProductSalesResult struct {
	ProductID     string        `json:"productId"`
	Name          string        `json:"name"`
	StockQuantity int           `json:"stockQuantity"`
	Price         int           `json:"price"`
	Sales         SalesSnapshot `json:"sales"`
}

// RevenueEstimate soma preço x vendas de cada janela
type RevenueEstimate struct {
	Today    decimal.Decimal `json:"today"`
	Week     decimal.Decimal `json:"week"`
	HalfYear decimal.Decimal `json:"halfYear"`
}

type StoreAggregate struct {
	StoreURL      string               `json:"storeUrl"`
	StoreName     string               `json:"storeName"`
	Products      []ProductSalesResult `json:"products"`
	TodaySales    int                  `json:"todaySales"`
	WeekSales     int                  `json:"weekSales"`
	HalfYearSales int                  `json:"halfYearSales"`
	Revenue       RevenueEstimate      `json:"revenue"`
	AnalyzedAt    time.Time            `json:"analyzedAt"`
}
