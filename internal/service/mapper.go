package service

import (
	stderrors "errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tampabaymerch/backoffice/internal/domain"
)

// ErrSkipRow is returned by the field mappers when no mapping exists for a
// supplier category. The ingestion pipeline records it as a row failure and
// moves on; the batch is never aborted.
var ErrSkipRow = stderrors.New("no field mapping for supplier category")

// Row is a single raw record from a supplier export. Field names, casing
// and units vary per supplier category.
type Row map[string]interface{}

// Per-category cost factors. Suppliers do not report cost directly, so it
// is estimated from price by a fixed margin assumption: S&S at a 50%
// margin, SanMar at 40%, Printful base cost runs around 60% of retail.
const (
	costFactorSSActivewear = 0.50
	costFactorSanMar       = 0.60
	costFactorPrintful     = 0.60
	costFactorDirect       = 0.50
)

// mapProduct translates a supplier row into the canonical product shape.
// The owning supplier is attached by the ingestion pipeline afterwards.
func mapProduct(category domain.SupplierCategory, row Row) (*domain.Product, error) {
	switch category {
	case domain.CategorySSActivewear:
		return mapSSActivewearProduct(row)
	case domain.CategorySanMar:
		return mapSanMarProduct(row)
	case domain.CategoryPrintful:
		return mapPrintfulProduct(row)
	case domain.CategoryAmazonAffiliate:
		return mapAffiliateProduct(row)
	case domain.CategoryDirect:
		return mapDirectProduct(row)
	default:
		return nil, ErrSkipRow
	}
}

// mapOrder translates a supplier order row into the canonical order shape
func mapOrder(category domain.SupplierCategory, row Row) (*domain.Order, error) {
	switch category {
	case domain.CategorySSActivewear:
		return mapSupplierOrder(row, "customer_name", "customer_email", "quantity", "unit_price", "order_id", "product_id")
	case domain.CategorySanMar:
		return mapSupplierOrder(row, "CustomerName", "CustomerEmail", "Quantity", "UnitPrice", "OrderNumber", "ProductID")
	case domain.CategoryPrintful:
		return mapSupplierOrder(row, "recipient_name", "recipient_email", "quantity", "retail_price", "external_id", "product_id")
	case domain.CategoryAmazonAffiliate, domain.CategoryDirect:
		return mapSupplierOrder(row, "customer_name", "customer_email", "quantity", "unit_price", "order_id", "product_id")
	default:
		return nil, ErrSkipRow
	}
}

// S&S Activewear exports lowercase snake_case fields
func mapSSActivewearProduct(row Row) (*domain.Product, error) {
	name := rowString(row, "product_name")
	if name == "" {
		return nil, fmt.Errorf("missing product_name")
	}
	price, err := rowFloat(row, "price")
	if err != nil {
		return nil, err
	}
	quantity, err := rowInt(row, "quantity")
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:          name,
		Description:   rowString(row, "description"),
		Price:         price,
		Cost:          price * costFactorSSActivewear,
		SKU:           rowString(row, "sku"),
		StockQuantity: quantity,
		ProductType:   domain.ProductTypePhysical,
		Status:        domain.ProductStatusActive,
	}
	setOptionalString(&product.ImageURL, row, "image_url")
	setOptionalString(&product.SupplierProductID, row, "style_id")
	setOptionalString(&product.Category, row, "category")
	return product, nil
}

// SanMar exports PascalCase fields
func mapSanMarProduct(row Row) (*domain.Product, error) {
	name := rowString(row, "ProductName")
	if name == "" {
		return nil, fmt.Errorf("missing ProductName")
	}
	price, err := rowFloat(row, "Price")
	if err != nil {
		return nil, err
	}
	quantity, err := rowInt(row, "Quantity")
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:          name,
		Description:   rowString(row, "Description"),
		Price:         price,
		Cost:          price * costFactorSanMar,
		SKU:           rowString(row, "SKU"),
		StockQuantity: quantity,
		ProductType:   domain.ProductTypePhysical,
		Status:        domain.ProductStatusActive,
	}
	setOptionalString(&product.ImageURL, row, "ImageURL")
	setOptionalString(&product.SupplierProductID, row, "StyleNumber")
	setOptionalString(&product.Category, row, "Category")
	return product, nil
}

// Printful items are print-on-demand: no stock is tracked and the retail
// price carries the mapping key
func mapPrintfulProduct(row Row) (*domain.Product, error) {
	name := rowString(row, "name")
	if name == "" {
		return nil, fmt.Errorf("missing name")
	}
	price, err := rowFloat(row, "retail_price")
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        name,
		Description: rowString(row, "description"),
		Price:       price,
		Cost:        price * costFactorPrintful,
		SKU:         rowString(row, "sku"),
		ProductType: domain.ProductTypePrintOnDemand,
		Status:      domain.ProductStatusActive,
	}
	setOptionalString(&product.ImageURL, row, "image")
	setOptionalString(&product.SupplierProductID, row, "product_id")
	setOptionalString(&product.SupplierVariantID, row, "variant_id")
	return product, nil
}

// Affiliate listings have no cost: revenue is the commission on the price
func mapAffiliateProduct(row Row) (*domain.Product, error) {
	name := rowString(row, "title")
	if name == "" {
		return nil, fmt.Errorf("missing title")
	}
	price, err := rowFloat(row, "price")
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        name,
		Description: rowString(row, "description"),
		Price:       price,
		Cost:        0,
		SKU:         rowString(row, "asin"),
		ProductType: domain.ProductTypeAffiliate,
		Status:      domain.ProductStatusActive,
	}
	setOptionalString(&product.AffiliateURL, row, "url")
	if _, ok := row["commission"]; ok {
		commission, err := rowFloat(row, "commission")
		if err != nil {
			return nil, err
		}
		product.CommissionRate = &commission
	}
	return product, nil
}

// Direct suppliers ship rows already close to the canonical shape
func mapDirectProduct(row Row) (*domain.Product, error) {
	name := rowString(row, "name")
	if name == "" {
		return nil, fmt.Errorf("missing name")
	}
	price, err := rowFloat(row, "price")
	if err != nil {
		return nil, err
	}
	quantity, err := rowInt(row, "quantity")
	if err != nil {
		return nil, err
	}

	cost := price * costFactorDirect
	if _, ok := row["cost"]; ok {
		cost, err = rowFloat(row, "cost")
		if err != nil {
			return nil, err
		}
	}

	product := &domain.Product{
		Name:          name,
		Description:   rowString(row, "description"),
		Price:         price,
		Cost:          cost,
		SKU:           rowString(row, "sku"),
		StockQuantity: quantity,
		ProductType:   domain.ProductTypePhysical,
		Status:        domain.ProductStatusActive,
	}
	setOptionalString(&product.ImageURL, row, "image_url")
	return product, nil
}

func mapSupplierOrder(row Row, nameKey, emailKey, qtyKey, priceKey, orderIDKey, productIDKey string) (*domain.Order, error) {
	name := rowString(row, nameKey)
	if name == "" {
		return nil, fmt.Errorf("missing %s", nameKey)
	}
	quantity, err := rowInt(row, qtyKey)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	unitPrice, err := rowFloat(row, priceKey)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		CustomerName:    name,
		CustomerEmail:   rowString(row, emailKey),
		ProductID:       rowString(row, productIDKey),
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		TotalAmount:     unitPrice * float64(quantity),
		Status:          domain.OrderStatusPending,
		ShippingAddress: map[string]interface{}{},
	}
	if addr, ok := row["shipping_address"].(map[string]interface{}); ok {
		order.ShippingAddress = addr
	}
	setOptionalString(&order.SupplierOrderID, row, orderIDKey)
	return order, nil
}

// rowString reads a string field, tolerating absence
func rowString(row Row, key string) string {
	if val, ok := row[key].(string); ok {
		return val
	}
	return ""
}

// rowFloat coerces a numeric field with explicit type conversion. A missing
// field is zero; a present but malformed field is an error, which the
// pipeline counts as a row failure without aborting the batch.
func rowFloat(row Row, key string) (float64, error) {
	val, ok := row[key]
	if !ok || val == nil {
		return 0, nil
	}
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("field %s: %q is not a number", key, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %s: unsupported type %T", key, val)
	}
}

// rowInt reads an integral numeric field. A fractional value is malformed,
// not truncated.
func rowInt(row Row, key string) (int, error) {
	f, err := rowFloat(row, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("field %s: %v is not a whole number", key, f)
	}
	return int(f), nil
}

func setOptionalString(dst **string, row Row, key string) {
	if val := rowString(row, key); val != "" {
		*dst = &val
	}
}
