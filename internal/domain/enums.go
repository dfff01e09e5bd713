package domain

// OrderStatus represents the fulfillment status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the order status is a known value. Transitions between
// statuses are deliberately unrestricted: any status may be overwritten by
// any other, including resetting delivered back to pending.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// ProductStatus represents the availability of a product
type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusInactive   ProductStatus = "inactive"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

// IsValid checks if the product status is a known value
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock:
		return true
	default:
		return false
	}
}

// ProductType classifies how a product is sourced and fulfilled
type ProductType string

const (
	ProductTypePhysical      ProductType = "physical"
	ProductTypePrintOnDemand ProductType = "print_on_demand"
	ProductTypeAffiliate     ProductType = "affiliate"
	ProductTypeDigital       ProductType = "digital"
)

// IsValid checks if the product type is a known value
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypePhysical, ProductTypePrintOnDemand, ProductTypeAffiliate, ProductTypeDigital:
		return true
	default:
		return false
	}
}

// SupplierCategory identifies which field mapping applies to a supplier's
// rows during ingestion. The set is closed for mapping purposes: rows for
// a category outside it are skipped, though a placeholder supplier is still
// registered under the raw slug.
type SupplierCategory string

const (
	CategorySSActivewear    SupplierCategory = "ss_activewear"
	CategorySanMar          SupplierCategory = "sanmar"
	CategoryPrintful        SupplierCategory = "printful"
	CategoryAmazonAffiliate SupplierCategory = "amazon_affiliate"
	CategoryDirect          SupplierCategory = "direct"
)

// IsValid checks if the supplier category has a field mapping
func (c SupplierCategory) IsValid() bool {
	switch c {
	case CategorySSActivewear, CategorySanMar, CategoryPrintful, CategoryAmazonAffiliate, CategoryDirect:
		return true
	default:
		return false
	}
}
