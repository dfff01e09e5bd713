package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, OrderStatus("refunded").IsValid())
	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("Pending").IsValid())
}

func TestProductTypeIsValid(t *testing.T) {
	assert.True(t, ProductTypePhysical.IsValid())
	assert.True(t, ProductTypePrintOnDemand.IsValid())
	assert.True(t, ProductTypeAffiliate.IsValid())
	assert.True(t, ProductTypeDigital.IsValid())
	assert.False(t, ProductType("subscription").IsValid())
}

func TestProductStatusIsValid(t *testing.T) {
	assert.True(t, ProductStatusActive.IsValid())
	assert.True(t, ProductStatusInactive.IsValid())
	assert.True(t, ProductStatusOutOfStock.IsValid())
	assert.False(t, ProductStatus("archived").IsValid())
}

func TestSupplierCategoryIsValid(t *testing.T) {
	valid := []SupplierCategory{
		CategorySSActivewear,
		CategorySanMar,
		CategoryPrintful,
		CategoryAmazonAffiliate,
		CategoryDirect,
	}
	for _, c := range valid {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, SupplierCategory("alibaba").IsValid())
}
