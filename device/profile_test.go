package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_Generic(t *testing.T) {
	p, ok := Lookup(0)
	assert.True(t, ok)
	assert.Equal(t, "generic-gsm-scsi", p.Name)
	assert.Len(t, p.CDBSelectFile, p.CDBLen)
}

func TestLookup_OutOfRange(t *testing.T) {
	_, ok := Lookup(-1)
	assert.False(t, ok)

	_, ok = Lookup(len([]Profile{}) + 999)
	assert.False(t, ok)
}

func TestRegister_AppendsAndIsFindable(t *testing.T) {
	idx := Register(Profile{
		Name:      "test-vendor-reader",
		CDBLen:    5,
		SenseLen:  18,
		VendorID:  0x1234,
		ProductID: 0x5678,
	})

	p, ok := Lookup(idx)
	assert.True(t, ok)
	assert.Equal(t, "test-vendor-reader", p.Name)

	found, ok := FindByVendorProduct(0x1234, 0x5678)
	assert.True(t, ok)
	assert.Equal(t, idx, found)
}

func TestFindByVendorProduct_NotFoundReturnsZero(t *testing.T) {
	idx, ok := FindByVendorProduct(0xdead, 0xbeef)
	assert.False(t, ok)
	assert.Equal(t, 0, idx)
}
