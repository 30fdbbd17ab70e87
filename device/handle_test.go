package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"simscsi/errs"
	"simscsi/transport"
)

type fakeTransport struct{}

func (fakeTransport) Execute(dir transport.Direction, cdb, data, sense []byte) (int, int, error) {
	return 0, 0, nil
}

func TestOpen_UnknownProfileIndex(t *testing.T) {
	_, err := Open("sg0", fakeTransport{}, 999)
	assert.Equal(t, errs.DeviceNotSupported, err)
}

func TestOpen_ValidProfile(t *testing.T) {
	h, err := Open("sg0", fakeTransport{}, 0)
	assert.NoError(t, err)
	assert.Equal(t, "sg0", h.Name())
	assert.False(t, h.Closed())
}

func TestHandle_CloseThenOperationsFail(t *testing.T) {
	h, err := Open("sg0", fakeTransport{}, 0)
	assert.NoError(t, err)

	assert.NoError(t, h.Close())
	assert.True(t, h.Closed())

	_, err = h.Transport()
	assert.Equal(t, errs.InvalidFileDescriptor, err)

	assert.Equal(t, errs.DeviceCloseFailed, h.Close())
}

func TestFindByVendorProduct_NotFound(t *testing.T) {
	_, ok := FindByVendorProduct(0xffff, 0xffff)
	assert.False(t, ok)
}
