package infrastructure

import (
	"testing"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtensionFromMIME(t *testing.T) {
	ext, err := GetExtensionFromMIME("image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "jpg", ext)

	ext, err = GetExtensionFromMIME("image/webp")
	require.NoError(t, err)
	assert.Equal(t, "webp", ext)

	_, err = GetExtensionFromMIME("application/pdf")
	require.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}

func TestSafeObjectName(t *testing.T) {
	assert.Equal(t, "red-shirt", SafeObjectName("Red Shirt.PNG"))
	assert.Equal(t, "passwd", SafeObjectName("../../etc/passwd"))
	assert.Equal(t, "image", SafeObjectName("???.jpg"))
	assert.Equal(t, "image", SafeObjectName(""))
}
