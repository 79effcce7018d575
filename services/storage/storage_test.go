package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidImagePayload(t *testing.T) {
	assert.True(t, ValidImagePayload("data:image/png;base64,iVBORw0KGgo="))
	assert.True(t, ValidImagePayload("https://res.cloudinary.com/demo/image/upload/sample.jpg"))
	assert.False(t, ValidImagePayload("data:text/plain;base64,aGVsbG8="))
	assert.False(t, ValidImagePayload("/etc/passwd"))
	assert.False(t, ValidImagePayload(""))
}

func TestNewStorageService_RequiresCredentials(t *testing.T) {
	_, err := NewStorageService("", "key", "secret", zap.NewNop())
	assert.Error(t, err)
}

func TestUploadImage_RejectsLocalPaths(t *testing.T) {
	svc, err := NewStorageService("demo", "key", "secret", zap.NewNop())
	require.NoError(t, err)

	_, err = svc.UploadImage(context.Background(), "/tmp/house.png", "TH_Assets/")
	assert.ErrorIs(t, err, ErrInvalidImage)
}
