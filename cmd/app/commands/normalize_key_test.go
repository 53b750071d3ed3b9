package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/secretkey/internal/crypto/domain"
	cryptoMocks "github.com/allisson/secretkey/internal/crypto/usecase/mocks"
)

func TestRunNormalizeKey(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &cryptoMocks.MockCipherUseCase{}
		mockUseCase.On("NormalizeAndEncode", "PabloPicasso").Return(cryptoDomain.EncodedKey("UGFibG9QaWNhc3NvQ0RFRg=="))

		var out bytes.Buffer
		err := RunNormalizeKey(ctx, mockUseCase, logger, &out, "PabloPicasso", "text")

		require.NoError(t, err)
		assert.Equal(t, "UGFibG9QaWNhc3NvQ0RFRg==\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &cryptoMocks.MockCipherUseCase{}
		mockUseCase.On("NormalizeAndEncode", "PabloPicasso").Return(cryptoDomain.EncodedKey("UGFibG9QaWNhc3NvQ0RFRg=="))

		var out bytes.Buffer
		err := RunNormalizeKey(ctx, mockUseCase, logger, &out, "PabloPicasso", "json")

		require.NoError(t, err)
		var result map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, "UGFibG9QaWNhc3NvQ0RFRg==", result["key"])
	})
}
