package token_test

import (
	"encoding/binary"
	"net/http"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/solana-service/internal/api"
	"github/chapool/solana-service/internal/solana/codec"
	"github/chapool/solana-service/internal/test"
	"github/chapool/solana-service/internal/types"
)

func TestPostMintToken(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		mint := testAddress(0x01)
		destination := testAddress(0x02)
		authority := testAddress(0x03)

		res := test.PerformRequest(t, s, "POST", "/token/mint", map[string]any{
			"mint":        mint,
			"destination": destination,
			"authority":   authority,
			"amount":      1000000,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.InstructionResponse
		test.ParseSuccess(t, res, &response)

		require.NotNil(t, response.ProgramID)
		assert.Equal(t, solana.TokenProgramID.String(), *response.ProgramID)

		require.Len(t, response.Accounts, 3)
		assert.Equal(t, mint, *response.Accounts[0].Pubkey)
		assert.Equal(t, destination, *response.Accounts[1].Pubkey)
		assert.Equal(t, authority, *response.Accounts[2].Pubkey)
		assert.True(t, *response.Accounts[2].IsSigner)

		require.NotNil(t, response.InstructionData)
		data, err := codec.DecodeBase64(*response.InstructionData)
		require.NoError(t, err)
		require.Len(t, data, 9)
		assert.EqualValues(t, 7, data[0], "mint-to discriminant byte")
		assert.EqualValues(t, 1000000, binary.LittleEndian.Uint64(data[1:9]))
	})
}

func TestPostMintTokenInvalidAuthority(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/token/mint", map[string]any{
			"mint":        testAddress(0x01),
			"destination": testAddress(0x02),
			"authority":   "IIII",
			"amount":      1,
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		errMsg := test.ParseError(t, res)
		assert.Contains(t, errMsg, "authority")
	})
}
