package instruction_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/solana-service/internal/solana/codec"
	"github/chapool/solana-service/internal/solana/instruction"
)

// Token program instruction discriminants, first data byte on the wire.
const (
	discriminantInitializeMint = 0
	discriminantTransfer       = 3
	discriminantMintTo         = 7
)

func newTestService(t *testing.T) instruction.Service {
	t.Helper()

	service, err := instruction.NewService()
	require.NoError(t, err)

	return service
}

func testAddress(fill byte) string {
	return codec.EncodeBase58(bytes.Repeat([]byte{fill}, 32))
}

func TestBuildInitializeMint(t *testing.T) {
	service := newTestService(t)

	mint := testAddress(0x01)
	authority := testAddress(0x02)

	record, err := service.BuildInitializeMint(t.Context(), instruction.InitializeMintParams{
		Mint:          mint,
		MintAuthority: authority,
		Decimals:      9,
	})
	require.NoError(t, err)

	assert.Equal(t, solana.TokenProgramID.String(), record.ProgramID)

	require.Len(t, record.Accounts, 2)
	assert.Equal(t, mint, record.Accounts[0].Pubkey)
	assert.True(t, record.Accounts[0].IsWritable)
	assert.False(t, record.Accounts[0].IsSigner)
	assert.Equal(t, solana.SysVarRentPubkey.String(), record.Accounts[1].Pubkey)
	assert.False(t, record.Accounts[1].IsWritable)
	assert.False(t, record.Accounts[1].IsSigner)

	data, err := codec.DecodeBase64(record.Data)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 34)
	assert.EqualValues(t, discriminantInitializeMint, data[0])
	assert.EqualValues(t, 9, data[1])

	authorityRaw, err := codec.DecodeBase58(authority)
	require.NoError(t, err)
	assert.Equal(t, authorityRaw, data[2:34], "mint authority must follow the decimals byte")
}

func TestBuildMintTo(t *testing.T) {
	service := newTestService(t)

	mint := testAddress(0x01)
	destination := testAddress(0x02)
	authority := testAddress(0x03)

	record, err := service.BuildMintTo(t.Context(), instruction.MintToParams{
		Mint:        mint,
		Destination: destination,
		Authority:   authority,
		Amount:      1_000_000,
	})
	require.NoError(t, err)

	assert.Equal(t, solana.TokenProgramID.String(), record.ProgramID)

	require.Len(t, record.Accounts, 3)
	assert.Equal(t, mint, record.Accounts[0].Pubkey)
	assert.True(t, record.Accounts[0].IsWritable)
	assert.Equal(t, destination, record.Accounts[1].Pubkey)
	assert.True(t, record.Accounts[1].IsWritable)
	assert.Equal(t, authority, record.Accounts[2].Pubkey)
	assert.True(t, record.Accounts[2].IsSigner)
	assert.False(t, record.Accounts[2].IsWritable)

	data, err := codec.DecodeBase64(record.Data)
	require.NoError(t, err)
	require.Len(t, data, 9)
	assert.EqualValues(t, discriminantMintTo, data[0])
	assert.EqualValues(t, 1_000_000, binary.LittleEndian.Uint64(data[1:9]))
}

func TestBuildTransferSol(t *testing.T) {
	service := newTestService(t)

	from := testAddress(0x0A)
	to := testAddress(0x0B)

	record, err := service.BuildTransferSol(t.Context(), instruction.TransferSolParams{
		From:     from,
		To:       to,
		Lamports: 1_000_000,
	})
	require.NoError(t, err)

	assert.Equal(t, solana.SystemProgramID.String(), record.ProgramID)

	require.Len(t, record.Accounts, 2)
	assert.Equal(t, from, record.Accounts[0].Pubkey)
	assert.True(t, record.Accounts[0].IsSigner)
	assert.True(t, record.Accounts[0].IsWritable)
	assert.Equal(t, to, record.Accounts[1].Pubkey)
	assert.False(t, record.Accounts[1].IsSigner)
	assert.True(t, record.Accounts[1].IsWritable)

	data, err := codec.DecodeBase64(record.Data)
	require.NoError(t, err)
	require.Len(t, data, 12)
	assert.EqualValues(t, 2, binary.LittleEndian.Uint32(data[0:4]), "system transfer instruction index")
	assert.EqualValues(t, 1_000_000, binary.LittleEndian.Uint64(data[4:12]))
}

func TestBuildTransferToken(t *testing.T) {
	service := newTestService(t)

	destination := testAddress(0x0C)
	mint := testAddress(0x0D)
	owner := testAddress(0x0E)

	record, err := service.BuildTransferToken(t.Context(), instruction.TransferTokenParams{
		Destination: destination,
		Mint:        mint,
		Owner:       owner,
		Amount:      5_000,
	})
	require.NoError(t, err)

	assert.Equal(t, solana.TokenProgramID.String(), record.ProgramID)

	// the owner doubles as the source account
	require.Len(t, record.Accounts, 3)
	assert.Equal(t, owner, record.Accounts[0].Pubkey)
	assert.True(t, record.Accounts[0].IsWritable)
	assert.Equal(t, destination, record.Accounts[1].Pubkey)
	assert.True(t, record.Accounts[1].IsWritable)
	assert.Equal(t, owner, record.Accounts[2].Pubkey)
	assert.True(t, record.Accounts[2].IsSigner)

	data, err := codec.DecodeBase64(record.Data)
	require.NoError(t, err)
	require.Len(t, data, 9)
	assert.EqualValues(t, discriminantTransfer, data[0])
	assert.EqualValues(t, 5_000, binary.LittleEndian.Uint64(data[1:9]))
}

func TestInvalidAddressNamesField(t *testing.T) {
	service := newTestService(t)

	valid := testAddress(0x01)
	// valid base58, but decodes to fewer than 32 bytes
	short := codec.EncodeBase58(bytes.Repeat([]byte{0x01}, 31))

	t.Run("bad alphabet", func(t *testing.T) {
		_, err := service.BuildInitializeMint(t.Context(), instruction.InitializeMintParams{
			Mint:          "l0O",
			MintAuthority: valid,
			Decimals:      0,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, instruction.ErrInvalidAddress))
		assert.Contains(t, err.Error(), "mint")
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := service.BuildMintTo(t.Context(), instruction.MintToParams{
			Mint:        valid,
			Destination: short,
			Authority:   valid,
			Amount:      1,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, instruction.ErrInvalidAddress))
		assert.Contains(t, err.Error(), "destination")
	})

	t.Run("transfer sol from", func(t *testing.T) {
		_, err := service.BuildTransferSol(t.Context(), instruction.TransferSolParams{
			From:     short,
			To:       valid,
			Lamports: 1,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, instruction.ErrInvalidAddress))
		assert.Contains(t, err.Error(), "from")
	})

	t.Run("transfer token mint validated despite being unused", func(t *testing.T) {
		_, err := service.BuildTransferToken(t.Context(), instruction.TransferTokenParams{
			Destination: valid,
			Mint:        short,
			Owner:       valid,
			Amount:      1,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, instruction.ErrInvalidAddress))
		assert.Contains(t, err.Error(), "mint")
	})
}
