// Package instruction builds transport-safe Solana instruction records for
// the SPL token and system programs. Address parsing happens here; the
// actual instruction layout is delegated to the program-specific
// constructors of solana-go.
package instruction

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidAddress tags address parameters that do not decode to a
	// 32-byte value. Wrapping messages name the offending field.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrConstructionFailed tags rejections by the underlying program
	// instruction constructors.
	ErrConstructionFailed = errors.New("instruction construction failed")
)

// AccountMeta is the transport form of one account annotation. Order within
// a Record is fixed by the program semantics and must not be changed.
type AccountMeta struct {
	Pubkey     string
	IsSigner   bool
	IsWritable bool
}

// Record is a fully constructed instruction in transport form: base58
// program id and account addresses, base64 payload.
type Record struct {
	ProgramID string
	Accounts  []AccountMeta
	Data      string
}

// InitializeMintParams configures a token mint initialization.
// No freeze authority is ever set.
type InitializeMintParams struct {
	Mint          string
	MintAuthority string
	Decimals      uint8
}

// MintToParams configures minting token base units to a destination
// account. Multisig co-signers are not supported.
type MintToParams struct {
	Mint        string
	Destination string
	Authority   string
	Amount      uint64
}

// TransferSolParams configures a native lamport transfer.
type TransferSolParams struct {
	From     string
	To       string
	Lamports uint64
}

// TransferTokenParams configures an SPL token transfer. Owner doubles as
// the source account; see BuildTransferToken.
type TransferTokenParams struct {
	Destination string
	Mint        string
	Owner       string
	Amount      uint64
}

// Service builds instruction records. All methods are pure and safe for
// concurrent use.
type Service interface {
	BuildInitializeMint(ctx context.Context, params InitializeMintParams) (*Record, error)
	BuildMintTo(ctx context.Context, params MintToParams) (*Record, error)
	BuildTransferSol(ctx context.Context, params TransferSolParams) (*Record, error)
	BuildTransferToken(ctx context.Context, params TransferTokenParams) (*Record, error)
}
