package instruction

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/pkg/errors"
	"github/chapool/solana-service/internal/solana/codec"
	"github/chapool/solana-service/internal/util"
)

type service struct{}

// NewService creates a new instruction builder service.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService() (Service, error) {
	return &service{}, nil
}

// BuildInitializeMint constructs an SPL initialize-mint instruction. The
// freeze authority is left absent.
func (s *service) BuildInitializeMint(ctx context.Context, params InitializeMintParams) (*Record, error) {
	mint, err := parseAddress("mint", params.Mint)
	if err != nil {
		return nil, err
	}

	authority, err := parseAddress("mintAuthority", params.MintAuthority)
	if err != nil {
		return nil, err
	}

	inst, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(params.Decimals).
		SetMintAuthority(authority).
		SetMintAccount(mint).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Msg("Initialize-mint construction rejected")
		return nil, errors.Wrap(ErrConstructionFailed, err.Error())
	}

	return renderRecord(inst)
}

// BuildMintTo constructs an SPL mint-to instruction without multisig
// co-signers.
func (s *service) BuildMintTo(ctx context.Context, params MintToParams) (*Record, error) {
	mint, err := parseAddress("mint", params.Mint)
	if err != nil {
		return nil, err
	}

	destination, err := parseAddress("destination", params.Destination)
	if err != nil {
		return nil, err
	}

	authority, err := parseAddress("authority", params.Authority)
	if err != nil {
		return nil, err
	}

	inst, err := token.NewMintToInstructionBuilder().
		SetAmount(params.Amount).
		SetMintAccount(mint).
		SetDestinationAccount(destination).
		SetAuthorityAccount(authority).
		ValidateAndBuild()
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Msg("Mint-to construction rejected")
		return nil, errors.Wrap(ErrConstructionFailed, err.Error())
	}

	return renderRecord(inst)
}

// BuildTransferSol constructs a system-program lamport transfer. Beyond
// address parsing this path has no further validation to fail on.
func (s *service) BuildTransferSol(ctx context.Context, params TransferSolParams) (*Record, error) {
	from, err := parseAddress("from", params.From)
	if err != nil {
		return nil, err
	}

	to, err := parseAddress("to", params.To)
	if err != nil {
		return nil, err
	}

	inst, err := system.NewTransferInstruction(params.Lamports, from, to).ValidateAndBuild()
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Msg("Transfer construction rejected")
		return nil, errors.Wrap(ErrConstructionFailed, err.Error())
	}

	return renderRecord(inst)
}

// BuildTransferToken constructs an SPL token transfer.
//
// NOTE for protocol reviewers: the owner address is used as BOTH the source
// token account and the transfer authority. Callers do not supply a separate
// source token account. This mirrors the established external behavior of
// the endpoint and is intentionally kept, although the general SPL transfer
// takes a distinct source account.
func (s *service) BuildTransferToken(ctx context.Context, params TransferTokenParams) (*Record, error) {
	destination, err := parseAddress("destination", params.Destination)
	if err != nil {
		return nil, err
	}

	if _, err := parseAddress("mint", params.Mint); err != nil {
		return nil, err
	}

	owner, err := parseAddress("owner", params.Owner)
	if err != nil {
		return nil, err
	}

	inst, err := token.NewTransferInstructionBuilder().
		SetAmount(params.Amount).
		SetSourceAccount(owner).
		SetDestinationAccount(destination).
		SetOwnerAccount(owner).
		ValidateAndBuild()
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Msg("Token transfer construction rejected")
		return nil, errors.Wrap(ErrConstructionFailed, err.Error())
	}

	return renderRecord(inst)
}

// parseAddress decodes one base58 address parameter, naming the field in
// every failure so the caller can correct the exact input.
func parseAddress(field string, value string) (solana.PublicKey, error) {
	raw, err := codec.DecodeBase58(value)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(ErrInvalidAddress, "%s is not valid base58", field)
	}

	if len(raw) != solana.PublicKeyLength {
		return solana.PublicKey{}, errors.Wrapf(ErrInvalidAddress, "%s must decode to exactly %d bytes", field, solana.PublicKeyLength)
	}

	return solana.PublicKeyFromBytes(raw), nil
}

// renderRecord translates a built instruction into transport form,
// preserving the account order exactly as constructed.
func renderRecord(inst solana.Instruction) (*Record, error) {
	data, err := inst.Data()
	if err != nil {
		return nil, errors.Wrap(ErrConstructionFailed, err.Error())
	}

	metas := inst.Accounts()
	accounts := make([]AccountMeta, 0, len(metas))
	for _, meta := range metas {
		accounts = append(accounts, AccountMeta{
			Pubkey:     meta.PublicKey.String(),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}

	return &Record{
		ProgramID: inst.ProgramID().String(),
		Accounts:  accounts,
		Data:      codec.EncodeBase64(data),
	}, nil
}
