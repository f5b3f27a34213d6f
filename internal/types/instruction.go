package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// InstructionAccount is the transport form of a single account annotation.
type InstructionAccount struct {
	// Base58-encoded account address
	Pubkey *string `json:"pubkey"`

	// Whether the account must sign the enclosing transaction
	IsSigner *bool `json:"is_signer"`

	// Whether the instruction may mutate the account
	IsWritable *bool `json:"is_writable"`
}

func (m *InstructionAccount) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("pubkey", "body", m.Pubkey); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("is_signer", "body", m.IsSigner); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("is_writable", "body", m.IsWritable); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// InstructionResponse is the transport form of a constructed instruction.
// Account order is significant and is carried exactly as constructed.
type InstructionResponse struct {
	// Base58-encoded program id
	ProgramID *string `json:"program_id"`

	// Ordered account list
	Accounts []*InstructionAccount `json:"accounts"`

	// Base64-encoded instruction payload
	InstructionData *string `json:"instruction_data"`
}

func (m *InstructionResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("program_id", "body", m.ProgramID); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("instruction_data", "body", m.InstructionData); err != nil {
		res = append(res, err)
	}

	for i := range m.Accounts {
		if m.Accounts[i] == nil {
			continue
		}

		if err := m.Accounts[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostCreateTokenPayload is the request body of POST /token/create.
type PostCreateTokenPayload struct {
	// Base58-encoded address of the mint authority
	MintAuthority *string `json:"mintAuthority"`

	// Base58-encoded address of the mint account
	Mint *string `json:"mint"`

	// Number of base-10 digits to the right of the decimal place
	Decimals *int64 `json:"decimals"`
}

func (m *PostCreateTokenPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("mintAuthority", "body", m.MintAuthority); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("mint", "body", m.Mint); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("decimals", "body", m.Decimals); err != nil {
		res = append(res, err)
	} else {
		if err := validate.MinimumInt("decimals", "body", *m.Decimals, 0, false); err != nil {
			res = append(res, err)
		}

		if err := validate.MaximumInt("decimals", "body", *m.Decimals, 255, false); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostMintTokenPayload is the request body of POST /token/mint.
type PostMintTokenPayload struct {
	// Base58-encoded address of the mint account
	Mint *string `json:"mint"`

	// Base58-encoded address of the destination token account
	Destination *string `json:"destination"`

	// Base58-encoded address of the mint authority
	Authority *string `json:"authority"`

	// Amount of base units to mint
	Amount *uint64 `json:"amount"`
}

func (m *PostMintTokenPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("mint", "body", m.Mint); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("destination", "body", m.Destination); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("authority", "body", m.Authority); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("amount", "body", m.Amount); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostSendSolPayload is the request body of POST /send/sol.
type PostSendSolPayload struct {
	// Base58-encoded address of the funding account
	From *string `json:"from"`

	// Base58-encoded address of the recipient account
	To *string `json:"to"`

	// Amount to transfer in lamports
	Lamports *uint64 `json:"lamports"`
}

func (m *PostSendSolPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("from", "body", m.From); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("to", "body", m.To); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("lamports", "body", m.Lamports); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// PostSendTokenPayload is the request body of POST /send/token.
type PostSendTokenPayload struct {
	// Base58-encoded address of the destination token account
	Destination *string `json:"destination"`

	// Base58-encoded address of the mint account
	Mint *string `json:"mint"`

	// Base58-encoded address of the owner, also used as the source account
	Owner *string `json:"owner"`

	// Amount of base units to transfer
	Amount *uint64 `json:"amount"`
}

func (m *PostSendTokenPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("destination", "body", m.Destination); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("mint", "body", m.Mint); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("owner", "body", m.Owner); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("amount", "body", m.Amount); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}
