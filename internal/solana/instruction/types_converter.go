package instruction

import (
	"github.com/go-openapi/swag"
	"github/chapool/solana-service/internal/types"
)

// ToInstructionResponse renders the record in its wire form, keeping the
// account order untouched.
func (r *Record) ToInstructionResponse() *types.InstructionResponse {
	accounts := make([]*types.InstructionAccount, 0, len(r.Accounts))
	for _, account := range r.Accounts {
		accounts = append(accounts, &types.InstructionAccount{
			Pubkey:     swag.String(account.Pubkey),
			IsSigner:   swag.Bool(account.IsSigner),
			IsWritable: swag.Bool(account.IsWritable),
		})
	}

	return &types.InstructionResponse{
		ProgramID:       swag.String(r.ProgramID),
		Accounts:        accounts,
		InstructionData: swag.String(r.Data),
	}
}
