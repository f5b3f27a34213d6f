package httperrors

import (
	"net/http"

	"github/chapool/solana-service/internal/types"
)

var (
	ErrBadRequestMalformedBody = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Request body is not valid JSON.")
)
