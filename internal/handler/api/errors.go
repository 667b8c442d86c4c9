package api

import (
	"net/http"

	"mask-ledger/internal/domain/ledger"
	resdto "mask-ledger/internal/handler/dto/response"
	"mask-ledger/internal/handler/httperr"
	"mask-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps the domain sentinels to HTTP statuses.
// notFoundStatus lets the purchase route answer 400 for unknown references.
func abortWithUseCaseError(c *gin.Context, err error, notFoundStatus int) {
	switch {
	case errs.Is(err, errs.ErrInvalidRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, notFoundStatus, err, err.Error(), nil)
	case errs.Is(err, errs.ErrInsufficientFunds):
		var detail any
		var funds *ledger.InsufficientFundsError
		if errs.As(err, &funds) {
			detail = resdto.InsufficientFundsDetail{
				Required:  funds.Required.String(),
				Available: funds.Available.String(),
			}
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Insufficient funds", detail)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request conflicted with a concurrent update, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
