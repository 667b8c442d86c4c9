package api

import (
	"encoding/json"
	"net/http"

	reqdto "mask-ledger/internal/handler/dto/request"
	resdto "mask-ledger/internal/handler/dto/response"
	"mask-ledger/internal/handler/httperr"
	"mask-ledger/internal/pkg/errs"
	"mask-ledger/internal/usecase/commands"
	"mask-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	cmds commands.PurchaseCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.PurchaseCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary List transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} resdto.TransactionResponse
// @Failure 500 {object} httperr.Response
// @Router /transactions/ [get]
func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionViews(txs))
}

// @Summary Transaction summary
// @Description Count and total of transactions dated between two dates (inclusive)
// @Tags transactions
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.TransactionSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /transactions/summary/ [get]
func (h *TransactionHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionSummary(summary))
}

// @Summary Purchase masks
// @Description Buy masks from one or more pharmacies in a single atomic operation
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body reqdto.PurchaseRequest true "Purchase request"
// @Success 201 {array} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /purchase/ [post]
func (h *TransactionHandler) Purchase(c *gin.Context) {
	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, bindErrorMessage(err), nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusBadRequest)
		return
	}

	result, err := h.cmds.Purchase(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTransactionSnapshots(result.Transactions))
}

// bindErrorMessage names the offending field when the body has the wrong shape.
func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errs.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + " has an invalid type"
	}
	return "Invalid request"
}
