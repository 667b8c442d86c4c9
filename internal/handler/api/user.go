package api

import (
	"net/http"

	resdto "mask-ledger/internal/handler/dto/response"
	"mask-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	q queries.UserQueries
}

func NewUserHandler(q queries.UserQueries) *UserHandler {
	return &UserHandler{q: q}
}

// @Summary List users
// @Description List every user ordered by id
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Failure 500 {object} httperr.Response
// @Router /users/ [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(users))
}

// @Summary Top users by transaction amount
// @Description Rank users by the sum of their transaction amounts between two dates (inclusive)
// @Tags users
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param limit query int false "Max users (1-100, default 10)"
// @Success 200 {array} resdto.TopUserResponse
// @Failure 400 {object} httperr.Response
// @Router /users/top/ [get]
func (h *UserHandler) Top(c *gin.Context) {
	users, err := h.q.TopByTransactionAmount(c.Request.Context(), c.Query("start_date"), c.Query("end_date"), c.Query("limit"))
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTopUserViews(users))
}
