package api

import (
	"net/http"
	"strconv"

	resdto "mask-ledger/internal/handler/dto/response"
	"mask-ledger/internal/handler/httperr"
	"mask-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PharmacyHandler struct {
	q queries.PharmacyQueries
}

func NewPharmacyHandler(q queries.PharmacyQueries) *PharmacyHandler {
	return &PharmacyHandler{q: q}
}

// @Summary List pharmacies
// @Description List every pharmacy ordered by id
// @Tags pharmacies
// @Produce json
// @Success 200 {array} resdto.PharmacyResponse
// @Failure 500 {object} httperr.Response
// @Router /pharmacies/ [get]
func (h *PharmacyHandler) List(c *gin.Context) {
	pharmacies, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPharmacyViews(pharmacies))
}

// @Summary Pharmacies open at a time
// @Description List pharmacies open on the given day at the given time. Without both parameters every pharmacy is returned.
// @Tags pharmacies
// @Produce json
// @Param day query string false "Day token (Mon, Tue, Wed, Thu, Fri, Sat, Sun)"
// @Param time query string false "Time (HH:MM or HH:MM:SS)"
// @Success 200 {array} resdto.PharmacyResponse
// @Failure 400 {object} httperr.Response
// @Router /pharmacies/open/ [get]
func (h *PharmacyHandler) OpenAt(c *gin.Context) {
	pharmacies, err := h.q.OpenAt(c.Request.Context(), c.Query("day"), c.Query("time"))
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPharmacyViews(pharmacies))
}

// @Summary Masks sold by a pharmacy
// @Description List a pharmacy's masks, optionally sorted
// @Tags pharmacies
// @Produce json
// @Param id path int true "Pharmacy ID"
// @Param sort_by query string false "name, -name, price or -price"
// @Success 200 {array} resdto.MaskResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pharmacies/{id}/masks/ [get]
func (h *PharmacyHandler) Masks(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pharmacy id", nil)
		return
	}

	masks, err := h.q.Masks(c.Request.Context(), id, c.Query("sort_by"))
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaskViews(masks))
}

// @Summary Filter pharmacies by mask count in a price range
// @Description Count each pharmacy's masks priced within [min_price, max_price] and keep those where mask_count <compare> count
// @Tags pharmacies
// @Produce json
// @Param min_price query number false "Minimum price (default 0)"
// @Param max_price query number false "Maximum price (unbounded when omitted)"
// @Param compare query string false "gt, lt, gte or lte"
// @Param count query int false "Threshold, required with compare"
// @Success 200 {array} resdto.PharmacyMaskCountResponse
// @Failure 400 {object} httperr.Response
// @Router /pharmacies/mask-filter/ [get]
func (h *PharmacyHandler) FilterByMaskCount(c *gin.Context) {
	pharmacies, err := h.q.FilterByMaskCount(c.Request.Context(), queries.MaskCountFilter{
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		Compare:  c.Query("compare"),
		Count:    c.Query("count"),
	})
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPharmacyMaskCountViews(pharmacies))
}
