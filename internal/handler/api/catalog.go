package api

import (
	"net/http"

	resdto "mask-ledger/internal/handler/dto/response"
	"mask-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MaskHandler struct {
	q queries.MaskQueries
}

func NewMaskHandler(q queries.MaskQueries) *MaskHandler {
	return &MaskHandler{q: q}
}

// @Summary List masks
// @Tags masks
// @Produce json
// @Success 200 {array} resdto.MaskResponse
// @Failure 500 {object} httperr.Response
// @Router /masks/ [get]
func (h *MaskHandler) List(c *gin.Context) {
	masks, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaskViews(masks))
}

type OpeningHourHandler struct {
	q queries.OpeningHourQueries
}

func NewOpeningHourHandler(q queries.OpeningHourQueries) *OpeningHourHandler {
	return &OpeningHourHandler{q: q}
}

// @Summary List opening hours
// @Tags opening-hours
// @Produce json
// @Success 200 {array} resdto.OpeningHourResponse
// @Failure 500 {object} httperr.Response
// @Router /opening-hours/ [get]
func (h *OpeningHourHandler) List(c *gin.Context) {
	hours, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpeningHourViews(hours))
}

type SearchHandler struct {
	q queries.SearchQueries
}

func NewSearchHandler(q queries.SearchQueries) *SearchHandler {
	return &SearchHandler{q: q}
}

// @Summary Search masks and pharmacies by name
// @Description Case-insensitive substring match on name
// @Tags search
// @Produce json
// @Param query query string true "Text to look for"
// @Param category query string false "masks or pharmacies (both when omitted)"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} httperr.Response
// @Router /search/ [get]
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.q.Search(c.Request.Context(), c.Query("query"), c.Query("category"))
	if err != nil {
		abortWithUseCaseError(c, err, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSearchResult(result))
}
