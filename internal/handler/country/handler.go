package country

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/contacts-api/internal/model"
	"github.com/jwalitptl/contacts-api/internal/service/country"
	apperrors "github.com/jwalitptl/contacts-api/pkg/errors"
	"github.com/jwalitptl/contacts-api/pkg/httputil"
)

type Handler struct {
	service country.CountryService
}

func NewHandler(service country.CountryService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	countries := r.Group("/countries")
	{
		countries.POST("", h.CreateCountry)
		countries.GET("", h.ListCountries)
		countries.GET("/:id", h.GetCountry)
	}
}

func (h *Handler) CreateCountry(c *gin.Context) {
	var req model.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error()))
		return
	}

	resp, err := h.service.AddCountry(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, resp)
}

func (h *Handler) GetCountry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid country id"))
		return
	}

	resp, err := h.service.GetCountry(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	if resp == nil {
		httputil.RespondWithError(c, apperrors.NewNotFound("country"))
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, resp)
}

func (h *Handler) ListCountries(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, countries)
}
