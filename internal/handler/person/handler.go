package person

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/contacts-api/internal/model"
	"github.com/jwalitptl/contacts-api/internal/service/person"
	apperrors "github.com/jwalitptl/contacts-api/pkg/errors"
	"github.com/jwalitptl/contacts-api/pkg/httputil"
)

type Handler struct {
	service person.PersonService
}

func NewHandler(service person.PersonService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	persons := r.Group("/persons")
	{
		persons.POST("", h.CreatePerson)
		persons.GET("", h.ListPersons)
		persons.GET("/:id", h.GetPerson)
		persons.PUT("/:id", h.UpdatePerson)
		persons.DELETE("/:id", h.DeletePerson)
	}
}

func (h *Handler) CreatePerson(c *gin.Context) {
	var req model.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error()))
		return
	}

	resp, err := h.service.AddPerson(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, resp)
}

func (h *Handler) GetPerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid person id"))
		return
	}

	resp, err := h.service.GetPerson(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	if resp == nil {
		httputil.RespondWithError(c, apperrors.NewNotFound("person"))
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, resp)
}

// ListPersons returns the mapped person list, narrowed by search_by
// and search, then reordered by sort_by and sort_order.
func (h *Handler) ListPersons(c *gin.Context) {
	persons, err := h.service.ListPersonsFiltered(
		c.Request.Context(),
		c.Query("search_by"),
		c.Query("search"),
	)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	persons = person.SortPersons(persons, c.Query("sort_by"), model.ParseSortOrder(c.Query("sort_order")))

	httputil.RespondWithSuccess(c, http.StatusOK, persons)
}

func (h *Handler) UpdatePerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid person id"))
		return
	}

	var req model.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error()))
		return
	}

	resp, err := h.service.UpdatePerson(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, resp)
}

func (h *Handler) DeletePerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("invalid person id"))
		return
	}

	deleted, err := h.service.DeletePerson(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, gin.H{"deleted": deleted})
}
