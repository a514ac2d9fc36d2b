package person

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/contacts-api/internal/model"
	"github.com/jwalitptl/contacts-api/internal/repository/memory"
	personService "github.com/jwalitptl/contacts-api/internal/service/person"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := personService.NewService(memory.NewPersonRepository(), memory.NewCountryRepository())
	h := NewHandler(svc)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func perform(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodePerson(t *testing.T, w *httptest.ResponseRecorder) *model.PersonResponse {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success)

	var resp model.PersonResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	return &resp
}

func createPerson(t *testing.T, r *gin.Engine, name, email string) *model.PersonResponse {
	t.Helper()
	w := perform(t, r, http.MethodPost, "/api/v1/persons", gin.H{"name": name, "email": email})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodePerson(t, w)
}

func TestCreateAndGetPerson(t *testing.T) {
	r := setupRouter(t)

	created := createPerson(t, r, "John Doe", "john@example.com")
	assert.NotEqual(t, uuid.Nil, created.ID)

	w := perform(t, r, http.MethodGet, "/api/v1/persons/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodePerson(t, w)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
}

func TestCreatePersonInvalid(t *testing.T) {
	r := setupRouter(t)

	w := perform(t, r, http.MethodPost, "/api/v1/persons", gin.H{"name": "John Doe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodPost, "/api/v1/persons", gin.H{"email": "john@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodPost, "/api/v1/persons", gin.H{"name": "John Doe", "email": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePersonDuplicate(t *testing.T) {
	r := setupRouter(t)

	createPerson(t, r, "John Doe", "john@example.com")

	w := perform(t, r, http.MethodPost, "/api/v1/persons", gin.H{"name": "John Doe", "email": "other@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetPersonNotFound(t *testing.T) {
	r := setupRouter(t)

	w := perform(t, r, http.MethodGet, "/api/v1/persons/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(t, r, http.MethodGet, "/api/v1/persons/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPersonsFilterAndSort(t *testing.T) {
	r := setupRouter(t)

	for i, name := range []string{"John Doe", "George Doe", "Jack Doe", "Johnny Depp"} {
		createPerson(t, r, name, fmt.Sprintf("person%d@example.com", i))
	}

	w := perform(t, r, http.MethodGet, "/api/v1/persons?search_by=Name&search=John&sort_by=Name&sort_order=DESC", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var persons []*model.PersonResponse
	require.NoError(t, json.Unmarshal(env.Data, &persons))

	require.Len(t, persons, 2)
	assert.Equal(t, "Johnny Depp", persons[0].Name)
	assert.Equal(t, "John Doe", persons[1].Name)

	// No filters or sort: full list in insertion order.
	w = perform(t, r, http.MethodGet, "/api/v1/persons", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, &persons))
	require.Len(t, persons, 4)
	assert.Equal(t, "John Doe", persons[0].Name)
}

func TestUpdatePerson(t *testing.T) {
	r := setupRouter(t)

	created := createPerson(t, r, "John Doe", "john@example.com")

	w := perform(t, r, http.MethodPut, "/api/v1/persons/"+created.ID.String(), gin.H{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	got := decodePerson(t, w)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestUpdatePersonNotFound(t *testing.T) {
	r := setupRouter(t)

	w := perform(t, r, http.MethodPut, "/api/v1/persons/"+uuid.NewString(), gin.H{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePerson(t *testing.T) {
	r := setupRouter(t)

	created := createPerson(t, r, "John Doe", "john@example.com")

	w := perform(t, r, http.MethodDelete, "/api/v1/persons/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)

	w = perform(t, r, http.MethodDelete, "/api/v1/persons/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":false`)
}
