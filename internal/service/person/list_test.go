package person

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/contacts-api/internal/model"
)

func viewsWithNames(names ...string) []*model.PersonResponse {
	views := make([]*model.PersonResponse, len(names))
	for i, name := range names {
		views[i] = &model.PersonResponse{
			ID:    uuid.New(),
			Name:  name,
			Email: name + "@example.com",
		}
	}
	return views
}

func namesOf(views []*model.PersonResponse) []string {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
	}
	return names
}

func dateOf(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestFilterPersonsIdentity(t *testing.T) {
	persons := viewsWithNames("John Doe", "George Doe")

	testCases := []struct {
		name         string
		searchBy     string
		searchString string
	}{
		{"empty search by", "", "John"},
		{"empty search string", "Name", ""},
		{"both empty", "", ""},
		{"unrecognized field", "Phone", "555"},
		{"garbage field", "NoSuchField", "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterPersons(persons, tc.searchBy, tc.searchString)
			assert.Equal(t, persons, got)
		})
	}
}

func TestFilterPersonsByName(t *testing.T) {
	persons := viewsWithNames("John Doe", "George Doe", "Jack Doe", "Johnny Depp")

	got := FilterPersons(persons, "Name", "John")

	assert.Equal(t, []string{"John Doe", "Johnny Depp"}, namesOf(got))
}

func TestFilterPersonsCaseInsensitive(t *testing.T) {
	persons := viewsWithNames("John Doe", "George Doe")

	got := FilterPersons(persons, "Name", "jOhN")

	assert.Equal(t, []string{"John Doe"}, namesOf(got))
}

func TestFilterPersonsEmptyValueMatches(t *testing.T) {
	persons := viewsWithNames("George Doe")
	persons = append(persons, &model.PersonResponse{ID: uuid.New(), Email: "anon@example.com"})

	got := FilterPersons(persons, "Name", "John")

	// A person with no name passes any name filter.
	assert.Len(t, got, 1)
	assert.Equal(t, "anon@example.com", got[0].Email)
}

func TestFilterPersonsByGender(t *testing.T) {
	persons := []*model.PersonResponse{
		{ID: uuid.New(), Name: "John Doe", Gender: "Male"},
		{ID: uuid.New(), Name: "Jane Doe", Gender: "Female"},
		{ID: uuid.New(), Name: "Kim Doe"},
	}

	got := FilterPersons(persons, "Gender", "male")

	// Exact equality, case-insensitive; absent gender still matches.
	assert.Equal(t, []string{"John Doe", "Kim Doe"}, namesOf(got))

	got = FilterPersons(persons, "Gender", "Mal")
	assert.Equal(t, []string{"Kim Doe"}, namesOf(got))
}

func TestFilterPersonsByDateOfBirth(t *testing.T) {
	persons := []*model.PersonResponse{
		{ID: uuid.New(), Name: "John Doe", DateOfBirth: dateOf(1980, time.January, 1)},
		{ID: uuid.New(), Name: "Jane Doe", DateOfBirth: dateOf(1985, time.June, 15)},
		{ID: uuid.New(), Name: "Jack Doe", DateOfBirth: dateOf(1990, time.December, 31)},
	}

	got := FilterPersons(persons, "DateOfBirth", "01 January 1980")
	assert.Equal(t, []string{"John Doe"}, namesOf(got))

	// Substring of the formatted date also matches.
	got = FilterPersons(persons, "DateOfBirth", "january")
	assert.Equal(t, []string{"John Doe"}, namesOf(got))

	// A person with no date of birth passes the filter.
	persons = append(persons, &model.PersonResponse{ID: uuid.New(), Name: "Kim Doe"})
	got = FilterPersons(persons, "DateOfBirth", "1985")
	assert.Equal(t, []string{"Jane Doe", "Kim Doe"}, namesOf(got))
}

func TestFilterPersonsByCountryName(t *testing.T) {
	france := "France"
	germany := "Germany"
	persons := []*model.PersonResponse{
		{ID: uuid.New(), Name: "John Doe", CountryName: &france},
		{ID: uuid.New(), Name: "Jane Doe", CountryName: &germany},
		{ID: uuid.New(), Name: "Kim Doe"},
	}

	got := FilterPersons(persons, "CountryName", "fran")

	// Unresolved country name still matches.
	assert.Equal(t, []string{"John Doe", "Kim Doe"}, namesOf(got))
}

func TestSortPersonsIdentity(t *testing.T) {
	persons := viewsWithNames("Charlie", "alice", "Bob")

	got := SortPersons(persons, "", model.SortDesc)

	assert.Equal(t, persons, got)
}

func TestSortPersonsByName(t *testing.T) {
	persons := viewsWithNames("Charlie", "alice", "Bob")

	asc := SortPersons(persons, "Name", model.SortAsc)
	assert.Equal(t, []string{"alice", "Bob", "Charlie"}, namesOf(asc))

	desc := SortPersons(persons, "Name", model.SortDesc)
	assert.Equal(t, []string{"Charlie", "Bob", "alice"}, namesOf(desc))

	// Input order untouched.
	assert.Equal(t, []string{"Charlie", "alice", "Bob"}, namesOf(persons))
}

func TestSortPersonsStable(t *testing.T) {
	persons := []*model.PersonResponse{
		{ID: uuid.New(), Name: "John Doe", Email: "first@example.com"},
		{ID: uuid.New(), Name: "Alice Doe", Email: "second@example.com"},
		{ID: uuid.New(), Name: "john doe", Email: "third@example.com"},
	}

	got := SortPersons(persons, "Name", model.SortAsc)

	// The two equal names keep their relative input order.
	assert.Equal(t, "Alice Doe", got[0].Name)
	assert.Equal(t, "first@example.com", got[1].Email)
	assert.Equal(t, "third@example.com", got[2].Email)
}

func TestSortPersonsByDateOfBirth(t *testing.T) {
	persons := []*model.PersonResponse{
		{ID: uuid.New(), Name: "Jane Doe", DateOfBirth: dateOf(1990, time.May, 2)},
		{ID: uuid.New(), Name: "Kim Doe"},
		{ID: uuid.New(), Name: "John Doe", DateOfBirth: dateOf(1980, time.January, 1)},
	}

	got := SortPersons(persons, "DateOfBirth", model.SortAsc)

	// Missing dates sort first ascending.
	assert.Equal(t, []string{"Kim Doe", "John Doe", "Jane Doe"}, namesOf(got))
}

func TestSortPersonsUnknownFieldFallsBackToID(t *testing.T) {
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
	persons := []*model.PersonResponse{
		{ID: high, Name: "High"},
		{ID: low, Name: "Low"},
	}

	// Fallback is id ascending regardless of requested direction.
	for _, order := range []model.SortOrder{model.SortAsc, model.SortDesc} {
		got := SortPersons(persons, "Phone", order)
		assert.Equal(t, []string{"Low", "High"}, namesOf(got))
	}
}

func TestSortPersonsByCountryID(t *testing.T) {
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
	persons := []*model.PersonResponse{
		{ID: uuid.New(), Name: "High", CountryID: &high},
		{ID: uuid.New(), Name: "None"},
		{ID: uuid.New(), Name: "Low", CountryID: &low},
	}

	got := SortPersons(persons, "CountryId", model.SortAsc)

	assert.Equal(t, []string{"None", "Low", "High"}, namesOf(got))
}
