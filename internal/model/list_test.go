package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSearchField(t *testing.T) {
	testCases := []struct {
		in   string
		want SearchField
	}{
		{"Name", SearchFieldName},
		{"Gender", SearchFieldGender},
		{"Address", SearchFieldAddress},
		{"CountryName", SearchFieldCountryName},
		{"Email", SearchFieldEmail},
		{"DateOfBirth", SearchFieldDateOfBirth},
		{"Phone", SearchFieldNone},
		{"name", SearchFieldNone},
		{"", SearchFieldNone},
		{"Bogus", SearchFieldNone},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, ParseSearchField(tc.in), "input %q", tc.in)
	}
}

func TestParseSortField(t *testing.T) {
	testCases := []struct {
		in   string
		want SortField
	}{
		{"Name", SortFieldName},
		{"Email", SortFieldEmail},
		{"Address", SortFieldAddress},
		{"Gender", SortFieldGender},
		{"DateOfBirth", SortFieldDateOfBirth},
		{"CountryId", SortFieldCountryID},
		{"Phone", SortFieldID},
		{"name", SortFieldID},
		{"", SortFieldID},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, ParseSortField(tc.in), "input %q", tc.in)
	}
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortDesc, ParseSortOrder("DESC"))
	assert.Equal(t, SortDesc, ParseSortOrder("desc"))
	assert.Equal(t, SortAsc, ParseSortOrder("ASC"))
	assert.Equal(t, SortAsc, ParseSortOrder(""))
	assert.Equal(t, SortAsc, ParseSortOrder("sideways"))
}
