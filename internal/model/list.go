package model

import "strings"

// SearchField selects the person field a list filter matches against.
// Unknown selectors (Phone included) map to SearchFieldNone, which
// leaves the list unchanged.
type SearchField string

const (
	SearchFieldNone        SearchField = ""
	SearchFieldName        SearchField = "Name"
	SearchFieldGender      SearchField = "Gender"
	SearchFieldAddress     SearchField = "Address"
	SearchFieldCountryName SearchField = "CountryName"
	SearchFieldEmail       SearchField = "Email"
	SearchFieldDateOfBirth SearchField = "DateOfBirth"
)

func ParseSearchField(s string) SearchField {
	switch SearchField(s) {
	case SearchFieldName, SearchFieldGender, SearchFieldAddress,
		SearchFieldCountryName, SearchFieldEmail, SearchFieldDateOfBirth:
		return SearchField(s)
	}
	return SearchFieldNone
}

// SortField selects the person field a list sort orders by. Unknown
// selectors map to SortFieldID, the documented fallback.
type SortField string

const (
	SortFieldID          SortField = "Id"
	SortFieldName        SortField = "Name"
	SortFieldEmail       SortField = "Email"
	SortFieldAddress     SortField = "Address"
	SortFieldGender      SortField = "Gender"
	SortFieldDateOfBirth SortField = "DateOfBirth"
	SortFieldCountryID   SortField = "CountryId"
)

func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortFieldName, SortFieldEmail, SortFieldAddress, SortFieldGender,
		SortFieldDateOfBirth, SortFieldCountryID:
		return SortField(s)
	}
	return SortFieldID
}

// SortOrder is the sort direction; ascending when unspecified.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}
