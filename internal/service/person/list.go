package person

import (
	"bytes"
	"sort"
	"strings"

	"github.com/jwalitptl/contacts-api/internal/model"
)

// Layout for matching date-of-birth searches, e.g. "01 January 1980".
const dateOfBirthLayout = "02 January 2006"

// filterPredicates maps each recognized search field to a predicate
// constructor. A person with an empty value for the searched field
// always passes the filter.
var filterPredicates = map[model.SearchField]func(search string) func(*model.PersonResponse) bool{
	model.SearchFieldName: func(search string) func(*model.PersonResponse) bool {
		return func(p *model.PersonResponse) bool { return matchText(p.Name, search) }
	},
	model.SearchFieldAddress: func(search string) func(*model.PersonResponse) bool {
		return func(p *model.PersonResponse) bool { return matchText(p.Address, search) }
	},
	model.SearchFieldEmail: func(search string) func(*model.PersonResponse) bool {
		return func(p *model.PersonResponse) bool { return matchText(p.Email, search) }
	},
	model.SearchFieldCountryName: func(search string) func(*model.PersonResponse) bool {
		return func(p *model.PersonResponse) bool {
			if p.CountryName == nil {
				return true
			}
			return matchText(*p.CountryName, search)
		}
	},
	model.SearchFieldGender: func(search string) func(*model.PersonResponse) bool {
		return func(p *model.PersonResponse) bool {
			return p.Gender == "" || strings.EqualFold(p.Gender, search)
		}
	},
	model.SearchFieldDateOfBirth: func(search string) func(*model.PersonResponse) bool {
		return func(p *model.PersonResponse) bool {
			if p.DateOfBirth == nil {
				return true
			}
			return matchText(p.DateOfBirth.Format(dateOfBirthLayout), search)
		}
	},
}

func matchText(value, search string) bool {
	return value == "" || strings.Contains(strings.ToLower(value), strings.ToLower(search))
}

// FilterPersons narrows the list by one field and search string,
// preserving relative order. An empty searchBy or searchString, or an
// unrecognized field selector, leaves the list unchanged.
func FilterPersons(persons []*model.PersonResponse, searchBy, searchString string) []*model.PersonResponse {
	if searchBy == "" || searchString == "" {
		return persons
	}

	field := model.ParseSearchField(searchBy)
	newPredicate, ok := filterPredicates[field]
	if !ok {
		return persons
	}

	predicate := newPredicate(searchString)
	matching := make([]*model.PersonResponse, 0, len(persons))
	for _, p := range persons {
		if predicate(p) {
			matching = append(matching, p)
		}
	}
	return matching
}

// comparators maps each sortable field to an ascending less func.
// Missing dates and country ids compare as the minimum.
var comparators = map[model.SortField]func(a, b *model.PersonResponse) bool{
	model.SortFieldName: func(a, b *model.PersonResponse) bool {
		return lessFold(a.Name, b.Name)
	},
	model.SortFieldEmail: func(a, b *model.PersonResponse) bool {
		return lessFold(a.Email, b.Email)
	},
	model.SortFieldAddress: func(a, b *model.PersonResponse) bool {
		return lessFold(a.Address, b.Address)
	},
	model.SortFieldGender: func(a, b *model.PersonResponse) bool {
		return lessFold(a.Gender, b.Gender)
	},
	model.SortFieldDateOfBirth: func(a, b *model.PersonResponse) bool {
		if a.DateOfBirth == nil || b.DateOfBirth == nil {
			return a.DateOfBirth == nil && b.DateOfBirth != nil
		}
		return a.DateOfBirth.Before(*b.DateOfBirth)
	},
	model.SortFieldCountryID: func(a, b *model.PersonResponse) bool {
		if a.CountryID == nil || b.CountryID == nil {
			return a.CountryID == nil && b.CountryID != nil
		}
		return bytes.Compare(a.CountryID[:], b.CountryID[:]) < 0
	},
	model.SortFieldID: func(a, b *model.PersonResponse) bool {
		return bytes.Compare(a.ID[:], b.ID[:]) < 0
	},
}

func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// SortPersons reorders the list by one field and direction using a
// stable sort; equal keys keep their relative input order. An empty
// orderBy leaves the list unchanged and an unrecognized one falls back
// to ordering by id ascending.
func SortPersons(persons []*model.PersonResponse, orderBy string, order model.SortOrder) []*model.PersonResponse {
	if orderBy == "" {
		return persons
	}

	field := model.ParseSortField(orderBy)
	if field == model.SortFieldID {
		// Fallback ordering is by id ascending regardless of direction.
		order = model.SortAsc
	}
	less := comparators[field]

	sorted := make([]*model.PersonResponse, len(persons))
	copy(sorted, persons)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == model.SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
