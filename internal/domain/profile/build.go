package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownField = errors.New("unknown item field")

// FieldNames lists the editable fields of each category in display order.
var FieldNames = map[Category][]string{
	CategoryExperience:   {"title", "company", "startDate", "endDate", "description"},
	CategoryEducation:    {"degree", "field", "institution", "year"},
	CategorySkills:       {"name", "level", "category"},
	CategoryCertificates: {"name", "issuer", "date", "credentialId"},
	CategoryCourses:      {"name", "provider", "completionDate", "description"},
	CategoryConferences:  {"name", "date", "location", "description"},
	CategoryWorkshops:    {"name", "date", "instructor", "skills"},
	CategoryMedia:        {"title", "type", "url", "description"},
}

// NewItem builds a record of category c from field values keyed by their JSON
// names. Values are stored as given; missing fields stay empty and optional
// fields stay absent.
func NewItem(c Category, fields map[string]string) (Item, error) {
	names, ok := FieldNames[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	var unknown []string
	for k := range fields {
		if !slices.Contains(names, k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("%w for %s: %s", ErrUnknownField, c, strings.Join(unknown, ", "))
	}

	f := func(k string) string { return fields[k] }
	opt := func(k string) *string {
		if v, ok := fields[k]; ok {
			return &v
		}
		return nil
	}

	switch c {
	case CategoryExperience:
		return Experience{Title: f("title"), Company: f("company"), StartDate: f("startDate"), EndDate: opt("endDate"), Description: f("description")}, nil
	case CategoryEducation:
		return Education{Degree: f("degree"), Field: f("field"), Institution: f("institution"), Year: f("year")}, nil
	case CategorySkills:
		return Skill{Name: f("name"), Level: f("level"), Group: f("category")}, nil
	case CategoryCertificates:
		return Certificate{Name: f("name"), Issuer: f("issuer"), Date: f("date"), CredentialID: opt("credentialId")}, nil
	case CategoryCourses:
		return Course{Name: f("name"), Provider: f("provider"), CompletionDate: f("completionDate"), Description: f("description")}, nil
	case CategoryConferences:
		return Conference{Name: f("name"), Date: f("date"), Location: f("location"), Description: f("description")}, nil
	case CategoryWorkshops:
		return Workshop{Name: f("name"), Date: f("date"), Instructor: f("instructor"), Skills: f("skills")}, nil
	default:
		return Media{Title: f("title"), Type: MediaType(f("type")), URL: f("url"), Description: f("description")}, nil
	}
}
