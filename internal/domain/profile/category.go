package profile

import (
	"fmt"
	"slices"
	"strings"
)

type Category string

const (
	CategoryExperience   Category = "experience"
	CategoryEducation    Category = "education"
	CategorySkills       Category = "skills"
	CategoryCertificates Category = "certificates"
	CategoryCourses      Category = "courses"
	CategoryConferences  Category = "conferences"
	CategoryWorkshops    Category = "workshops"
	CategoryMedia        Category = "media"
)

// Categories lists the item categories in display order.
var Categories = []Category{
	CategoryExperience,
	CategoryEducation,
	CategorySkills,
	CategoryCertificates,
	CategoryCourses,
	CategoryConferences,
	CategoryWorkshops,
	CategoryMedia,
}

var categoryTitles = map[Category]string{
	CategoryExperience:   "Professional Experience",
	CategoryEducation:    "Education",
	CategorySkills:       "Skills & Expertise",
	CategoryCertificates: "Certifications",
	CategoryCourses:      "Courses & Training",
	CategoryConferences:  "Conferences Attended",
	CategoryWorkshops:    "Workshops",
	CategoryMedia:        "Media Gallery",
}

func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return string(c)
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Categories, c) {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

type metaPtr[T any] interface {
	*T
	meta() *Meta
}

// Add appends item to its category with a fresh id and public visibility and
// returns the id. Field values are stored as given.
func (p *Profile) Add(item Item, ids IDGenerator) (int64, error) {
	var id int64
	switch it := item.(type) {
	case Experience:
		p.Experience, id = appendItem(p.Experience, it, ids)
	case Education:
		p.Education, id = appendItem(p.Education, it, ids)
	case Skill:
		p.Skills, id = appendItem(p.Skills, it, ids)
	case Certificate:
		p.Certificates, id = appendItem(p.Certificates, it, ids)
	case Course:
		p.Courses, id = appendItem(p.Courses, it, ids)
	case Conference:
		p.Conferences, id = appendItem(p.Conferences, it, ids)
	case Workshop:
		p.Workshops, id = appendItem(p.Workshops, it, ids)
	case Media:
		p.Media, id = appendItem(p.Media, it, ids)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownCategory, item)
	}
	return id, nil
}

// ToggleVisibility flips the visibility of the item with id. A missing id is a
// no-op and reports found=false.
func (p *Profile) ToggleVisibility(c Category, id int64) (found bool, err error) {
	switch c {
	case CategoryExperience:
		return toggleItem(p.Experience, id), nil
	case CategoryEducation:
		return toggleItem(p.Education, id), nil
	case CategorySkills:
		return toggleItem(p.Skills, id), nil
	case CategoryCertificates:
		return toggleItem(p.Certificates, id), nil
	case CategoryCourses:
		return toggleItem(p.Courses, id), nil
	case CategoryConferences:
		return toggleItem(p.Conferences, id), nil
	case CategoryWorkshops:
		return toggleItem(p.Workshops, id), nil
	case CategoryMedia:
		return toggleItem(p.Media, id), nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}

// Delete removes the item with id from its category. A missing id is a no-op
// and reports found=false.
func (p *Profile) Delete(c Category, id int64) (found bool, err error) {
	switch c {
	case CategoryExperience:
		p.Experience, found = removeItem(p.Experience, id)
	case CategoryEducation:
		p.Education, found = removeItem(p.Education, id)
	case CategorySkills:
		p.Skills, found = removeItem(p.Skills, id)
	case CategoryCertificates:
		p.Certificates, found = removeItem(p.Certificates, id)
	case CategoryCourses:
		p.Courses, found = removeItem(p.Courses, id)
	case CategoryConferences:
		p.Conferences, found = removeItem(p.Conferences, id)
	case CategoryWorkshops:
		p.Workshops, found = removeItem(p.Workshops, id)
	case CategoryMedia:
		p.Media, found = removeItem(p.Media, id)
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return found, nil
}

// Items returns the category's sequence as the Item interface, in order.
func (p *Profile) Items(c Category) ([]Item, error) {
	switch c {
	case CategoryExperience:
		return asItems(p.Experience), nil
	case CategoryEducation:
		return asItems(p.Education), nil
	case CategorySkills:
		return asItems(p.Skills), nil
	case CategoryCertificates:
		return asItems(p.Certificates), nil
	case CategoryCourses:
		return asItems(p.Courses), nil
	case CategoryConferences:
		return asItems(p.Conferences), nil
	case CategoryWorkshops:
		return asItems(p.Workshops), nil
	case CategoryMedia:
		return asItems(p.Media), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}

// Find returns the item with id in category c, or nil when absent.
func (p *Profile) Find(c Category, id int64) (Item, error) {
	items, err := p.Items(c)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ItemID() == id {
			return it, nil
		}
	}
	return nil, nil
}

func (p *Profile) Count(c Category) int {
	items, err := p.Items(c)
	if err != nil {
		return 0
	}
	return len(items)
}

type CategoryStats struct {
	Category Category `json:"category"`
	Total    int      `json:"total"`
	Public   int      `json:"public"`
}

// Stats reports per-category totals in display order.
func (p *Profile) Stats() []CategoryStats {
	out := make([]CategoryStats, 0, len(Categories))
	for _, c := range Categories {
		items, _ := p.Items(c)
		st := CategoryStats{Category: c, Total: len(items)}
		for _, it := range items {
			if it.IsPublic() {
				st.Public++
			}
		}
		out = append(out, st)
	}
	return out
}

func appendItem[T any, P metaPtr[T]](s []T, item T, ids IDGenerator) ([]T, int64) {
	id := ids.Next()
	for indexOf[T, P](s, id) >= 0 {
		id = ids.Next()
	}
	m := P(&item).meta()
	m.ID = id
	m.Visibility = VisibilityPublic
	return append(s, item), id
}

func toggleItem[T any, P metaPtr[T]](s []T, id int64) bool {
	i := indexOf[T, P](s, id)
	if i < 0 {
		return false
	}
	m := P(&s[i]).meta()
	m.Visibility = m.Visibility.Toggle()
	return true
}

func removeItem[T any, P metaPtr[T]](s []T, id int64) ([]T, bool) {
	i := indexOf[T, P](s, id)
	if i < 0 {
		return s, false
	}
	return slices.Delete(s, i, i+1), true
}

func indexOf[T any, P metaPtr[T]](s []T, id int64) int {
	for i := range s {
		if P(&s[i]).meta().ID == id {
			return i
		}
	}
	return -1
}

func asItems[T Item](s []T) []Item {
	out := make([]Item, len(s))
	for i, it := range s {
		out[i] = it
	}
	return out
}
