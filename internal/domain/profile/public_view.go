package profile

// PublicView is the projection of a profile that a visitor sees. Categories
// without public items are left nil and omitted from JSON.
type PublicView struct {
	PersonalInfo PersonalInfo  `json:"personalInfo"`
	Experience   []Experience  `json:"experience,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
	Courses      []Course      `json:"courses,omitempty"`
	Conferences  []Conference  `json:"conferences,omitempty"`
	Workshops    []Workshop    `json:"workshops,omitempty"`
	Media        []Media       `json:"media,omitempty"`
}

// Project builds the public view of p. PersonalInfo is always included.
func Project(p *Profile) PublicView {
	return PublicView{
		PersonalInfo: p.PersonalInfo,
		Experience:   publicOrNil(p.Experience),
		Education:    publicOrNil(p.Education),
		Skills:       publicOrNil(p.Skills),
		Certificates: publicOrNil(p.Certificates),
		Courses:      publicOrNil(p.Courses),
		Conferences:  publicOrNil(p.Conferences),
		Workshops:    publicOrNil(p.Workshops),
		Media:        publicOrNil(p.Media),
	}
}

func publicOrNil[T interface{ IsPublic() bool }](s []T) []T {
	out := FilterPublic(s)
	if len(out) == 0 {
		return nil
	}
	return out
}

// Sections lists the categories present in the view, in display order.
func (v PublicView) Sections() []Category {
	counts := map[Category]int{
		CategoryExperience:   len(v.Experience),
		CategoryEducation:    len(v.Education),
		CategorySkills:       len(v.Skills),
		CategoryCertificates: len(v.Certificates),
		CategoryCourses:      len(v.Courses),
		CategoryConferences:  len(v.Conferences),
		CategoryWorkshops:    len(v.Workshops),
		CategoryMedia:        len(v.Media),
	}
	var out []Category
	for _, c := range Categories {
		if counts[c] > 0 {
			out = append(out, c)
		}
	}
	return out
}

// HasPublicContent reports whether any category has at least one public item.
func (v PublicView) HasPublicContent() bool {
	return len(v.Sections()) > 0
}

// Items returns the view's items for c, or nil when the category is omitted.
func (v PublicView) Items(c Category) []Item {
	switch c {
	case CategoryExperience:
		return asItems(v.Experience)
	case CategoryEducation:
		return asItems(v.Education)
	case CategorySkills:
		return asItems(v.Skills)
	case CategoryCertificates:
		return asItems(v.Certificates)
	case CategoryCourses:
		return asItems(v.Courses)
	case CategoryConferences:
		return asItems(v.Conferences)
	case CategoryWorkshops:
		return asItems(v.Workshops)
	case CategoryMedia:
		return asItems(v.Media)
	}
	return nil
}
