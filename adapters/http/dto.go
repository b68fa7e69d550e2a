package http

import (
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
)

// Auth DTOs

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type TokenResponse struct {
	AccessToken string     `json:"access_token"`
	Profile     ProfileDTO `json:"profile"`
	Warning     string     `json:"warning,omitempty"`
}

// Profile DTOs

type PersonalInfoDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

type ProfileDTO struct {
	PersonalInfo PersonalInfoDTO       `json:"personalInfo"`
	Experience   []profile.Experience  `json:"experience"`
	Education    []profile.Education   `json:"education"`
	Skills       []profile.Skill       `json:"skills"`
	Certificates []profile.Certificate `json:"certificates"`
	Courses      []profile.Course      `json:"courses"`
	Conferences  []profile.Conference  `json:"conferences"`
	Workshops    []profile.Workshop    `json:"workshops"`
	Media        []profile.Media       `json:"media"`
}

type UpdatePersonalInfoRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Title    *string `json:"title"`
	Summary  *string `json:"summary"`
	LinkedIn *string `json:"linkedin"`
	Website  *string `json:"website"`
}

type CategoryStatsDTO struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Total    int    `json:"total"`
	Public   int    `json:"public"`
}

type PreviewDTO struct {
	View             profile.PublicView `json:"view"`
	Sections         []string           `json:"sections"`
	HasPublicContent bool               `json:"hasPublicContent"`
	Text             string             `json:"text"`
}

type ItemRefDTO struct {
	Category string `json:"category"`
	ID       int64  `json:"id"`
}

type ToggleResponse struct {
	Found      bool   `json:"found"`
	Visibility string `json:"visibility,omitempty"`
}

type EntryDTO struct {
	ID         int64             `json:"id"`
	Visibility string            `json:"visibility"`
	Fields     map[string]string `json:"fields"`
}

// Document DTOs

type CoverLetterRequest struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
}

func ToPersonalInfoDTO(info profile.PersonalInfo) PersonalInfoDTO {
	return PersonalInfoDTO{
		Name:     info.Name,
		Email:    info.Email,
		Phone:    info.Phone,
		Title:    info.Title,
		Summary:  info.Summary,
		LinkedIn: info.LinkedIn,
		Website:  info.Website,
	}
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		PersonalInfo: ToPersonalInfoDTO(p.PersonalInfo),
		Experience:   p.Experience,
		Education:    p.Education,
		Skills:       p.Skills,
		Certificates: p.Certificates,
		Courses:      p.Courses,
		Conferences:  p.Conferences,
		Workshops:    p.Workshops,
		Media:        p.Media,
	}
}

func (req UpdatePersonalInfoRequest) ToPatch() profile.PersonalInfoPatch {
	return profile.PersonalInfoPatch{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Title:    req.Title,
		Summary:  req.Summary,
		LinkedIn: req.LinkedIn,
		Website:  req.Website,
	}
}

func ToCategoryStatsDTOs(stats []profile.CategoryStats) []CategoryStatsDTO {
	out := make([]CategoryStatsDTO, len(stats))
	for i, st := range stats {
		out[i] = CategoryStatsDTO{
			Category: string(st.Category),
			Title:    st.Category.Title(),
			Total:    st.Total,
			Public:   st.Public,
		}
	}
	return out
}

func ToPreviewDTO(v profile.PublicView, text string) PreviewDTO {
	sections := v.Sections()
	names := make([]string, len(sections))
	for i, c := range sections {
		names[i] = string(c)
	}
	return PreviewDTO{View: v, Sections: names, HasPublicContent: v.HasPublicContent(), Text: text}
}

func ToEntryDTOs(entries []profile.Entry) []EntryDTO {
	out := make([]EntryDTO, len(entries))
	for i, e := range entries {
		fields := make(map[string]string, len(e.Fields))
		for _, f := range e.Fields {
			fields[f.Name] = f.Value
		}
		out[i] = EntryDTO{ID: e.ID, Visibility: string(e.Visibility), Fields: fields}
	}
	return out
}
