package profile

import (
	"context"
	"encoding/json"
	"errors"
)

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// PersonalInfoPatch carries a field-by-field update. Nil fields are left untouched.
type PersonalInfoPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Title    *string
	Summary  *string
	LinkedIn *string
	Website  *string
}

func (p PersonalInfoPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Title == nil &&
		p.Summary == nil && p.LinkedIn == nil && p.Website == nil
}

func (p PersonalInfoPatch) apply(info *PersonalInfo) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&info.Name, p.Name)
	set(&info.Email, p.Email)
	set(&info.Phone, p.Phone)
	set(&info.Title, p.Title)
	set(&info.Summary, p.Summary)
	set(&info.LinkedIn, p.LinkedIn)
	set(&info.Website, p.Website)
}

// Profile is the root aggregate for one user. Sequences keep insertion order.
type Profile struct {
	PersonalInfo PersonalInfo  `json:"personalInfo"`
	Experience   []Experience  `json:"experience"`
	Education    []Education   `json:"education"`
	Skills       []Skill       `json:"skills"`
	Certificates []Certificate `json:"certificates"`
	Courses      []Course      `json:"courses"`
	Conferences  []Conference  `json:"conferences"`
	Workshops    []Workshop    `json:"workshops"`
	Media        []Media       `json:"media"`

	// Events is never read or written by any operation; it is carried verbatim,
	// whatever its shape, so stored documents round-trip unchanged.
	Events json.RawMessage `json:"events"`
}

var (
	ErrUnknownCategory = errors.New("unknown item category")
	ErrMalformed       = errors.New("malformed profile document")
)

func New() *Profile {
	p := &Profile{}
	p.normalize()
	return p
}

// UpdatePersonalInfo mutates PersonalInfo in place, field by field.
func (p *Profile) UpdatePersonalInfo(patch PersonalInfoPatch) {
	patch.apply(&p.PersonalInfo)
}

// Reset empties the profile, as on logout.
func (p *Profile) Reset() {
	*p = Profile{}
	p.normalize()
}

// Replace swaps the whole aggregate for other, as on load.
func (p *Profile) Replace(other *Profile) {
	if other == nil {
		p.Reset()
		return
	}
	*p = *other
	p.normalize()
}

// Clone returns a deep copy so renderers and encoders can run outside the owner's lock.
func (p *Profile) Clone() *Profile {
	c := &Profile{
		PersonalInfo: p.PersonalInfo,
		Experience:   cloneSlice(p.Experience),
		Education:    cloneSlice(p.Education),
		Skills:       cloneSlice(p.Skills),
		Certificates: cloneSlice(p.Certificates),
		Courses:      cloneSlice(p.Courses),
		Conferences:  cloneSlice(p.Conferences),
		Workshops:    cloneSlice(p.Workshops),
		Media:        cloneSlice(p.Media),
		Events:       cloneSlice(p.Events),
	}
	for i, e := range c.Experience {
		c.Experience[i].EndDate = cloneString(e.EndDate)
	}
	for i, cert := range c.Certificates {
		c.Certificates[i].CredentialID = cloneString(cert.CredentialID)
	}
	return c
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	type plain Profile
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return errors.Join(ErrMalformed, err)
	}
	*p = Profile(decoded)
	p.normalize()
	return nil
}

// normalize restores the invariants a decoded document may violate: nil
// sequences become empty and visibility values outside the enum become private.
func (p *Profile) normalize() {
	p.Experience = normalizeItems(p.Experience)
	p.Education = normalizeItems(p.Education)
	p.Skills = normalizeItems(p.Skills)
	p.Certificates = normalizeItems(p.Certificates)
	p.Courses = normalizeItems(p.Courses)
	p.Conferences = normalizeItems(p.Conferences)
	p.Workshops = normalizeItems(p.Workshops)
	p.Media = normalizeItems(p.Media)
	if len(p.Events) == 0 {
		p.Events = json.RawMessage(`[]`)
	}
}

func normalizeItems[T any, P metaPtr[T]](s []T) []T {
	if s == nil {
		return []T{}
	}
	for i := range s {
		m := P(&s[i]).meta()
		if !m.Visibility.Valid() {
			m.Visibility = VisibilityPrivate
		}
	}
	return s
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Repository loads and saves whole profiles for an owner identity (email).
type Repository interface {
	Load(ctx context.Context, email string) (*Profile, error)
	Save(ctx context.Context, email string, p *Profile) error
}
