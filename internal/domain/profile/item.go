package profile

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

func (v Visibility) Toggle() Visibility {
	if v == VisibilityPublic {
		return VisibilityPrivate
	}
	return VisibilityPublic
}

// Meta holds the system fields every item carries. It is embedded in each
// record so the JSON stays flat: {"id":…, "visibility":…, "title":…}.
type Meta struct {
	ID         int64      `json:"id"`
	Visibility Visibility `json:"visibility"`
}

func (m Meta) ItemID() int64 { return m.ID }

func (m Meta) IsPublic() bool { return m.Visibility == VisibilityPublic }

func (m *Meta) meta() *Meta { return m }

// Item is implemented by every category record.
type Item interface {
	Category() Category
	ItemID() int64
	IsPublic() bool
	Fields() []Field
}

// Field is one label/value pair of an item, in display order.
type Field struct {
	Name  string
	Value string
}

type MediaType string

const (
	MediaPhoto MediaType = "Photo"
	MediaVideo MediaType = "Video"
)

var SkillLevels = []string{"Beginner", "Intermediate", "Advanced", "Expert"}

type Experience struct {
	Meta
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	Description string  `json:"description"`
}

// Current reports whether the role has no end date.
func (e Experience) Current() bool {
	return e.EndDate == nil || *e.EndDate == ""
}

type Education struct {
	Meta
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type Skill struct {
	Meta
	Name  string `json:"name"`
	Level string `json:"level"`
	Group string `json:"category"`
}

type Certificate struct {
	Meta
	Name         string  `json:"name"`
	Issuer       string  `json:"issuer"`
	Date         string  `json:"date"`
	CredentialID *string `json:"credentialId,omitempty"`
}

type Course struct {
	Meta
	Name           string `json:"name"`
	Provider       string `json:"provider"`
	CompletionDate string `json:"completionDate"`
	Description    string `json:"description"`
}

type Conference struct {
	Meta
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type Workshop struct {
	Meta
	Name       string `json:"name"`
	Date       string `json:"date"`
	Instructor string `json:"instructor"`
	Skills     string `json:"skills"`
}

type Media struct {
	Meta
	Title       string    `json:"title"`
	Type        MediaType `json:"type"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
}

func (Experience) Category() Category  { return CategoryExperience }
func (Education) Category() Category   { return CategoryEducation }
func (Skill) Category() Category       { return CategorySkills }
func (Certificate) Category() Category { return CategoryCertificates }
func (Course) Category() Category      { return CategoryCourses }
func (Conference) Category() Category  { return CategoryConferences }
func (Workshop) Category() Category    { return CategoryWorkshops }
func (Media) Category() Category       { return CategoryMedia }

func (e Experience) Fields() []Field {
	end := ""
	if e.EndDate != nil {
		end = *e.EndDate
	}
	return []Field{
		{"title", e.Title}, {"company", e.Company}, {"startDate", e.StartDate},
		{"endDate", end}, {"description", e.Description},
	}
}

func (e Education) Fields() []Field {
	return []Field{{"degree", e.Degree}, {"field", e.Field}, {"institution", e.Institution}, {"year", e.Year}}
}

func (s Skill) Fields() []Field {
	return []Field{{"name", s.Name}, {"level", s.Level}, {"category", s.Group}}
}

func (c Certificate) Fields() []Field {
	cred := ""
	if c.CredentialID != nil {
		cred = *c.CredentialID
	}
	return []Field{{"name", c.Name}, {"issuer", c.Issuer}, {"date", c.Date}, {"credentialId", cred}}
}

func (c Course) Fields() []Field {
	return []Field{
		{"name", c.Name}, {"provider", c.Provider},
		{"completionDate", c.CompletionDate}, {"description", c.Description},
	}
}

func (c Conference) Fields() []Field {
	return []Field{{"name", c.Name}, {"date", c.Date}, {"location", c.Location}, {"description", c.Description}}
}

func (w Workshop) Fields() []Field {
	return []Field{{"name", w.Name}, {"date", w.Date}, {"instructor", w.Instructor}, {"skills", w.Skills}}
}

func (m Media) Fields() []Field {
	return []Field{{"title", m.Title}, {"type", string(m.Type)}, {"url", m.URL}, {"description", m.Description}}
}
