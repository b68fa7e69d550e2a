package document

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/professional-ladder/internal/domain/profile"
)

type seqIDs struct{ next int64 }

func (s *seqIDs) Next() int64 {
	s.next++
	return s.next
}

func fullProfile(t *testing.T) *profile.Profile {
	t.Helper()
	p := profile.New()
	p.PersonalInfo = profile.PersonalInfo{
		Name:     "Ada  Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		Title:    "Engineer",
		Summary:  "I build analytical engines.",
		LinkedIn: "linkedin.com/in/ada",
	}
	ids := &seqIDs{}
	items := []profile.Item{
		profile.Experience{Title: "Engineer", Company: "Acme", StartDate: "Jan 2020", Description: "Built things"},
		profile.Education{Degree: "BSc", Field: "Mathematics", Institution: "London", Year: "1835"},
		profile.Skill{Name: "Go"}, profile.Skill{Name: "SQL"}, profile.Skill{Name: "Kafka"}, profile.Skill{Name: "Redis"},
		profile.Certificate{Name: "CKA", Issuer: "CNCF", Date: "2024"},
		profile.Certificate{Name: "AWS SA", Issuer: "AWS", Date: "2023"},
		profile.Certificate{Name: "Third", Issuer: "X", Date: "2022"},
		profile.Course{Name: "Distributed Systems", Provider: "MIT"},
		profile.Conference{Name: "GopherCon", Location: "Denver", Date: "2024"},
		profile.Workshop{Name: "TDD", Instructor: "Kent"},
	}
	for _, it := range items {
		_, err := p.Add(it, ids)
		require.NoError(t, err)
	}
	return p
}

func TestResume_FullProfile(t *testing.T) {
	p := fullProfile(t)
	_, _ = p.ToggleVisibility(profile.CategorySkills, 3)

	out := Resume(p)

	assert.True(t, strings.HasPrefix(out, heavyRule))
	assert.Contains(t, out, "ADA  LOVELACE\nEngineer")
	assert.Contains(t, out, "📧 ada@example.com | 📱 555-0100")
	assert.Contains(t, out, "🔗 LinkedIn: linkedin.com/in/ada")
	assert.NotContains(t, out, "🌐 Website:")
	assert.Contains(t, out, "▪ Engineer | Acme\n  Jan 2020 - Present\n  Built things")
	assert.Contains(t, out, "▪ BSc in Mathematics\n  London | 1835")
	assert.Contains(t, out, "▪ Go\n▪ SQL\n▪ Kafka\n▪ Redis")
	assert.Contains(t, out, "▪ CKA | CNCF (2024)")
	assert.Contains(t, out, "▪ Distributed Systems | MIT")
	assert.Contains(t, out, "Conferences:\n▪ GopherCon (Denver, 2024)")
	assert.Contains(t, out, "Workshops:\n▪ TDD - Kent")
	assert.Equal(t, strings.TrimSpace(out), out)

	order := []string{"PROFESSIONAL SUMMARY", "PROFESSIONAL EXPERIENCE", "EDUCATION", "SKILLS", "CERTIFICATIONS", "COURSES & TRAINING", "PROFESSIONAL DEVELOPMENT"}
	last := -1
	for _, h := range order {
		i := strings.Index(out, h)
		require.Greater(t, i, last, h)
		last = i
	}
}

func TestResume_OmitsEmptySections(t *testing.T) {
	p := profile.New()
	p.PersonalInfo.Name = "Ada"
	_, _ = p.Add(profile.Workshop{Name: "TDD", Instructor: "Kent"}, &seqIDs{})

	out := Resume(p)

	assert.Contains(t, out, "PROFESSIONAL SUMMARY")
	for _, h := range []string{"PROFESSIONAL EXPERIENCE", "EDUCATION", "SKILLS", "CERTIFICATIONS", "COURSES & TRAINING", "Conferences:"} {
		assert.NotContains(t, out, h)
	}
	assert.Contains(t, out, "PROFESSIONAL DEVELOPMENT")
	assert.Contains(t, out, "Workshops:")
}

func TestResume_EndDate(t *testing.T) {
	tests := []struct {
		name string
		end  *string
		want string
	}{
		{"absent", nil, "Jan 2020 - Present"},
		{"empty", ptr(""), "Jan 2020 - Present"},
		{"set", ptr("Dec 2022"), "Jan 2020 - Dec 2022"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profile.New()
			_, _ = p.Add(profile.Experience{Title: "Engineer", Company: "Acme", StartDate: "Jan 2020", EndDate: tt.end, Description: "Built things"}, &seqIDs{})
			assert.Contains(t, Resume(p), tt.want)
		})
	}
}

func TestCoverLetter_FullProfile(t *testing.T) {
	p := fullProfile(t)
	date := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)

	out := CoverLetter(p, CoverLetterRequest{JobTitle: "Staff Engineer", CompanyName: "Globex"}, date)

	assert.True(t, strings.HasPrefix(out, "Ada  Lovelace\nada@example.com | 555-0100\nMarch 5, 2025"))
	assert.Contains(t, out, "Hiring Manager\nGlobex")
	assert.Contains(t, out, "Dear Hiring Manager,")
	assert.Contains(t, out, "the Staff Engineer position at Globex. I build analytical engines.")
	assert.Contains(t, out, "In my recent role as Engineer at Acme, Built things")
	assert.Contains(t, out, "My core competencies include Go, SQL, Kafka, which")
	assert.NotContains(t, out, "Redis")
	assert.Contains(t, out, "certifications including CKA and AWS SA.")
	assert.NotContains(t, out, "Third")
	assert.Contains(t, out, developmentLine)
	assert.Contains(t, out, "contribute to Globex")
	assert.True(t, strings.HasSuffix(out, "Sincerely,\nAda  Lovelace"))
}

func TestCoverLetter_EmptyProfileUsesFallback(t *testing.T) {
	out := CoverLetter(profile.New(), CoverLetterRequest{JobTitle: "Dev", CompanyName: "Acme"}, time.Now())

	assert.Contains(t, out, fallbackExperience)
	assert.NotContains(t, out, "core competencies")
	assert.NotContains(t, out, "certifications including")
	assert.NotContains(t, out, developmentLine)
	assert.Contains(t, out, "Sincerely,")
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "Ada_Lovelace_Resume.txt", ResumeFilename("Ada \t Lovelace"))
	assert.Equal(t, "_Resume.txt", ResumeFilename(""))
	assert.Equal(t, "Cover_Letter_Acme_Corp_Senior_Dev.txt",
		CoverLetterFilename(CoverLetterRequest{JobTitle: "Senior Dev", CompanyName: "Acme Corp"}))
}

func TestPublicProfileURL(t *testing.T) {
	assert.Equal(t, "https://professionalladder.com/profile/ada@example.com",
		PublicProfileURL("professionalladder.com", "ada@example.com"))
}

func TestPublicText(t *testing.T) {
	p := profile.New()
	out := PublicText(profile.Project(p))
	assert.Contains(t, out, PlaceholderName)
	assert.Contains(t, out, PlaceholderTitle)
	assert.Contains(t, out, EmptyPublicView)

	p = fullProfile(t)
	out = PublicText(profile.Project(p))
	assert.NotContains(t, out, EmptyPublicView)
	assert.Contains(t, out, "Certifications")
	assert.Contains(t, out, "▪ CKA | CNCF | 2024")
	assert.NotContains(t, out, "Media Gallery")
}

func ptr(s string) *string { return &s }
