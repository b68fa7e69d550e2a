package document

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/khoahotran/professional-ladder/internal/domain/profile"
)

var (
	heavyRule = strings.Repeat("═", 55)
	lightRule = strings.Repeat("─", 55)

	upper = cases.Upper(language.AmericanEnglish)
)

// Resume renders the full profile, visibility ignored, as a plain-text resume.
// A section is written only when its sequence is non-empty.
func Resume(p *profile.Profile) string {
	info := p.PersonalInfo
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n%s\n%s\n\n", heavyRule, upper.String(info.Name), info.Title, heavyRule)
	fmt.Fprintf(&b, "📧 %s | 📱 %s\n", info.Email, info.Phone)
	if info.LinkedIn != "" {
		fmt.Fprintf(&b, "🔗 LinkedIn: %s\n", info.LinkedIn)
	}
	if info.Website != "" {
		fmt.Fprintf(&b, "🌐 Website: %s\n", info.Website)
	}

	section(&b, "PROFESSIONAL SUMMARY")
	b.WriteString(info.Summary)
	b.WriteString("\n")

	if len(p.Experience) > 0 {
		section(&b, "PROFESSIONAL EXPERIENCE")
		blocks := make([]string, 0, len(p.Experience))
		for _, e := range p.Experience {
			end := "Present"
			if !e.Current() {
				end = *e.EndDate
			}
			blocks = append(blocks, fmt.Sprintf("▪ %s | %s\n  %s - %s\n  %s\n", e.Title, e.Company, e.StartDate, end, e.Description))
		}
		b.WriteString(strings.Join(blocks, "\n"))
	}

	if len(p.Education) > 0 {
		section(&b, "EDUCATION")
		blocks := make([]string, 0, len(p.Education))
		for _, e := range p.Education {
			blocks = append(blocks, fmt.Sprintf("▪ %s in %s\n  %s | %s\n", e.Degree, e.Field, e.Institution, e.Year))
		}
		b.WriteString(strings.Join(blocks, "\n"))
	}

	if len(p.Skills) > 0 {
		section(&b, "SKILLS")
		bullets(&b, p.Skills, func(s profile.Skill) string { return s.Name })
	}

	if len(p.Certificates) > 0 {
		section(&b, "CERTIFICATIONS")
		bullets(&b, p.Certificates, func(c profile.Certificate) string {
			return fmt.Sprintf("%s | %s (%s)", c.Name, c.Issuer, c.Date)
		})
	}

	if len(p.Courses) > 0 {
		section(&b, "COURSES & TRAINING")
		bullets(&b, p.Courses, func(c profile.Course) string {
			return fmt.Sprintf("%s | %s", c.Name, c.Provider)
		})
	}

	if len(p.Conferences) > 0 || len(p.Workshops) > 0 {
		section(&b, "PROFESSIONAL DEVELOPMENT")
		if len(p.Conferences) > 0 {
			b.WriteString("\nConferences:\n")
			bullets(&b, p.Conferences, func(c profile.Conference) string {
				return fmt.Sprintf("%s (%s, %s)", c.Name, c.Location, c.Date)
			})
		}
		if len(p.Workshops) > 0 {
			b.WriteString("\nWorkshops:\n")
			bullets(&b, p.Workshops, func(w profile.Workshop) string {
				return fmt.Sprintf("%s - %s", w.Name, w.Instructor)
			})
		}
	}

	return strings.TrimSpace(b.String())
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n%s\n", lightRule, title, lightRule)
}

func bullets[T any](b *strings.Builder, items []T, line func(T) string) {
	for _, it := range items {
		fmt.Fprintf(b, "▪ %s\n", line(it))
	}
}
