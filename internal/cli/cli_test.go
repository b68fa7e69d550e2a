package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/professional-ladder/adapters/persistence"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

const testEmail = "ada@example.com"

type CLITestSuite struct {
	suite.Suite
	dir    string
	dbPath string
}

func (s *CLITestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.dbPath = filepath.Join(s.dir, "ladder.db")
}

func TestCLI(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) exec(stdin string, args ...string) (string, error) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--email", testEmail, "--config", s.dir, "--db", s.dbPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLITestSuite) mustExec(args ...string) string {
	out, err := s.exec("", args...)
	s.Require().NoError(err, out)
	return out
}

// stored reads the profile straight from the SQLite file.
func (s *CLITestSuite) stored() *profile.Profile {
	db, err := persistence.OpenSQLite(s.dbPath)
	s.Require().NoError(err)
	defer db.Close()

	repo := persistence.NewProfileRepo(persistence.NewSQLiteStore(db), logger.NewNopLogger())
	p, err := repo.Load(context.Background(), testEmail)
	s.Require().NoError(err)
	return p
}

// raw reads and writes the stored document without decoding it.
func (s *CLITestSuite) raw(set string) string {
	db, err := persistence.OpenSQLite(s.dbPath)
	s.Require().NoError(err)
	defer db.Close()

	store := persistence.NewSQLiteStore(db)
	key := persistence.ProfileKey(testEmail)
	if set != "" {
		s.Require().NoError(store.Set(context.Background(), key, set))
	}
	v, ok, err := store.Get(context.Background(), key)
	s.Require().NoError(err)
	s.Require().True(ok)
	return v
}

func (s *CLITestSuite) Test_UnreadableProfileIsNotOverwritten() {
	malformed := `{"personalInfo":{"name":"Ada"},"skills":[{"id":"oops","name":"Go"}],"experience":[{"id":1,"title":"Lead"}]}`
	s.raw(malformed)

	out, err := s.exec("", "add", "skills", "--field", "name=Rust")
	s.Require().Error(err, out)
	s.Contains(err.Error(), "--force")
	s.Equal(malformed, s.raw(""))

	out, err = s.exec("", "profile", "set", "--title", "Engineer")
	s.Require().Error(err, out)
	s.Equal(malformed, s.raw(""))

	out = s.mustExec("profile", "show")
	s.Contains(out, "could not be read")
	s.Equal(malformed, s.raw(""))

	s.mustExec("--force", "add", "skills", "--field", "name=Rust")
	p := s.stored()
	s.Require().Len(p.Skills, 1)
	s.Equal("Rust", p.Skills[0].Name)
}

func (s *CLITestSuite) Test_SignupAndShow() {
	s.mustExec("signup", "--name", "Ada Lovelace")

	out := s.mustExec("profile", "show")
	s.Contains(out, "Ada Lovelace")
	s.Contains(out, testEmail)

	s.mustExec("profile", "set", "--title", "Engineer", "--phone", "555-0100")
	p := s.stored()
	s.Equal("Engineer", p.PersonalInfo.Title)
	s.Equal("555-0100", p.PersonalInfo.Phone)
	s.Equal("Ada Lovelace", p.PersonalInfo.Name)
}

func (s *CLITestSuite) Test_AddToggleDelete() {
	out := s.mustExec("add", "skills", "--field", "name=Go", "--field", "level=Expert", "-f", "category=Languages")
	s.Contains(out, "Skills & Expertise")

	p := s.stored()
	s.Require().Len(p.Skills, 1)
	skill := p.Skills[0]
	s.Equal("Go", skill.Name)
	s.Equal(profile.VisibilityPublic, skill.Visibility)
	id := strconv.FormatInt(skill.ID, 10)

	out = s.mustExec("list", "skills")
	s.Contains(out, "Expert")
	s.Contains(out, "public")

	out = s.mustExec("toggle", "skills", id)
	s.Contains(out, "private")
	s.Equal(profile.VisibilityPrivate, s.stored().Skills[0].Visibility)

	out = s.mustExec("stats")
	s.Contains(out, "1 (0 public)")

	out, err := s.exec("n\n", "delete", "skills", id)
	s.Require().NoError(err)
	s.Contains(out, "Cancelled")
	s.Len(s.stored().Skills, 1)

	out, err = s.exec("y\n", "delete", "skills", id)
	s.Require().NoError(err)
	s.Contains(out, "Deleted")
	s.Empty(s.stored().Skills)

	out = s.mustExec("delete", "skills", id, "--yes")
	s.Contains(out, "No item")
}

func (s *CLITestSuite) Test_DryRunDoesNotSave() {
	out := s.mustExec("--dry-run", "add", "education", "-f", "degree=BSc", "-f", "institution=MIT")
	s.Contains(out, "dry run")
	s.Empty(s.stored().Education)
}

func (s *CLITestSuite) Test_Errors() {
	_, err := s.exec("", "add", "hobbies", "-f", "name=chess")
	s.Error(err)

	_, err = s.exec("", "add", "skills", "-f", "nonsense")
	s.ErrorContains(err, "name=value")

	_, err = s.exec("", "add", "skills", "-f", "rating=5")
	s.Error(err)

	_, err = s.exec("", "toggle", "skills", "abc")
	s.ErrorContains(err, "integer")

	_, err = s.exec("", "cover-letter", "--job-title", "Dev")
	s.ErrorContains(err, "companyName")

	_, err = s.exec("", "backup")
	s.ErrorContains(err, "cloudinary")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"stats"})
	s.Error(cmd.Execute(), "--email is required")
}

func (s *CLITestSuite) Test_Documents() {
	s.mustExec("signup", "--name", "Ada Lovelace")
	s.mustExec("add", "experience", "-f", "title=Engineer", "-f", "company=Analytical Engines", "-f", "startDate=1842")

	outDir := filepath.Join(s.dir, "out")
	out := s.mustExec("resume", "--out", outDir)
	s.Contains(out, "Ada_Lovelace_Resume.txt")

	resume, err := os.ReadFile(filepath.Join(outDir, "Ada_Lovelace_Resume.txt"))
	s.Require().NoError(err)
	s.Contains(string(resume), "ADA LOVELACE")
	s.Contains(string(resume), "Engineer | Analytical Engines")

	s.mustExec("cover-letter", "--job-title", "Staff Engineer", "--company", "Acme Corp", "-o", outDir)
	letter, err := os.ReadFile(filepath.Join(outDir, "Cover_Letter_Acme_Corp_Staff_Engineer.txt"))
	s.Require().NoError(err)
	s.Contains(string(letter), "Staff Engineer position at Acme Corp")

	out = s.mustExec("share-link")
	s.Contains(out, "https://professionalladder.com/profile/"+testEmail)

	out = s.mustExec("preview")
	s.Contains(out, "Ada Lovelace")
	s.Contains(out, "Professional Experience")
}
