package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/professional-ladder/adapters/persistence"
	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/application/session"
	authUC "github.com/khoahotran/professional-ladder/internal/application/usecase/auth"
	documentUC "github.com/khoahotran/professional-ladder/internal/application/usecase/document"
	profileUC "github.com/khoahotran/professional-ladder/internal/application/usecase/profile"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/auth"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

type RouterTestSuite struct {
	suite.Suite
	Router *gin.Engine
	store  service.KeyValueStore
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	appLogger := logger.NewNopLogger()

	s.store = persistence.NewMemoryStore()
	profileRepo := persistence.NewProfileRepo(s.store, appLogger)
	registry := session.NewRegistry(time.Hour)
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)

	authUseCase := authUC.NewAuthUseCase(profileRepo, registry, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, service.NopPublisher(), profile.NewClockIDs(), "professionalladder.com", appLogger)
	documentUseCase := documentUC.NewDocumentUseCase(service.NopPublisher(), appLogger)

	s.Router = NewRouter(Handlers{
		Auth:     NewAuthHandler(authUseCase, appLogger),
		Profile:  NewProfileHandler(profileUseCase, appLogger),
		Document: NewDocumentHandler(documentUseCase, appLogger),
	}, AuthMiddleware(authUseCase, appLogger), appLogger)
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		buf.Write(data)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *RouterTestSuite) login(email string) string {
	rr := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": "whatever"})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	var resp TokenResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.AccessToken)
	return resp.AccessToken
}

func (s *RouterTestSuite) Test_Health() {
	rr := s.do(http.MethodGet, "/api/health", "", nil)
	s.Equal(http.StatusOK, rr.Code)
}

func (s *RouterTestSuite) Test_RequiresToken() {
	rr := s.do(http.MethodGet, "/api/profile", "", nil)
	s.Equal(http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodGet, "/api/profile", "garbage", nil)
	s.Equal(http.StatusUnauthorized, rr.Code)
	s.Contains(rr.Body.String(), `"error":"unauthorized"`)
}

func (s *RouterTestSuite) Test_SignupSeedsPersonalInfo() {
	rr := s.do(http.MethodPost, "/api/auth/signup", "", gin.H{"email": "ada@example.com", "password": "x", "name": "Ada Lovelace"})
	s.Require().Equal(http.StatusCreated, rr.Code)

	var resp TokenResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.Equal("Ada Lovelace", resp.Profile.PersonalInfo.Name)
	s.Equal("ada@example.com", resp.Profile.PersonalInfo.Email)
}

func (s *RouterTestSuite) Test_LoginWarnsOnUnreadableProfile() {
	rr := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@example.com", "password": "x"})
	s.Require().Equal(http.StatusOK, rr.Code)
	s.NotContains(rr.Body.String(), `"warning"`)

	raw := `{"personalInfo":{"name":"Ada"},"experience":[{"id":1,"title":"Lead"}],"skills":[{"id":"oops"}]}`
	s.Require().NoError(s.store.Set(context.Background(), persistence.ProfileKey("ada@example.com"), raw))

	rr = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@example.com", "password": "x"})
	s.Require().Equal(http.StatusOK, rr.Code)
	var resp TokenResponse
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	s.NotEmpty(resp.Warning)
	s.Empty(resp.Profile.Experience)

	got, ok, err := s.store.Get(context.Background(), persistence.ProfileKey("ada@example.com"))
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(raw, got)
}

func (s *RouterTestSuite) Test_ItemLifecycle() {
	token := s.login("ada@example.com")

	rr := s.do(http.MethodPost, "/api/profile/items/certificates", token, gin.H{"name": "CKA", "issuer": "CNCF", "date": "2024"})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	var created ItemRefDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &created))

	rr = s.do(http.MethodPost, "/api/profile/items/experience", token, gin.H{"title": "Dev", "company": "Acme"})
	s.Require().Equal(http.StatusCreated, rr.Code)
	var exp ItemRefDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &exp))

	rr = s.do(http.MethodPatch, "/api/profile/items/experience/"+strconv.FormatInt(exp.ID, 10)+"/visibility", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"found":true,"visibility":"private"}`, rr.Body.String())

	rr = s.do(http.MethodGet, "/api/profile/preview", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var preview PreviewDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &preview))
	s.Equal([]string{"certificates"}, preview.Sections)
	s.True(preview.HasPublicContent)

	rr = s.do(http.MethodGet, "/api/profile/items/certificates", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), `"issuer":"CNCF"`)

	rr = s.do(http.MethodDelete, "/api/profile/items/certificates/"+strconv.FormatInt(created.ID, 10), token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"found":true}`, rr.Body.String())

	rr = s.do(http.MethodDelete, "/api/profile/items/certificates/"+strconv.FormatInt(created.ID, 10), token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"found":false}`, rr.Body.String())
}

func (s *RouterTestSuite) Test_BadInput() {
	token := s.login("ada@example.com")

	rr := s.do(http.MethodPost, "/api/profile/items/hobbies", token, gin.H{"name": "chess"})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodPatch, "/api/profile/items/skills/abc/visibility", token, nil)
	s.Equal(http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodPost, "/api/profile/items/skills", token, gin.H{"name": 5})
	s.Equal(http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodPost, "/api/documents/cover-letter", token, gin.H{"jobTitle": "Dev"})
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Contains(rr.Body.String(), "companyName")
}

func (s *RouterTestSuite) Test_SaveLogoutLogin() {
	token := s.login("ada@example.com")

	rr := s.do(http.MethodPatch, "/api/profile/personal-info", token, gin.H{"name": "Ada Lovelace", "title": "Engineer"})
	s.Require().Equal(http.StatusOK, rr.Code)

	rr = s.do(http.MethodPost, "/api/profile/save", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	rr = s.do(http.MethodPost, "/api/auth/logout", token, nil)
	s.Require().Equal(http.StatusNoContent, rr.Code)

	rr = s.do(http.MethodGet, "/api/profile", token, nil)
	s.Equal(http.StatusUnauthorized, rr.Code)

	token = s.login("ada@example.com")
	rr = s.do(http.MethodGet, "/api/profile", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var p ProfileDTO
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &p))
	s.Equal("Ada Lovelace", p.PersonalInfo.Name)
	s.Equal("Engineer", p.PersonalInfo.Title)

	_, found, err := s.store.Get(context.Background(), "user_ada@example.com")
	s.Require().NoError(err)
	s.True(found)
}

func (s *RouterTestSuite) Test_Documents() {
	token := s.login("ada@example.com")
	s.do(http.MethodPatch, "/api/profile/personal-info", token, gin.H{"name": "Ada Lovelace"})

	rr := s.do(http.MethodGet, "/api/documents/resume", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Equal("text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	s.Equal(`attachment; filename="Ada_Lovelace_Resume.txt"`, rr.Header().Get("Content-Disposition"))
	s.True(strings.Contains(rr.Body.String(), "ADA LOVELACE"))

	rr = s.do(http.MethodPost, "/api/documents/cover-letter", token, gin.H{"jobTitle": "Staff Engineer", "companyName": "Acme Corp"})
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Equal(`attachment; filename="Cover_Letter_Acme_Corp_Staff_Engineer.txt"`, rr.Header().Get("Content-Disposition"))
	s.Contains(rr.Body.String(), "Dear Hiring Manager,")

	rr = s.do(http.MethodGet, "/api/profile/share-link", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{"url":"https://professionalladder.com/profile/ada@example.com"}`, rr.Body.String())

	rr = s.do(http.MethodGet, "/api/profile/stats", token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), `"category":"experience"`)
}

