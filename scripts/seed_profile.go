package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/khoahotran/professional-ladder/adapters/persistence"
	"github.com/khoahotran/professional-ladder/internal/config"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

// Seeds a demo profile for OWNER_EMAIL into the configured store.
func main() {
	fmt.Println("adding demo profile into store...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	email := os.Getenv("OWNER_EMAIL")
	if email == "" {
		log.Fatal("OWNER_EMAIL is required")
	}

	store, closeStore, err := persistence.NewStore(cfg, logger.NewNopLogger())
	if err != nil {
		log.Fatalf("cannot open store: %v", err)
	}
	defer closeStore()

	p := profile.New()
	name, title := os.Getenv("OWNER_NAME"), "Software Engineer"
	summary := "Engineer who enjoys building reliable backend systems."
	p.UpdatePersonalInfo(profile.PersonalInfoPatch{Name: &name, Email: &email, Title: &title, Summary: &summary})

	ids := profile.NewClockIDs()
	seed := []struct {
		category profile.Category
		fields   map[string]string
	}{
		{profile.CategoryExperience, map[string]string{"title": "Backend Engineer", "company": "Acme", "startDate": "2021-03", "description": "Built the billing platform."}},
		{profile.CategoryEducation, map[string]string{"degree": "BSc", "field": "Computer Science", "institution": "State University", "year": "2020"}},
		{profile.CategorySkills, map[string]string{"name": "Go", "level": "Expert", "category": "Languages"}},
		{profile.CategoryCertificates, map[string]string{"name": "CKA", "issuer": "CNCF", "date": "2023"}},
		{profile.CategoryWorkshops, map[string]string{"name": "Profiling Go", "date": "2024-05", "instructor": "Dave", "skills": "pprof"}},
	}
	for _, s := range seed {
		item, err := profile.NewItem(s.category, s.fields)
		if err != nil {
			log.Fatalf("cannot build %s item: %v", s.category, err)
		}
		if _, err := p.Add(item, ids); err != nil {
			log.Fatalf("cannot add %s item: %v", s.category, err)
		}
	}

	repo := persistence.NewProfileRepo(store, logger.NewNopLogger())
	if err := repo.Save(context.Background(), email, p); err != nil {
		log.Fatalf("cannot save profile: %v", err)
	}

	fmt.Printf("added or replaced profile '%s' successfully!\n", email)
}
