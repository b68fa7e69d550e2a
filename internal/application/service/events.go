package service

import (
	"context"
	"time"
)

type EventType string

const (
	EventProfileSaved      EventType = "profile.saved"
	EventDocumentGenerated EventType = "document.generated"
)

type DocumentKind string

const (
	DocumentResume      DocumentKind = "resume"
	DocumentCoverLetter DocumentKind = "cover_letter"
)

type ProfileSavedPayload struct {
	EventType EventType `json:"event_type"`
	Email     string    `json:"email"`
	ItemCount int       `json:"item_count"`
	SavedAt   time.Time `json:"saved_at"`
}

type DocumentGeneratedPayload struct {
	EventType   EventType    `json:"event_type"`
	Email       string       `json:"email"`
	Kind        DocumentKind `json:"kind"`
	Filename    string       `json:"filename"`
	Content     string       `json:"content"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// EventPublisher announces profile and document activity to downstream consumers.
type EventPublisher interface {
	PublishProfileSaved(ctx context.Context, payload ProfileSavedPayload) error
	PublishDocumentGenerated(ctx context.Context, payload DocumentGeneratedPayload) error
}

type nopPublisher struct{}

// NopPublisher drops every event. Used when no broker is configured.
func NopPublisher() EventPublisher { return nopPublisher{} }

func (nopPublisher) PublishProfileSaved(context.Context, ProfileSavedPayload) error { return nil }

func (nopPublisher) PublishDocumentGenerated(context.Context, DocumentGeneratedPayload) error {
	return nil
}
