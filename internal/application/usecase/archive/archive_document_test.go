package archive

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

type fakeUploader struct {
	folder, publicID, body string
	err                    error
}

func (u *fakeUploader) Upload(_ context.Context, file io.Reader, folder, publicID string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	data, _ := io.ReadAll(file)
	u.folder, u.publicID, u.body = folder, publicID, string(data)
	return "https://cdn.example.com/" + folder + "/" + publicID, nil
}

func (u *fakeUploader) Delete(context.Context, string) error { return nil }

func TestArchiveDocument(t *testing.T) {
	up := &fakeUploader{}
	uc := NewArchiveDocumentUseCase(up, "documents", logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), service.DocumentGeneratedPayload{
		EventType: service.EventDocumentGenerated,
		Email:     "ada@example.com",
		Filename:  "Ada_Resume.txt",
		Content:   "ADA",
	})
	require.NoError(t, err)
	assert.Equal(t, "documents/ada@example.com", up.folder)
	assert.Equal(t, "Ada_Resume.txt", up.publicID)
	assert.Equal(t, "ADA", up.body)
	assert.Equal(t, "https://cdn.example.com/documents/ada@example.com/Ada_Resume.txt", out.URL)
}

func TestArchiveDocument_Errors(t *testing.T) {
	uc := NewArchiveDocumentUseCase(&fakeUploader{err: errors.New("quota")}, "documents", logger.NewNopLogger())

	err := uc.Handle(context.Background(), service.DocumentGeneratedPayload{Email: "a@x", Filename: "f.txt"})
	assert.ErrorIs(t, err, apperror.ErrInternal)

	err = uc.Handle(context.Background(), service.DocumentGeneratedPayload{Filename: "f.txt"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
