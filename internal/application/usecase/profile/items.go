package profile

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/khoahotran/professional-ladder/internal/application/session"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
)

type AddItemInput struct {
	Session  *session.Session
	Category string
	Fields   map[string]string
}

type AddItemOutput struct {
	Category profile.Category
	ID       int64
}

func (uc *ProfileUseCase) ExecuteAddItem(ctx context.Context, input AddItemInput) (*AddItemOutput, error) {
	c, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}
	item, err := profile.NewItem(c, input.Fields)
	if err != nil {
		if errors.Is(err, profile.ErrUnknownField) {
			return nil, apperror.NewInvalidInput(err.Error(), err)
		}
		return nil, apperror.NewInvalidInput("cannot build item", err)
	}

	var id int64
	err = input.Session.Do(func(p *profile.Profile) error {
		id, err = p.Add(item, uc.ids)
		return err
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to add item", err)
	}

	uc.logger.Debug("Item added", zap.String("email", input.Session.Email), zap.String("category", string(c)), zap.Int64("id", id))
	return &AddItemOutput{Category: c, ID: id}, nil
}

type ItemRefInput struct {
	Session  *session.Session
	Category string
	ID       int64
}

type ToggleVisibilityOutput struct {
	Found      bool
	Visibility profile.Visibility
}

// ExecuteToggleVisibility flips one item. An id that does not exist is not an
// error; Found reports whether anything changed.
func (uc *ProfileUseCase) ExecuteToggleVisibility(ctx context.Context, input ItemRefInput) (*ToggleVisibilityOutput, error) {
	c, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	var out ToggleVisibilityOutput
	err = input.Session.Do(func(p *profile.Profile) error {
		found, err := p.ToggleVisibility(c, input.ID)
		if err != nil || !found {
			return err
		}
		out.Found = true
		it, err := p.Find(c, input.ID)
		if err != nil {
			return err
		}
		out.Visibility = profile.VisibilityPrivate
		if it.IsPublic() {
			out.Visibility = profile.VisibilityPublic
		}
		return nil
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to toggle visibility", err)
	}
	if !out.Found {
		uc.logger.Debug("Toggle ignored, item not found", zap.String("category", string(c)), zap.Int64("id", input.ID))
	}
	return &out, nil
}

type DeleteItemOutput struct {
	Found bool
}

func (uc *ProfileUseCase) ExecuteDeleteItem(ctx context.Context, input ItemRefInput) (*DeleteItemOutput, error) {
	c, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	var out DeleteItemOutput
	err = input.Session.Do(func(p *profile.Profile) error {
		out.Found, err = p.Delete(c, input.ID)
		return err
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to delete item", err)
	}
	return &out, nil
}

type ListItemsOutput struct {
	Category profile.Category
	Entries  []profile.Entry
}

func (uc *ProfileUseCase) ExecuteListItems(ctx context.Context, input ItemRefInput) (*ListItemsOutput, error) {
	c, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	out := ListItemsOutput{Category: c}
	err = input.Session.Do(func(p *profile.Profile) error {
		out.Entries, err = p.Entries(c)
		return err
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to list items", err)
	}
	return &out, nil
}
