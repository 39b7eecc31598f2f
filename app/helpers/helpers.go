package helpers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/nandasafiq/go-storefront/app/models"
	"github.com/nandasafiq/go-storefront/app/models/other"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
	CartCountKey     contextKey = "cartCount"
)

func GetUserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(ContextKeyUserID).(string); ok {
		return userID
	}
	return ""
}

func GetUserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(ContextKeyUser).(*models.User); ok {
		return user
	}
	return nil
}

func UserForTemplate(user *models.User) *other.UserForTemplate {
	if user == nil {
		return nil
	}
	return &other.UserForTemplate{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}
}

// ValidationErrors flattens validator output into a field → message map for
// re-rendering forms.
func ValidationErrors(err error) map[string]string {
	errs := map[string]string{}
	if err == nil {
		return errs
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid input."
		return errs
	}

	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			errs[fieldErr.Field()] = "This field is required."
		case "email":
			errs[fieldErr.Field()] = "Enter a valid email address."
		case "min":
			errs[fieldErr.Field()] = "Value is too short."
		case "max":
			errs[fieldErr.Field()] = "Value is too long."
		default:
			errs[fieldErr.Field()] = "Invalid value."
		}
	}
	return errs
}
