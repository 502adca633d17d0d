package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-posts/models"
	"github.com/go-playground/validator/v10"
)

// PostValidator implements the Validator interface for the request bodies
// of the post operations. Structural rules live in the `validate` struct
// tags of the models and are enforced by go-playground/validator; rules
// spanning several fields are checked here.
//
// Field scoping passes Go field names (e.g. "Title", "PageRequest.Limit").
type PostValidator struct {
	validate *validator.Validate
}

// NewPostValidator constructs a PostValidator whose error messages name
// fields by their JSON keys.
func NewPostValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &PostValidator{validate: v}
}

// Validate dispatches validation to the appropriate type-specific method.
// Both value and pointer forms of every request model are accepted.
func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UpdatePostRequest:
		return v.validateUpdatePostRequest(ctx, value, fields...)
	case *models.UpdatePostRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUpdatePostRequest(ctx, *value, fields...)

	case models.CreatePostRequest, *models.CreatePostRequest,
		models.PageRequest, *models.PageRequest,
		models.SearchRequest, *models.SearchRequest,
		models.PostIDRequest, *models.PostIDRequest,
		models.UserPostsRequest, *models.UserPostsRequest,
		models.ShowTagsRequest, *models.ShowTagsRequest,
		models.AddImageRequest, *models.AddImageRequest,
		models.VoteRequest, *models.VoteRequest,
		models.AddTagRequest, *models.AddTagRequest,
		models.SearchTagsRequest, *models.SearchTagsRequest:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validateUpdatePostRequest(ctx context.Context, request models.UpdatePostRequest, fields ...string) error {
	if err := v.validateStruct(ctx, request, fields...); err != nil {
		return err
	}

	if request.Title == nil && request.Description == nil && request.Code == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func (v *PostValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return ErrUnsupportedType
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %s", ErrInvalidField, describe(validationErrs))
	}

	return err
}

// describe renders validation errors as "field: rule" pairs,
// e.g. "title: required; tags[0]: max=50".
func describe(validationErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		parts = append(parts, fieldErr.Field()+": "+rule)
	}

	return strings.Join(parts, "; ")
}
