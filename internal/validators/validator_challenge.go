package validators

import (
	"context"

	"github.com/MKhiriev/go-ctf-game/models"
)

const (
	FieldTitle       = "title"
	FieldFlag        = "flag"
	FieldPoints      = "points"
	FieldMaxAttempts = "max_attempts"
)

type ChallengeValidator struct {
}

func NewChallengeValidator() Validator {
	return &ChallengeValidator{}
}

func (v *ChallengeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Challenge:
		return v.validateChallenge(ctx, value, fields...)
	case *models.Challenge:
		return v.validateChallenge(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ChallengeValidator) validateChallenge(_ context.Context, challenge models.Challenge, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldFlag, FieldPoints, FieldMaxAttempts}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if challenge.Title == "" {
				return ErrEmptyTitle
			}
		case FieldFlag:
			if challenge.Flag == "" {
				return ErrEmptyFlag
			}
		case FieldPoints:
			if challenge.Points <= 0 {
				return ErrInvalidPoints
			}
		case FieldMaxAttempts:
			// -1 means unlimited attempts; the value is stored but never
			// enforced during submission
			if challenge.MaxAttempts == 0 || challenge.MaxAttempts < -1 {
				return ErrInvalidMaxAttempts
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
