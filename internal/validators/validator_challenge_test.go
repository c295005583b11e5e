package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ctf-game/models"
	"github.com/stretchr/testify/assert"
)

func validChallenge() models.Challenge {
	return models.Challenge{
		Title:       "warmup",
		Flag:        "flag{x}",
		Points:      100,
		MaxAttempts: -1,
	}
}

func TestChallengeValidator_Valid(t *testing.T) {
	v := NewChallengeValidator()

	assert.NoError(t, v.Validate(context.Background(), validChallenge()))

	challenge := validChallenge()
	assert.NoError(t, v.Validate(context.Background(), &challenge))
}

func TestChallengeValidator_FieldErrors(t *testing.T) {
	v := NewChallengeValidator()

	tests := []struct {
		name    string
		mutate  func(*models.Challenge)
		wantErr error
	}{
		{"empty title", func(c *models.Challenge) { c.Title = "" }, ErrEmptyTitle},
		{"empty flag", func(c *models.Challenge) { c.Flag = "" }, ErrEmptyFlag},
		{"zero points", func(c *models.Challenge) { c.Points = 0 }, ErrInvalidPoints},
		{"negative points", func(c *models.Challenge) { c.Points = -10 }, ErrInvalidPoints},
		{"zero max attempts", func(c *models.Challenge) { c.MaxAttempts = 0 }, ErrInvalidMaxAttempts},
		{"below unlimited", func(c *models.Challenge) { c.MaxAttempts = -2 }, ErrInvalidMaxAttempts},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			challenge := validChallenge()
			tt.mutate(&challenge)
			assert.ErrorIs(t, v.Validate(context.Background(), challenge), tt.wantErr)
		})
	}
}

func TestChallengeValidator_FieldScoping(t *testing.T) {
	v := NewChallengeValidator()

	// only the named field is checked
	challenge := models.Challenge{Title: "only-title"}
	assert.NoError(t, v.Validate(context.Background(), challenge, FieldTitle))

	assert.ErrorIs(t, v.Validate(context.Background(), challenge, "nonexistent"), ErrUnknownField)
}

func TestChallengeValidator_UnsupportedType(t *testing.T) {
	v := NewChallengeValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "not a challenge"), ErrUnsupportedType)
}
