package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nindium/bookclub-server/internal/errors"
)

type sampleRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Reason  string  `json:"reason" validate:"min=10"`
	Rating  int     `json:"rating" validate:"min=1,max=5"`
	Website *string `json:"website" validate:"omitempty,url"`
}

func (r *sampleRequest) Normalize() {
	r.Name = SanitizeText(r.Name)
	r.Website = OptionalText(r.Website)
}

func details(t *testing.T, err error) []FieldError {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	fields, ok := appErr.Details.([]FieldError)
	require.True(t, ok)
	return fields
}

func TestDecode(t *testing.T) {
	t.Run("accepts valid payload", func(t *testing.T) {
		var req sampleRequest
		err := Decode(strings.NewReader(`{"name":" Jane ","email":"jane@example.com","reason":"I love reading","rating":4}`), &req)
		require.NoError(t, err)
		assert.Equal(t, "Jane", req.Name)
		assert.Nil(t, req.Website)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		var req sampleRequest
		err := Decode(strings.NewReader(`{"name":`), &req)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid request body", appErr.Message)
	})

	t.Run("lists every failing field", func(t *testing.T) {
		var req sampleRequest
		err := Decode(strings.NewReader(`{"name":"","email":"nope","reason":"short","rating":9,"website":"not a url"}`), &req)
		fields := details(t, err)

		byField := map[string]string{}
		for _, f := range fields {
			byField[f.Field] = f.Message
		}
		assert.Len(t, byField, 5)
		assert.Equal(t, "name is required", byField["name"])
		assert.Equal(t, "Valid email is required", byField["email"])
		assert.Equal(t, "reason must be at least 10 characters", byField["reason"])
		assert.Equal(t, "rating must be at most 5", byField["rating"])
		assert.Equal(t, "website must be a valid URL", byField["website"])
	})

	t.Run("markup only name counts as missing", func(t *testing.T) {
		var req sampleRequest
		err := Decode(strings.NewReader(`{"name":"<b></b>","email":"a@x.com","reason":"long enough reason","rating":3}`), &req)
		fields := details(t, err)
		require.Len(t, fields, 1)
		assert.Equal(t, "name", fields[0].Field)
	})
}

func TestID(t *testing.T) {
	assert.NoError(t, ID(uuid.NewString()))
	assert.Error(t, ID("42"))
	assert.Error(t, ID(""))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello", SanitizeText("<script>alert(1)</script>hello"))
	assert.Equal(t, "bold move", SanitizeText("<b>bold</b> move"))
	assert.Equal(t, "Tom & Jerry", SanitizeText("Tom & Jerry"))
	assert.Equal(t, "a < b", SanitizeText("a < b"))

	t.Run("entity-encoded markup is stripped", func(t *testing.T) {
		inputs := []string{
			"&lt;img src=x onerror=alert(1)&gt; great book",
			"&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;great book",
			"&#60;b&#62;great book&#60;/b&#62;",
		}
		for _, in := range inputs {
			got := SanitizeText(in)
			assert.Equal(t, "great book", got, in)
			assert.NotContains(t, got, "<", in)
			assert.Equal(t, got, SanitizeText(got), in)
		}
	})
}

func TestOptionalText(t *testing.T) {
	assert.Nil(t, OptionalText(nil))
	blank := "   "
	assert.Nil(t, OptionalText(&blank))
	value := " A classic "
	got := OptionalText(&value)
	require.NotNil(t, got)
	assert.Equal(t, "A classic", *got)
}
