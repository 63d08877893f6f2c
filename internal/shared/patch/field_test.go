package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youthcup_backend/internal/shared/apperror"
)

type body struct {
	Score Field[int]    `json:"score"`
	Name  Field[string] `json:"name"`
}

func TestField_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		wantSet   bool
		wantNull  bool
		wantValue int
	}{
		{"absent", `{}`, false, false, 0},
		{"null", `{"score": null}`, true, true, 0},
		{"value", `{"score": 3}`, true, false, 3},
		{"zero value", `{"score": 0}`, true, false, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var b body
			require.NoError(t, json.Unmarshal([]byte(tt.in), &b))
			assert.Equal(t, tt.wantSet, b.Score.Set)
			assert.Equal(t, tt.wantNull, b.Score.Null)
			assert.Equal(t, tt.wantValue, b.Score.Value)
			assert.False(t, b.Name.Set)
		})
	}
}

func TestField_Ptr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Field[int]{}.Ptr())
	assert.Nil(t, Null[int]().Ptr())
	p := Of(7).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)
}

func TestField_InvalidType(t *testing.T) {
	t.Parallel()

	var b body
	err := json.Unmarshal([]byte(`{"score": "three"}`), &b)
	assert.Error(t, err)
}

func TestField_NotNull(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Field[int]{}.NotNull("price"))
	assert.NoError(t, Of(0).NotNull("price"))

	err := Null[int]().NotNull("price")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Equal(t, "price cannot be null", apperror.MessageOf(err))
}
