package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		fromArgs string
		fallback string
		want     string
	}{
		{name: "explicit wins", explicit: "a", fromArgs: "b", fallback: "c", want: "a"},
		{name: "argv wins over fallback", fromArgs: "b", fallback: "c", want: "b"},
		{name: "fallback used last", fallback: "c", want: "c"},
		{name: "explicit without others", explicit: "a", want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Name(tt.explicit, tt.fromArgs, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestName_Undefined(t *testing.T) {
	got, err := Name("", "", "")
	assert.Empty(t, got)
	assert.ErrorIs(t, err, ErrConfigNameUndefined)
}
