package backend

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		b, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, b, name)
	}

	_, err := Lookup("cobol")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownBackend))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"js-arrayjoin", "js-concat", "js-stringbuilder", "python"}, Names())
}
