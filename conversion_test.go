package ampconv_test

import (
	"testing"

	"github.com/fwojciec/ampconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversion_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts conversion with source", func(t *testing.T) {
		t.Parallel()

		conv := &ampconv.Conversion{Source: "post.html"}

		assert.NoError(t, conv.Validate())
	})

	t.Run("requires source", func(t *testing.T) {
		t.Parallel()

		conv := &ampconv.Conversion{HTML: "<p></p>"}

		err := conv.Validate()

		require.Error(t, err)
		assert.Equal(t, ampconv.EINVALID, ampconv.ErrorCode(err))
	})
}
