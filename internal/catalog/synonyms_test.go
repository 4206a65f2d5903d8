package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The shipped table is validated at server startup; a malformed entry
// added here must fail this test before it ever reaches matching.
func TestIngredientSynonymsValidate(t *testing.T) {
	require.NoError(t, IngredientSynonyms().Validate())
}
