package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validaten/pkg/hashes"
	"github.com/dmitrymomot/validaten/pkg/validator"
)

func TestValidHash(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.ValidHash("checksum", "5eb63bbbe01eeed093cb22bb8f5acdc3")))

	err := validator.Apply(validator.ValidHash("checksum", "3f21"))
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, "validation.hash", verrs[0].TranslationKey)
}

func TestValidHashAlgorithm(t *testing.T) {
	sha256 := "B94D27B9934D3E08A52E52D7DA7DABFAC484EFE37A5380EE9088F7ACE2EFCDE9"

	assert.NoError(t, validator.Apply(validator.ValidHashAlgorithm("checksum", sha256, hashes.SHA256, hashes.SHA512)))

	err := validator.Apply(validator.ValidHashAlgorithm("checksum", "5eb63bbbe01eeed093cb22bb8f5acdc3", hashes.SHA256, hashes.SHA512))
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, "must be a hex-encoded SHA256, SHA512 digest", verrs[0].Message)
	assert.Equal(t, "SHA256, SHA512", verrs[0].TranslationValues["algorithms"])
}
