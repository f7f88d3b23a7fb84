package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	model := Lookup("gemini-1.5-pro")
	require.NotNil(t, model)
	assert.Equal(t, ProviderGoogle, model.Provider)
	assert.Equal(t, "gemini-1.5-pro", model.ModelName)

	assert.Nil(t, Lookup("does-not-exist"))
	assert.Nil(t, Lookup(""))
}

func TestLookupReturnsCopy(t *testing.T) {
	m := Lookup("gpt-4o")
	require.NotNil(t, m)
	m.ModelName = "mutated"

	again := Lookup("gpt-4o")
	require.NotNil(t, again)
	assert.NotEqual(t, "mutated", again.ModelName)
}

func TestDefaultIsFirstEntry(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	assert.Equal(t, all[0], Default())
}

func TestCatalogProviderTags(t *testing.T) {
	known := map[string]bool{
		ProviderGoogle:    true,
		ProviderOpenAI:    true,
		ProviderAnthropic: true,
	}
	for _, m := range All() {
		assert.Truef(t, known[m.Provider], "model %s carries unknown provider tag %q", m.Id, m.Provider)
		assert.NotEmpty(t, m.ModelName, "model %s has no wire name", m.Id)
		assert.Positive(t, m.MaxTokens, "model %s has no token ceiling", m.Id)
	}
}
