package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(`{"a": 1}`))
	assert.Equal(t, `[]`, CleanJSONBlock("  []  "))
}
