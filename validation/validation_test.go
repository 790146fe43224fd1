package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFieldsAllPresent(t *testing.T) {
	rec := Record{
		"title":       "Neon city",
		"description": "A cyberpunk skyline",
	}

	missing := MissingFields(rec, []string{"title", "description"})
	assert.Empty(t, missing)
}

func TestMissingFieldsReportsAllViolationsTogether(t *testing.T) {
	rec := Record{
		"title":       "Neon city",
		"description": "   ",
	}

	missing := MissingFields(rec, []string{"title", "description", "promptText", "aiModel"})
	assert.ElementsMatch(t, []string{"description", "promptText", "aiModel"}, missing)
}

func TestMissingFieldsWhitespaceOnlyCountsAsEmpty(t *testing.T) {
	rec := Record{"excerpt": "\t\n "}

	missing := MissingFields(rec, []string{"excerpt"})
	assert.Equal(t, []string{"excerpt"}, missing)
}

func TestMissingFieldsDoesNotMutateInput(t *testing.T) {
	rec := Record{"title": "  padded  "}

	_ = MissingFields(rec, []string{"title"})
	assert.Equal(t, "  padded  ", rec["title"])
}

func TestMissingFieldsPreservesRequestedOrder(t *testing.T) {
	missing := MissingFields(Record{}, []string{"b", "a", "c"})
	assert.Equal(t, []string{"b", "a", "c"}, missing)
}
