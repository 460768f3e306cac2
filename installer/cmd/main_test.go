package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/byte4ever/scaffolder/manifest"
)

func TestApplyDelimiterOverrides_both_given(t *testing.T) {
	t.Parallel()

	de := manifest.Definition{
		StartTag: "{{{",
		EndTag:   "}}}",
	}

	de = applyDelimiterOverrides(de, "<%", "%>")

	assert.Equal(t, "<%", de.StartTag)
	assert.Equal(t, "%>", de.EndTag)
}

func TestApplyDelimiterOverrides_start_only(t *testing.T) {
	t.Parallel()

	de := manifest.Definition{
		StartTag: "{{{",
		EndTag:   "}}}",
	}

	de = applyDelimiterOverrides(de, "<%", "")

	assert.Equal(t, "<%", de.StartTag)
	// The definition's end delimiter survives.
	assert.Equal(t, "}}}", de.EndTag)
}

func TestApplyDelimiterOverrides_end_only(t *testing.T) {
	t.Parallel()

	de := manifest.Definition{
		StartTag: "{{{",
		EndTag:   "}}}",
	}

	de = applyDelimiterOverrides(de, "", "%>")

	assert.Equal(t, "{{{", de.StartTag)
	assert.Equal(t, "%>", de.EndTag)
}

func TestApplyDelimiterOverrides_none_given(t *testing.T) {
	t.Parallel()

	de := manifest.Definition{
		StartTag: "<%",
		EndTag:   "%>",
	}

	de = applyDelimiterOverrides(de, "", "")

	assert.Equal(t, "<%", de.StartTag)
	assert.Equal(t, "%>", de.EndTag)
}
