package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDefaultsToTech(t *testing.T) {
	t.Parallel()

	cat := Classify("nothing in here matches xyzzy qwerty lorem")
	assert.Equal(t, "tech", cat.Slug)
	assert.Equal(t, 1, cat.ID)
}

func TestClassifySingleKeyword(t *testing.T) {
	t.Parallel()

	cat := Classify("anthropic published a long report yesterday")
	assert.Equal(t, "ai", cat.Slug)
}

func TestClassifyTieKeepsEnumerationOrder(t *testing.T) {
	t.Parallel()

	// one tech keyword, one ai keyword: tech comes first in the fixed order
	cat := Classify("docker meets anthropic")
	assert.Equal(t, "tech", cat.Slug)
}

func TestClassifyHighestScoreWins(t *testing.T) {
	t.Parallel()

	cat := Classify("docker and chatgpt and claude and openai walk into a bar")
	assert.Equal(t, "ai", cat.Slug)

	cat = Classify("figma wireframe typography and one mention of python")
	assert.Equal(t, "design", cat.Slug)
}

func TestClassifyWholeWordsOnly(t *testing.T) {
	t.Parallel()

	// "ai" must not match inside other words
	cat := Classify("the braindump maintains plaintiff")
	assert.Equal(t, "tech", cat.Slug)
}

func TestClassifyPhrases(t *testing.T) {
	t.Parallel()

	cat := Classify("a primer on natural language processing for beginners")
	assert.Equal(t, "ai", cat.Slug)
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Classify("KUBERNETES"), Classify("kubernetes"))
}

func TestCategoriesTable(t *testing.T) {
	t.Parallel()

	cats := Categories()
	assert.Len(t, cats, 4)
	assert.Equal(t, []string{"tech", "ai", "marketing", "design"},
		[]string{cats[0].Slug, cats[1].Slug, cats[2].Slug, cats[3].Slug})

	tech, found := Lookup("TECH")
	assert.True(t, found)
	assert.Equal(t, "IT/TECH", tech.Name)
	assert.Equal(t, "#3B82F6", tech.Color)

	_, found = Lookup("sports")
	assert.False(t, found)
}
