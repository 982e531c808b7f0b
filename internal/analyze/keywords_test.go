package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords_FrequencyOrder(t *testing.T) {
	desc := "Go Go Go engineer engineer remote"

	got := Keywords(desc)

	assert.Equal(t, []string{"go", "engineer", "remote"}, got)
}

func TestKeywords_TiesKeepFirstOccurrenceOrder(t *testing.T) {
	desc := "kubernetes docker kubernetes docker terraform"

	got := Keywords(desc)

	assert.Equal(t, []string{"kubernetes", "docker", "terraform"}, got)
}

func TestKeywords_Deterministic(t *testing.T) {
	desc := `We are looking for a senior backend engineer with strong Go
	experience. The engineer will design distributed systems, own services
	end to end, and mentor other engineers. Experience with Postgres,
	RabbitMQ and Kubernetes is a plus. Remote friendly.`

	first := Keywords(desc)
	second := Keywords(desc)

	assert.Equal(t, first, second)
}

func TestKeywords_LowercasesAndDedupes(t *testing.T) {
	got := Keywords("React react REACT node")

	assert.Equal(t, []string{"react", "node"}, got)
}

func TestKeywords_Empty(t *testing.T) {
	assert.Empty(t, Keywords(""))
	assert.Empty(t, Keywords("  \n\t "))
}

func TestTop_Limits(t *testing.T) {
	desc := "one two three four five"

	assert.Len(t, Top(desc, 3), 3)
	assert.Len(t, Top(desc, 10), 5)
}
