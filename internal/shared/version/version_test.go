package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "v1.2.3", Normalize("1.2.3"))
	assert.Equal(t, "v1.2.3", Normalize(" v1.2.3 "))
	assert.Equal(t, "", Normalize(""))
}

func TestString(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	Version = "dev"
	assert.Equal(t, "dev", String())

	Version = "1.4"
	assert.Equal(t, "v1.4.0", String())

	Version = "2.0.1+build.7"
	assert.Equal(t, "v2.0.1", String())
}
