package surveyhub_test

import (
	"testing"

	"github.com/lexuandaibn123/surveyhub"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	surveyhub.GitCommit = ""
	assert.Equal(t, "v0.1.0-dev", surveyhub.Version())

	surveyhub.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0-dev 12345678", surveyhub.Version())
	surveyhub.GitCommit = ""
}
