package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var b bytes.Buffer
	PrintBuildData(&b)
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", b.String())
}

func TestPrintBuildData_Injected(t *testing.T) {
	old := [3]string{buildVersion, buildDate, buildCommit}
	t.Cleanup(func() { buildVersion, buildDate, buildCommit = old[0], old[1], old[2] })

	buildVersion, buildDate, buildCommit = "v1.2.3", "2025-01-01", "abc123"

	var b bytes.Buffer
	PrintBuildData(&b)
	assert.Equal(t, "Build version: v1.2.3\nBuild date: 2025-01-01\nBuild commit: abc123\n", b.String())
	assert.Equal(t, "v1.2.3", Version())
}
