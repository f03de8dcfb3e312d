package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	old := SetTTY(false)
	defer SetTTY(old)

	var buf bytes.Buffer
	PrintTable(&buf, []string{"Option", "Value"}, []string{
		"{{_Var_}}enabled_path{{|-|}}", "/var/lib/kytos/napps",
		"install_path", "/var/lib/kytos/napps/.installed",
	}, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "+--------------+---------------------------------+", lines[0])
	assert.Equal(t, "| Option       | Value                           |", lines[1])
	assert.Equal(t, "| enabled_path | /var/lib/kytos/napps            |", lines[3])
	assert.Equal(t, lines[0], lines[5])
}

func TestPrintTableNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil, []string{"a"}, true)
	assert.Empty(t, buf.String())
}
