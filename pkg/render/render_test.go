package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/marmos91/procmount/pkg/mntopt"
	"github.com/marmos91/procmount/pkg/mountinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleEntries(t *testing.T) []mountinfo.MountEntry {
	t.Helper()

	entries, err := mountinfo.ParseAll(strings.NewReader(
		"21 26 0:20 / /sys rw,nosuid shared:7 - sysfs sysfs rw\n" +
			"26 0 8:2 / / rw,relatime - ext4 /dev/sda2 rw,data=ordered\n"))
	require.NoError(t, err)
	return entries
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	err := NewTable(true).Render(&buf, sampleEntries(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "MOUNT POINT")
	assert.Contains(t, lines[1], "rw,nosuid")
	assert.Contains(t, lines[2], "/dev/sda2")
}

func TestTable_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	err := NewTable(false).Render(&buf, sampleEntries(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewJSON(false).Render(&buf, sampleEntries(t))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, float64(21), decoded[0]["mount_id"])
	// options serialize as their canonical tokens
	assert.Equal(t, []any{"rw", "nosuid"}, decoded[0]["mount_opts"])
}

func TestJSON_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	err := NewJSON(false).Render(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	err := NewYAML().Render(&buf, sampleEntries(t))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "ext4", decoded[1]["fstype"])
}

func TestJoinUsedForSuperOpts(t *testing.T) {
	assert.Equal(t, "rw,data=ordered", mntopt.Join(sampleEntries(t)[1].SuperOpts))
}
