package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected *DriverProperties
		wantErr  bool
	}{
		{
			name:  "empty file uses defaults",
			input: "",
			expected: &DriverProperties{
				Capacity:      10,
				MaxNameLength: 32,
				Allocator:     AllocatorHeap,
				Mode:          ModeBoth,
				LogPath:       ".",
			},
		},
		{
			name: "all keys",
			input: strings.Join([]string{
				"# driver settings",
				"seed 1234",
				"Capacity 25",
				"maxnamelength 16",
				"allocator pool",
				"mode bytes",
				"loglevel debug",
				"logpath /tmp/dequeue",
				"filelog yes",
			}, "\n"),
			expected: &DriverProperties{
				Seed:          1234,
				Capacity:      25,
				MaxNameLength: 16,
				Allocator:     AllocatorPool,
				Mode:          ModeBytes,
				LogLevel:      "debug",
				LogPath:       "/tmp/dequeue",
				FileLog:       true,
			},
		},
		{
			name:  "indented comment and unknown key",
			input: "   # comment\nbogus 1\nmode typed\nfilelog no",
			expected: &DriverProperties{
				Capacity:      10,
				MaxNameLength: 32,
				Allocator:     AllocatorHeap,
				Mode:          ModeTyped,
				LogPath:       ".",
			},
		},
		{
			name:    "bad integer",
			input:   "capacity many",
			wantErr: true,
		},
		{
			name:    "unknown allocator",
			input:   "allocator arena",
			wantErr: true,
		},
		{
			name:    "unknown mode",
			input:   "mode sideways",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			props, err := parse(strings.NewReader(tc.input))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, props)
		})
	}
}

func TestSetUpConfig(t *testing.T) {
	previous := Properties
	t.Cleanup(func() { Properties = previous })

	path := filepath.Join(t.TempDir(), "dequeue.conf")
	require.NoError(t, os.WriteFile(path, []byte("capacity 3\nseed 9\n"), 0o644))

	require.NoError(t, SetUpConfig(path))
	assert.Equal(t, 3, Properties.Capacity)
	assert.Equal(t, 9, Properties.Seed)
	assert.Equal(t, path, Properties.CfPath)

	assert.Error(t, SetUpConfig(filepath.Join(t.TempDir(), "missing.conf")))
	assert.Equal(t, 3, Properties.Capacity)
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, 10, p.Capacity)
	assert.Equal(t, AllocatorHeap, p.Allocator)
	assert.Equal(t, ModeBoth, p.Mode)
}
