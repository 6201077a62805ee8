package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doppler-mosaic/workspace/internal/config"
	"doppler-mosaic/workspace/internal/layout"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatal(err)
		}
	})
}

func testConfig(subreddit string, dimensions int) *config.Config {
	return &config.Config{Subreddit: subreddit, Dimensions: dimensions}
}

func TestProvisionEndToEnd(t *testing.T) {
	chdir(t, t.TempDir())

	ws, err := Provision(testConfig("dankmemes", 4))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("reddit_data", "dankmemes"), ws.Layout.WorkingDir)
	assert.Equal(t, filepath.Join("reddit_data", "dankmemes", "media"), ws.Layout.MediaDir)
	assert.Equal(t, []string{"conv_0", "conv_1", "conv_2", "conv_3"}, ws.Columns)
	assert.Equal(t, []string{"NOHASH", "0000000000000000", "nan"}, ws.NullHashes)

	for _, dir := range []string{
		filepath.Join("reddit_data", "dankmemes"),
		filepath.Join("reddit_data", "dankmemes", "media"),
		"ouput",
		filepath.Join("reddit_data", "dankmemes", "mosaics"),
	} {
		st, err := os.Stat(dir)
		require.NoError(t, err, "expected %q to exist", dir)
		assert.True(t, st.IsDir())
	}
}

func TestProvisionIdempotent(t *testing.T) {
	chdir(t, t.TempDir())
	cfg := testConfig("dankmemes", 4)

	first, err := Provision(cfg)
	require.NoError(t, err)

	second, err := Provision(cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDescribeHasNoSideEffects(t *testing.T) {
	chdir(t, t.TempDir())

	ws, err := Describe(testConfig("dankmemes", 4))
	require.NoError(t, err)
	require.NotNil(t, ws)

	_, err = os.Stat("reddit_data")
	assert.True(t, os.IsNotExist(err), "Describe must not create directories")
	_, err = os.Stat("ouput")
	assert.True(t, os.IsNotExist(err), "Describe must not create directories")
}

func TestProvisionRejectsInvalidConfig(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr error
	}{
		{"empty subreddit", testConfig("", 2048), nil},
		{"zero dimensions", testConfig("dankmemes", 0), config.ErrInvalidDimensions},
		{"negative dimensions", testConfig("dankmemes", -1), config.ErrInvalidDimensions},
		{"separator in subreddit", testConfig("a/b", 2048), layout.ErrInvalidIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Provision(tt.cfg)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
