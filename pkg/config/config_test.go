package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	assert.Equal(t, "lancedb-mcp-server", cfg.Name)
	assert.Equal(t, "lancedb/lancedb-mcp-server", cfg.Repo)
	assert.Equal(t, "https://github.com", cfg.ReleaseHost)
	assert.Equal(t, PackagedVersion, cfg.Version)
	assert.Empty(t, cfg.BinDir)
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Name:    "custom-server",
		Version: "9.9.9",
	}
	cfg.SetDefaults()

	assert.Equal(t, "custom-server", cfg.Name)
	assert.Equal(t, "9.9.9", cfg.Version)
	assert.Equal(t, "lancedb/lancedb-mcp-server", cfg.Repo)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "full config",
			content: `name: my-server
repo: me/my-server
release_host: https://releases.example.com
version: 2.0.0
bin_dir: /opt/bin
`,
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "my-server", cfg.Name)
				assert.Equal(t, "me/my-server", cfg.Repo)
				assert.Equal(t, "https://releases.example.com", cfg.ReleaseHost)
				assert.Equal(t, "2.0.0", cfg.Version)
				assert.Equal(t, "/opt/bin", cfg.BinDir)
			},
		},
		{
			name:    "partial config gets defaults",
			content: "version: 3.1.4\n",
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "3.1.4", cfg.Version)
				assert.Equal(t, "lancedb-mcp-server", cfg.Name)
			},
		},
		{
			name:    "invalid yaml",
			content: "version: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	t.Run("config in current directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".config"), 0o755))
		configPath := filepath.Join(root, ".config", "lancedb-mcp.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("version: 4.0.0\n"), 0o644))
		t.Chdir(root)

		got, err := Discover()
		require.NoError(t, err)
		assert.Equal(t, configPath, got)
	})

	t.Run("config in an ancestor directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".config"), 0o755))
		configPath := filepath.Join(root, ".config", "lancedb-mcp.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("version: 4.0.0\n"), 0o644))

		deep := filepath.Join(root, "work", "deep")
		require.NoError(t, os.MkdirAll(deep, 0o755))
		t.Chdir(deep)

		got, err := Discover()
		require.NoError(t, err)
		assert.Equal(t, configPath, got)
	})

	t.Run("no config anywhere", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := Discover()
		assert.Error(t, err)
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("no config falls back to packaged defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := LoadOrDefault("")
		require.NoError(t, err)
		assert.Equal(t, "lancedb-mcp-server", cfg.Name)
		assert.Equal(t, PackagedVersion, cfg.Version)
	})

	t.Run("discovered parent config wins over defaults", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".config"), 0o755))
		configPath := filepath.Join(root, ".config", "lancedb-mcp.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("version: 4.0.0\n"), 0o644))

		deep := filepath.Join(root, "work", "deep")
		require.NoError(t, os.MkdirAll(deep, 0o755))
		t.Chdir(deep)

		cfg, err := LoadOrDefault("")
		require.NoError(t, err)
		assert.Equal(t, "4.0.0", cfg.Version)
	})
}
