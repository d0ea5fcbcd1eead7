package cibot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperpolymath/aletheia/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestParsePlatform tests platform name parsing.
func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input string
		want  schema.CIPlatform
		ok    bool
	}{
		{input: "github", want: schema.GitHubActionsPlatform, ok: true},
		{input: "gitlab", want: schema.GitLabCIPlatform, ok: true},
		{input: "circle", want: schema.CircleCIPlatform, ok: true},
		{input: "jenkins", want: schema.JenkinsPlatform, ok: true},
		{input: "azure", want: schema.UnknownPlatform, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParsePlatform(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestConfigPath tests conventional config locations.
func TestConfigPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".github", "workflows", "rsr.yml"), ConfigPath(schema.GitHubActionsPlatform))
	assert.Equal(t, ".gitlab-ci.yml", ConfigPath(schema.GitLabCIPlatform))
	assert.Equal(t, "Jenkinsfile", ConfigPath(schema.JenkinsPlatform))
	assert.Equal(t, "", ConfigPath(schema.UnknownPlatform))
}

// TestGeneratePipeline tests that generated configs parse and invoke the
// tool.
func TestGeneratePipeline(t *testing.T) {
	opts := PipelineOptions{Level: schema.LevelBronze, ProjectName: "myproject"}

	yamlPlatforms := []schema.CIPlatform{
		schema.GitHubActionsPlatform,
		schema.GitLabCIPlatform,
		schema.CircleCIPlatform,
	}
	for _, platform := range yamlPlatforms {
		t.Run(string(platform), func(t *testing.T) {
			opts.Platform = platform
			content := GeneratePipeline(opts)

			assert.Contains(t, content, "myproject")
			assert.Contains(t, content, schema.ToolName)

			var doc map[string]any
			assert.NoError(t, yaml.Unmarshal([]byte(content), &doc))
		})
	}

	t.Run("jenkins", func(t *testing.T) {
		opts.Platform = schema.JenkinsPlatform
		content := GeneratePipeline(opts)
		assert.Contains(t, content, "pipeline {")
		assert.Contains(t, content, schema.ToolName)
	})

	t.Run("default project name", func(t *testing.T) {
		content := GeneratePipeline(PipelineOptions{
			Platform: schema.GitHubActionsPlatform,
			Level:    schema.LevelBronze,
		})
		assert.Contains(t, content, "project")
	})

	t.Run("unknown platform", func(t *testing.T) {
		assert.Empty(t, GeneratePipeline(PipelineOptions{Platform: schema.UnknownPlatform}))
	})
}

// writeConfig writes a pipeline config at its conventional location.
func writeConfig(t *testing.T, root string, platform schema.CIPlatform, content string) {
	t.Helper()
	path := filepath.Join(root, ConfigPath(platform))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestValidatePipeline tests validation outcomes across config states.
func TestValidatePipeline(t *testing.T) {
	t.Run("no config found", func(t *testing.T) {
		result := ValidatePipeline(t.TempDir())
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "no recognizable pipeline configuration")
	})

	t.Run("generated github config is valid", func(t *testing.T) {
		root := t.TempDir()
		content := GeneratePipeline(PipelineOptions{
			Platform: schema.GitHubActionsPlatform,
			Level:    schema.LevelBronze,
		})
		writeConfig(t, root, schema.GitHubActionsPlatform, content)

		result := ValidatePipeline(root)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, schema.GitHubActionsPlatform, "jobs: [unclosed")

		result := ValidatePipeline(root)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "invalid YAML")
	})

	t.Run("workflow without jobs", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, schema.GitHubActionsPlatform, "name: empty\n")

		result := ValidatePipeline(root)
		assert.False(t, result.Valid)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0], "no jobs")
	})

	t.Run("pipeline missing tool invocation", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, schema.GitLabCIPlatform, "lint:\n  stage: test\n  script:\n    - true\n")

		result := ValidatePipeline(root)
		assert.True(t, result.Valid)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "does not invoke aletheia")
	})

	t.Run("gitlab job without test stage", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, schema.GitLabCIPlatform, "deploy:\n  stage: deploy\n  script:\n    - aletheia check .\n")

		result := ValidatePipeline(root)
		assert.True(t, result.Valid)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "test stage")
	})
}

// TestHasTestStageJob tests GitLab stage defaulting.
func TestHasTestStageJob(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want bool
	}{
		{
			name: "explicit test stage",
			doc:  map[string]any{"verify": map[string]any{"stage": "test"}},
			want: true,
		},
		{
			name: "implicit default stage",
			doc:  map[string]any{"verify": map[string]any{"script": []any{"true"}}},
			want: true,
		},
		{
			name: "only deploy stage",
			doc:  map[string]any{"ship": map[string]any{"stage": "deploy"}},
			want: false,
		},
		{
			name: "keywords and templates ignored",
			doc: map[string]any{
				"stages":  []any{"test"},
				".hidden": map[string]any{"script": []any{"true"}},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasTestStageJob(tt.doc))
		})
	}
}
