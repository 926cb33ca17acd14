package config

import (
	"os"
	"path/filepath"
	"testing"
)

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func TestLoadApplicationConfigurationReadsExplicitFile(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		fileName      string
		body          string
		expectFormat  string
		expectShowAll *bool
		expectError   bool
	}{
		{
			name:          "yaml_file",
			fileName:      "custom.yaml",
			body:          "show_all: true\nformat: JSON\n",
			expectFormat:  "json",
			expectShowAll: boolPointer(true),
		},
		{
			name:          "toml_file",
			fileName:      "custom.toml",
			body:          "show_all = false\n",
			expectShowAll: boolPointer(false),
		},
		{
			name:         "unknown_extension_read_as_yaml",
			fileName:     "lsdirrc",
			body:         "format: xml\n",
			expectFormat: "xml",
		},
		{
			name:        "unsupported_format",
			fileName:    "custom.yaml",
			body:        "format: yaml\n",
			expectError: true,
		},
		{
			name:        "malformed_file",
			fileName:    "custom.yaml",
			body:        "show_all: [unterminated\n",
			expectError: true,
		},
		{
			name:        "missing_file",
			fileName:    "absent.yaml",
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			workingDir := t.TempDir()
			if testCase.body != "" {
				target := filepath.Join(workingDir, testCase.fileName)
				if err := os.WriteFile(target, []byte(testCase.body), 0o600); err != nil {
					t.Fatalf("write config: %v", err)
				}
			}

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDir,
				ExplicitFilePath: testCase.fileName,
			})
			if testCase.expectError {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}
			if loadedConfig.Format != testCase.expectFormat {
				t.Fatalf("expected format %q, got %q", testCase.expectFormat, loadedConfig.Format)
			}
			if testCase.expectShowAll == nil {
				if loadedConfig.ShowAll != nil {
					t.Fatalf("expected no show_all value")
				}
			} else if loadedConfig.ShowAll == nil || *loadedConfig.ShowAll != *testCase.expectShowAll {
				t.Fatalf("unexpected show_all value")
			}
		})
	}
}

func TestLoadApplicationConfigurationIgnoresFilesWithoutExplicitPath(t *testing.T) {
	homeDir := t.TempDir()
	workingDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("USERPROFILE", homeDir)
	for _, path := range []string{
		filepath.Join(homeDir, ".lsdir", "config.yaml"),
		filepath.Join(workingDir, ".lsdir.yaml"),
	} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("show_all: [unterminated\n"), 0o600); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	loadedConfig, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir})
	if err != nil {
		t.Fatalf("expected no file to be read, got %v", err)
	}
	if loadedConfig.ShowAll != nil || loadedConfig.Format != "" {
		t.Fatalf("expected empty configuration, got %+v", loadedConfig)
	}
}

func TestLoadApplicationConfigurationRejectsDirectory(t *testing.T) {
	t.Parallel()
	workingDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(workingDir, "conf.yaml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir, ExplicitFilePath: "conf.yaml"}); err == nil {
		t.Fatalf("expected an error for a directory in place of the configuration file")
	}
}

func TestApplicationConfigurationDefaults(t *testing.T) {
	t.Parallel()
	var empty ApplicationConfiguration
	if !empty.ShowAllOrDefault(true) || empty.ShowAllOrDefault(false) {
		t.Fatalf("expected fallback for unset show_all")
	}
	if empty.FormatOrDefault("raw") != "raw" {
		t.Fatalf("expected fallback for unset format")
	}
	configured := ApplicationConfiguration{ShowAll: boolPointer(false), Format: "xml"}
	if configured.ShowAllOrDefault(true) {
		t.Fatalf("expected configured show_all to win")
	}
	if configured.FormatOrDefault("raw") != "xml" {
		t.Fatalf("expected configured format to win")
	}
}
