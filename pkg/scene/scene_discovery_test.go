package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"ct-head", "Ct Head"},
		{"two_spheres", "Two Spheres"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name            string
		content         string
		wantDisplayName string
		wantDescription string
	}{
		{
			name:            "named.json",
			content:         `{"name": "Head Scan", "description": "CT head with bone bands"}`,
			wantDisplayName: "Head Scan",
			wantDescription: "CT head with bone bands",
		},
		{
			name:            "no-metadata.json",
			content:         `{"shapes": []}`,
			wantDisplayName: "No Metadata", // From filename
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			if result.DisplayName != tc.wantDisplayName {
				t.Errorf("DisplayName = %q, want %q", result.DisplayName, tc.wantDisplayName)
			}
			if result.Description != tc.wantDescription {
				t.Errorf("Description = %q, want %q", result.Description, tc.wantDescription)
			}
			if result.Type != "json" || result.FilePath != path || result.ID != path {
				t.Errorf("Unexpected identity fields: %+v", result)
			}
		})
	}
}

func TestListJSONScenes(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.json":      `{"name": "Bravo"}`,
		"a.json":      `{"name": "Alpha"}`,
		"broken.json": `{not json`,
		"notes.txt":   `ignored`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	scenes, err := ListJSONScenes(dir)
	if err != nil {
		t.Fatalf("ListJSONScenes() error: %v", err)
	}

	// The broken file is skipped with a warning
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d: %+v", len(scenes), scenes)
	}
	if scenes[0].DisplayName != "Alpha" || scenes[1].DisplayName != "Bravo" {
		t.Errorf("Expected scenes sorted by display name, got %q, %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}
}

func TestListJSONScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListJSONScenes(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Errorf("ListJSONScenes() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	scenes, err := ListAllScenes(t.TempDir())
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	expected := []string{"default", "sphere", "volume"}
	if len(scenes) != len(expected) {
		t.Fatalf("Scene count = %d, want %d", len(scenes), len(expected))
	}
	for i, id := range expected {
		if scenes[i].ID != id || scenes[i].Type != "builtin" {
			t.Errorf("Scene %d = %+v, want builtin %q", i, scenes[i], id)
		}
	}
}

func TestLoad(t *testing.T) {
	for _, info := range ListBuiltinScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Load(info.ID)
			if err != nil {
				t.Fatalf("Load(%q) error: %v", info.ID, err)
			}
			if s.Camera == nil {
				t.Error("Expected a camera")
			}
			if len(s.Shapes) == 0 || len(s.Lights) == 0 {
				t.Errorf("Expected shapes and lights, got %d and %d", len(s.Shapes), len(s.Lights))
			}
		})
	}

	if _, err := Load("no-such-scene"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
