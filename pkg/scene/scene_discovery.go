package scene

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrUnknownScene is returned by Load for a name that is neither built in nor a file
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Load
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the description (json type only)
}

type builtin struct {
	info SceneInfo
	new  func() *Scene
}

var builtins = []builtin{
	{
		info: SceneInfo{ID: "default", DisplayName: "Default Scene", Description: "Three ellipsoids on a ground plane", Type: "builtin"},
		new:  NewDefaultScene,
	},
	{
		info: SceneInfo{ID: "sphere", DisplayName: "Sphere", Description: "Unit sphere seen from above", Type: "builtin"},
		new:  NewSphereScene,
	},
	{
		info: SceneInfo{ID: "volume", DisplayName: "Volume", Description: "Procedural density cube with a band colour map", Type: "builtin"},
		new:  NewVolumeScene,
	},
}

// Load returns the built-in scene with the given id, or loads name as a JSON
// scene description file.
func Load(name string) (*Scene, error) {
	if b, ok := lo.Find(builtins, func(b builtin) bool { return b.info.ID == name }); ok {
		return b.new(), nil
	}

	if _, err := os.Stat(name); err != nil {
		return nil, errors.Wrapf(ErrUnknownScene, "%q", name)
	}
	return LoadFile(name)
}

// ListBuiltinScenes returns the built-in scenes in registration order
func ListBuiltinScenes() []SceneInfo {
	return lo.Map(builtins, func(b builtin, _ int) SceneInfo { return b.info })
}

// ListJSONScenes scans dir for *.json scene descriptions, sorted by display name.
// A missing directory yields an empty list.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan scenes directory")
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			logger.Warningf("failed to parse metadata for %s: %v", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a JSON scene file.
// The display name falls back to the file name.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          filePath,
		DisplayName: titleCase(nameWithoutExt),
		Type:        "json",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info, err
	}

	if header.Name != "" {
		info.DisplayName = header.Name
	}
	info.Description = header.Description

	return info, nil
}

// ListAllScenes returns the built-in scenes followed by the JSON scenes in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list JSON scenes")
	}
	return append(ListBuiltinScenes(), jsonScenes...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "ct-head" -> "Ct Head"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
