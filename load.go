package hierarchy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// sceneDoc is the top-level structure of a scene file.
type sceneDoc struct {
	Roots []objectDoc `json:"roots" yaml:"roots"`
}

// objectDoc describes one object and its subtree.
type objectDoc struct {
	Name       string         `json:"name" yaml:"name"`
	Enabled    *bool          `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Components []componentDoc `json:"components,omitempty" yaml:"components,omitempty"`
	Children   []objectDoc    `json:"children,omitempty" yaml:"children,omitempty"`
}

// componentDoc describes a component. When Tween is set the component is a
// tween script and Type defaults to TweenComponentType.
type componentDoc struct {
	Type  string    `json:"type,omitempty" yaml:"type,omitempty"`
	Tween *tweenDoc `json:"tween,omitempty" yaml:"tween,omitempty"`
}

type tweenDoc struct {
	Type     string  `json:"type" yaml:"type"`
	Name     string  `json:"name" yaml:"name"`
	From     float32 `json:"from,omitempty" yaml:"from,omitempty"`
	To       float32 `json:"to,omitempty" yaml:"to,omitempty"`
	Duration float32 `json:"duration,omitempty" yaml:"duration,omitempty"`
	Easing   string  `json:"easing,omitempty" yaml:"easing,omitempty"`
}

// LoadScene parses a JSON scene document and builds a Scene from it.
//
//	{"roots": [{"name": "Camera", "components": [{"type": "Camera"}]}]}
func LoadScene(data []byte) (*Scene, error) {
	var doc sceneDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return buildScene(doc)
}

// LoadSceneYAML parses a YAML scene document with the same shape as the JSON
// form accepted by LoadScene.
func LoadSceneYAML(data []byte) (*Scene, error) {
	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return buildScene(doc)
}

// LoadSceneFile reads path and parses it as YAML when the extension is .yaml
// or .yml, and as JSON otherwise.
func LoadSceneFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadSceneYAML(data)
	default:
		return LoadScene(data)
	}
}

func buildScene(doc sceneDoc) (*Scene, error) {
	s := NewScene()
	for i := range doc.Roots {
		o, err := buildObject(&doc.Roots[i])
		if err != nil {
			return nil, fmt.Errorf("parse scene: root %d: %w", i, err)
		}
		s.AddRoot(o)
	}
	return s, nil
}

func buildObject(d *objectDoc) (*SceneObject, error) {
	o := NewSceneObject(d.Name)
	if d.Enabled != nil {
		o.Enabled = *d.Enabled
	}
	for i, cd := range d.Components {
		if err := addComponentDoc(o, cd); err != nil {
			return nil, fmt.Errorf("%q component %d: %w", d.Name, i, err)
		}
	}
	for i := range d.Children {
		child, err := buildObject(&d.Children[i])
		if err != nil {
			return nil, err
		}
		o.AddChild(child)
	}
	return o, nil
}

func addComponentDoc(o *SceneObject, cd componentDoc) error {
	if cd.Tween == nil {
		if cd.Type == "" {
			return fmt.Errorf("%w: missing type", ErrMalformedComponent)
		}
		o.AddComponent(NewComponent(cd.Type))
		return nil
	}

	td := cd.Tween
	if td.Type == "" || td.Name == "" {
		return fmt.Errorf("%w: tween needs both type and name", ErrMalformedComponent)
	}
	fn, err := EaseByName(td.Easing)
	if err != nil {
		return err
	}
	ts := NewTweenScript(td.Type, td.Name, td.From, td.To, td.Duration, fn)
	comp := ts.Component()
	if cd.Type != "" {
		comp.TypeName = cd.Type
	}
	o.AddComponent(comp)
	o.tweens = append(o.tweens, ts)
	return nil
}
