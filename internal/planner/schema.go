package planner

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
	"gopkg.in/yaml.v3"
)

// CatalogSchema is the top-level structure of catalog.yaml.
type CatalogSchema struct {
	Clinical    SectionSchema `yaml:"clinical"`
	Performance SectionSchema `yaml:"performance"`
}

// SectionSchema groups the templates served by one builder.
type SectionSchema struct {
	Summary   string                  `yaml:"summary"`
	Cue       *Line                   `yaml:"cue,omitempty"`
	Session   SessionSchema           `yaml:"session"`
	Templates map[string]PlanTemplate `yaml:"templates"`
}

type SessionSchema struct {
	// Title may contain a {volume} placeholder.
	Title   string `yaml:"title"`
	Volume  Line   `yaml:"volume"`
	Bullets []Line `yaml:"bullets"`
}

type PlanTemplate struct {
	Headline  string          `yaml:"headline"`
	Phases    []PhaseTemplate `yaml:"phases"`
	Education *BlockTemplate  `yaml:"education,omitempty"`
}

type PhaseTemplate struct {
	Title   string `yaml:"title"`
	Bullets []Line `yaml:"bullets"`
	// Cue appends the section's readiness cue as the last bullet.
	Cue bool `yaml:"cue,omitempty"`
}

type BlockTemplate struct {
	Title   string   `yaml:"title"`
	Bullets []string `yaml:"bullets"`
}

// Line is a bullet whose text is either fixed or chosen by readiness band.
type Line struct {
	Text    string
	ByBand  map[domain.Band]string
	Default string
	variant bool
}

// Fixed returns a band-independent line.
func Fixed(text string) Line {
	return Line{Text: text}
}

func (l *Line) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = Line{}
		return node.Decode(&l.Text)
	case yaml.MappingNode:
		var raw map[string]string
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		out := Line{ByBand: make(map[domain.Band]string), variant: true}
		for k, v := range raw {
			if strings.EqualFold(k, "default") {
				out.Default = v
				continue
			}
			band, ok := bandKey(k)
			if !ok {
				return fmt.Errorf("line %d: unknown band %q", node.Line, k)
			}
			out.ByBand[band] = v
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("line %d: expected text or band mapping", node.Line)
	}
}

// Variant reports whether the line changes with the readiness band.
func (l Line) Variant() bool {
	return l.variant
}

// Resolve returns the text for the given band.
func (l Line) Resolve(band domain.Band) string {
	if !l.variant {
		return l.Text
	}
	if v, ok := l.ByBand[band]; ok {
		return v
	}
	return l.Default
}

// Complete reports whether every band resolves to non-empty text.
func (l Line) Complete() bool {
	for _, b := range domain.Bands {
		if l.Resolve(b) == "" {
			return false
		}
	}
	return true
}

func bandKey(k string) (domain.Band, bool) {
	for _, b := range domain.Bands {
		if strings.EqualFold(string(b), k) {
			return b, true
		}
	}
	return "", false
}
