// Package content holds the landing page copy: navigation, hero, feature and
// use-case cards, pricing tiers, dial codes and footer links. It is loaded
// once from the embedded content.yaml.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

var Module = fx.Module("content",
	fx.Provide(Load),
)

//go:embed content.yaml
var raw []byte

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

type Hero struct {
	Badge        string   `yaml:"badge"`
	Headline     string   `yaml:"headline"`
	Highlight    string   `yaml:"highlight"`
	Subheadline  string   `yaml:"subheadline"`
	Video        string   `yaml:"video"`
	PrimaryCTA   string   `yaml:"primary_cta"`
	SecondaryCTA string   `yaml:"secondary_cta"`
	TrustCaption string   `yaml:"trust_caption"`
	TrustLogos   []string `yaml:"trust_logos"`
}

// Card is a feature or use-case tile. Icon is an iconify name like "lucide--brain".
type Card struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Section struct {
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	Diagram    string `yaml:"diagram"`
	DiagramAlt string `yaml:"diagram_alt"`
	Items      []Card `yaml:"items"`
}

type Tier struct {
	Name        string   `yaml:"name"`
	Icon        string   `yaml:"icon"`
	Price       string   `yaml:"price"`
	Unit        string   `yaml:"unit"`
	Description string   `yaml:"description"`
	Minimum     string   `yaml:"minimum"`
	Popular     bool     `yaml:"popular"`
	Features    []string `yaml:"features"`
	CTA         string   `yaml:"cta"`
}

type Pricing struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Note     string `yaml:"note"`
	Tiers    []Tier `yaml:"tiers"`
}

type CTA struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Consent  string `yaml:"consent"`
}

// DialCode is a selectable country calling code.
type DialCode struct {
	Country string `yaml:"country"`
	Label   string `yaml:"label"`
	Prefix  string `yaml:"prefix"`
}

// Option is the text shown in the dial-code select, e.g. "US +1".
func (d DialCode) Option() string {
	return d.Country + " " + d.Prefix
}

type FooterColumn struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

type Footer struct {
	Tagline string         `yaml:"tagline"`
	Company string         `yaml:"company"`
	Columns []FooterColumn `yaml:"columns"`
}

// Catalog is the whole page copy.
type Catalog struct {
	Meta      Meta       `yaml:"meta"`
	Nav       []Link     `yaml:"nav"`
	Hero      Hero       `yaml:"hero"`
	Features  Section    `yaml:"features"`
	UseCases  Section    `yaml:"use_cases"`
	Pricing   Pricing    `yaml:"pricing"`
	CTA       CTA        `yaml:"cta"`
	DialCodes []DialCode `yaml:"dial_codes"`
	Footer    Footer     `yaml:"footer"`
}

// HasDialCode reports whether prefix is one of the selectable dial codes.
func (c *Catalog) HasDialCode(prefix string) bool {
	for _, d := range c.DialCodes {
		if d.Prefix == prefix {
			return true
		}
	}
	return false
}

// Parse decodes and checks a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	if c.Meta.Title == "" {
		errs = append(errs, errors.New("meta.title is empty"))
	}
	if len(c.Features.Items) == 0 {
		errs = append(errs, errors.New("features.items is empty"))
	}
	if len(c.UseCases.Items) == 0 {
		errs = append(errs, errors.New("use_cases.items is empty"))
	}
	popular := 0
	for _, t := range c.Pricing.Tiers {
		if t.Popular {
			popular++
		}
	}
	if popular > 1 {
		errs = append(errs, fmt.Errorf("pricing: %d tiers marked popular", popular))
	}
	if len(c.DialCodes) == 0 {
		errs = append(errs, errors.New("dial_codes is empty"))
	}
	for _, d := range c.DialCodes {
		if !strings.HasPrefix(d.Prefix, "+") {
			errs = append(errs, fmt.Errorf("dial code %s: prefix %q must start with +", d.Country, d.Prefix))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}

var (
	loadOnce sync.Once
	catalog  *Catalog
	loadErr  error
)

// Load returns the embedded catalog, parsed once.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		catalog, loadErr = Parse(raw)
	})
	return catalog, loadErr
}
