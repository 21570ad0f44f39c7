// Package menu supplies the plugin and general link groups of the navigation panel.
package menu

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
)

var _ navpanel.LinkSource = (*Provider)(nil)

type fileConfig struct {
	Plugins []linkConfig `yaml:"plugins"`
	General []linkConfig `yaml:"general"`
}

type linkConfig struct {
	To                 string           `yaml:"to"`
	Icon               string           `yaml:"icon"`
	Label              navpanel.Message `yaml:"label"`
	NotificationsCount *int             `yaml:"notifications_count"`
}

// Provider holds validated link groups. Callers receive copies.
type Provider struct {
	plugins []navpanel.NavLinkEntry
	general []navpanel.NavLinkEntry
}

// Load reads the link groups from path, or returns the defaults when path is empty.
func Load(path string) (*Provider, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read menu file %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "menu file %s", path)
	}
	return p, nil
}

func Parse(data []byte) (*Provider, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode menu yaml")
	}
	plugins, err := convert("plugins", cfg.Plugins)
	if err != nil {
		return nil, err
	}
	general, err := convert("general", cfg.General)
	if err != nil {
		return nil, err
	}
	return &Provider{plugins: plugins, general: general}, nil
}

func convert(section string, links []linkConfig) ([]navpanel.NavLinkEntry, error) {
	entries := make([]navpanel.NavLinkEntry, 0, len(links))
	seen := make(map[string]struct{}, len(links))
	for i, l := range links {
		to := strings.TrimSpace(l.To)
		if !strings.HasPrefix(to, "/") {
			return nil, fmt.Errorf("%s[%d]: destination %q must be an absolute path", section, i, l.To)
		}
		if _, dup := seen[to]; dup {
			return nil, fmt.Errorf("%s[%d]: duplicate destination %q", section, i, to)
		}
		seen[to] = struct{}{}

		icon, ok := navpanel.ParseIcon(l.Icon)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: unknown icon %q", section, i, l.Icon)
		}
		if l.Label.DefaultMessage == "" {
			return nil, fmt.Errorf("%s[%d]: label default is required", section, i)
		}
		if l.NotificationsCount != nil && *l.NotificationsCount < 0 {
			return nil, fmt.Errorf("%s[%d]: notifications_count must not be negative", section, i)
		}

		entries = append(entries, navpanel.NavLinkEntry{
			To:                 to,
			Icon:               icon,
			IntlLabel:          l.Label,
			NotificationsCount: l.NotificationsCount,
		})
	}
	return entries, nil
}

func (p *Provider) PluginsSectionLinks() []navpanel.NavLinkEntry {
	return cloneEntries(p.plugins)
}

func (p *Provider) GeneralSectionLinks() []navpanel.NavLinkEntry {
	return cloneEntries(p.general)
}

// Label returns the label of the link that points at path.
func (p *Provider) Label(path string) (navpanel.Message, bool) {
	for _, group := range [][]navpanel.NavLinkEntry{p.plugins, p.general} {
		for _, e := range group {
			if e.To == path {
				return e.IntlLabel, true
			}
		}
	}
	return navpanel.Message{}, false
}

// Paths lists every destination of both groups, plugins first.
func (p *Provider) Paths() []string {
	paths := make([]string, 0, len(p.plugins)+len(p.general))
	for _, e := range p.plugins {
		paths = append(paths, e.To)
	}
	for _, e := range p.general {
		paths = append(paths, e.To)
	}
	return paths
}

func cloneEntries(in []navpanel.NavLinkEntry) []navpanel.NavLinkEntry {
	out := make([]navpanel.NavLinkEntry, len(in))
	for i, e := range in {
		if e.NotificationsCount != nil {
			n := *e.NotificationsCount
			e.NotificationsCount = &n
		}
		out[i] = e
	}
	return out
}
