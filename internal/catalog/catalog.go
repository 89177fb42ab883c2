package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrRoleNotFound is returned when a requested role is not part of the catalog.
var ErrRoleNotFound = errors.New("role not found in catalog")

// RoleProfile describes the requirements associated with a single job role.
// Profiles are immutable after the catalog is loaded.
type RoleProfile struct {
	Name           string   `yaml:"name" json:"name"`
	Skills         []string `yaml:"skills" json:"skills"`
	Tools          []string `yaml:"tools" json:"tools"`
	Certifications []string `yaml:"certifications" json:"certifications"`
}

// RequirementText joins skills, tools and certifications into a single string,
// used as the reference text for semantic scoring and role indexing.
func (p RoleProfile) RequirementText() string {
	text := ""
	for _, items := range [][]string{p.Skills, p.Tools, p.Certifications} {
		for _, item := range items {
			if text != "" {
				text += " "
			}
			text += item
		}
	}
	return text
}

// Catalog is a closed set of role profiles, loaded once at process start.
type Catalog struct {
	profiles map[string]RoleProfile
	names    []string
}

// New builds a catalog from the given profiles. Later profiles with a
// duplicate name replace earlier ones.
func New(profiles []RoleProfile) *Catalog {
	c := &Catalog{profiles: make(map[string]RoleProfile, len(profiles))}
	for _, p := range profiles {
		if _, exists := c.profiles[p.Name]; !exists {
			c.names = append(c.names, p.Name)
		}
		c.profiles[p.Name] = p
	}
	sort.Strings(c.names)
	return c
}

// Load returns the catalog for the given configuration path. An empty path
// selects the built-in default roles; otherwise the YAML file fully replaces
// the defaults with identical runtime behavior.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return New(DefaultRoles()), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file struct {
		Roles []RoleProfile `yaml:"roles"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if len(file.Roles) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no roles", path)
	}

	return New(file.Roles), nil
}

// Role looks up a role profile by its exact name.
func (c *Catalog) Role(name string) (RoleProfile, error) {
	profile, ok := c.profiles[name]
	if !ok {
		return RoleProfile{}, fmt.Errorf("%w: %s", ErrRoleNotFound, name)
	}
	return profile, nil
}

// Names returns the supported role names in stable sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Profiles returns all role profiles ordered by name.
func (c *Catalog) Profiles() []RoleProfile {
	profiles := make([]RoleProfile, 0, len(c.names))
	for _, name := range c.names {
		profiles = append(profiles, c.profiles[name])
	}
	return profiles
}
