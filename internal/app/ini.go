package app

import (
	"fmt"

	"github.com/robfig/config"
)

// LoadINI reads the options of one section of an ini file. Options from the
// file's DEFAULT section are included and may be referenced with %(name)s.
func LoadINI(path, section string) (map[string]string, error) {
	c, err := config.ReadDefault(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if section == "" {
		section = DefaultSection
	}
	if !c.HasSection(section) {
		return nil, fmt.Errorf("config %s: section %q not found", path, section)
	}
	opts, err := c.Options(section)
	if err != nil {
		return nil, fmt.Errorf("config %s [%s]: %w", path, section, err)
	}
	out := make(map[string]string, len(opts))
	for _, opt := range opts {
		v, err := c.String(section, opt)
		if err != nil {
			return nil, fmt.Errorf("config %s [%s] %s: %w", path, section, opt, err)
		}
		out[opt] = v
	}
	return out, nil
}
