package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the default site with the YAML file at path applied on top.
// Keys absent from the file keep their defaults; a present list replaces
// the default list. An empty path returns the defaults.
func Load(path string) (Site, error) {
	site := Default()
	if path == "" {
		return site, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("read content file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return Site{}, fmt.Errorf("parse content file %s: %w", path, err)
	}
	if err := site.Validate(); err != nil {
		return Site{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return site, nil
}

// Validate checks section IDs and thresholds.
func (s Site) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(s.Sections))
	for i, sec := range s.Sections {
		switch {
		case sec.ID == "":
			errs = append(errs, fmt.Errorf("section %d: missing id", i))
		case seen[sec.ID]:
			errs = append(errs, fmt.Errorf("section %q: duplicate id", sec.ID))
		}
		seen[sec.ID] = true
		if sec.Threshold < 0 || sec.Threshold > 1 {
			errs = append(errs, fmt.Errorf("section %q: threshold %v outside [0,1]", sec.ID, sec.Threshold))
		}
	}
	return errors.Join(errs...)
}
