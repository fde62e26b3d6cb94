package catalog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportPack reads a YAML document mapping categories to template lists and
// adds every template the catalog does not already hold.
func (c *Catalog) ImportPack(r io.Reader) (int, error) {
	var pack map[string][]string
	if err := yaml.NewDecoder(r).Decode(&pack); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to parse template pack: %w", err)
	}

	added := 0
	for _, key := range sortedKeys(pack) {
		category := strings.ToLower(strings.TrimSpace(key))
		for _, text := range pack[key] {
			text = strings.TrimSpace(text)
			if text == "" || c.HasTemplate(category, text) {
				continue
			}
			if err := c.AddCustomTemplate(category, text); err != nil {
				return added, err
			}
			added++
		}
	}
	return added, nil
}

// ExportPack writes the custom templates as a YAML template pack.
func (c *Catalog) ExportPack(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Custom()); err != nil {
		return fmt.Errorf("failed to marshal template pack: %w", err)
	}
	return enc.Close()
}
