package commands

import (
	"fmt"
	"io"
	"os"

	"gca/src"
	"gca/src/catalog"
	"gca/src/ui"
)

// TemplatesListCommand prints the templates of one category, or of all of
// them when category is empty.
func TemplatesListCommand(w io.Writer, c *catalog.Catalog, category string) error {
	categories := c.Categories()
	if category != "" {
		if !c.Known(category) {
			return fmt.Errorf("%w: %s", catalog.ErrUnknownCategory, category)
		}
		categories = []string{category}
	}

	tbl := ui.NewTable(w, "Category", "Template", "Source")
	for _, cat := range categories {
		templates, err := c.TemplatesFor(cat)
		if err != nil {
			return err
		}
		for _, text := range templates {
			tbl.AppendRow([]interface{}{cat, text, c.Source(cat, text)})
		}
	}
	tbl.Render()
	return nil
}

func TemplatesAddCommand(c *catalog.Catalog, category, text string) error {
	if c.HasTemplate(category, text) {
		src.PrintInfo("Template already exists in %s", category)
		return nil
	}
	if err := c.AddCustomTemplate(category, text); err != nil {
		return err
	}
	src.PrintSuccess("Added template to %s", category)
	return nil
}

func TemplatesImportCommand(c *catalog.Catalog, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open template pack: %w", err)
	}
	defer f.Close()

	added, err := c.ImportPack(f)
	if err != nil {
		return err
	}
	src.PrintSuccess("Imported %d template(s) from %s", added, path)
	return nil
}

func TemplatesExportCommand(c *catalog.Catalog, path string) error {
	if path == "" || path == "-" {
		return c.ExportPack(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := c.ExportPack(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	src.PrintSuccess("Exported custom templates to %s", path)
	return nil
}
