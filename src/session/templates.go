package session

import (
	"fmt"

	"gca/src/ui"
)

func (s *Session) manageTemplates() error {
	for {
		s.in.Menu("Manage templates:", []string{"List templates", "Add template"})
		fmt.Fprintln(s.out, "q: Back")
		idx, letter, err := s.in.Choose("Select option: ", 2, "q")
		if err != nil || letter == "q" {
			return err
		}

		if idx == 0 {
			err = s.listTemplates()
		} else {
			var category string
			category, err = s.requireLine("Category (existing or new): ")
			if err == nil {
				err = s.addTemplate(category)
			}
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) listTemplates() error {
	categories := s.catalog.Categories()
	s.in.Menu("Select category:", categories)
	idx, letter, err := s.in.Choose("Enter number (or 'q' to go back): ", len(categories), "q")
	if err != nil || letter == "q" {
		return err
	}
	category := categories[idx]

	templates, err := s.catalog.TemplatesFor(category)
	if err != nil {
		ui.Failure(s.out, "%v", err)
		return nil
	}
	tbl := ui.NewTable(s.out, "#", "Template", "Source")
	for i, text := range templates {
		tbl.AppendRow([]interface{}{i + 1, text, s.catalog.Source(category, text)})
	}
	tbl.Render()
	return nil
}

func (s *Session) addTemplate(category string) error {
	text, err := s.requireLine(fmt.Sprintf("New %s template (placeholders like [component] allowed): ", category))
	if err != nil {
		return err
	}
	if s.catalog.HasTemplate(category, text) {
		ui.Info(s.out, "That template already exists")
		return nil
	}
	if err := s.catalog.AddCustomTemplate(category, text); err != nil {
		ui.Warning(s.out, "%v", err)
		return nil
	}
	ui.Success(s.out, "Template added to %s", category)
	return nil
}
