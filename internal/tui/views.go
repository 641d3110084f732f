package tui

import (
	"fmt"
	"strings"

	"github.com/jomtui/jom/internal/catalog"
)

const (
	prompt   = "What would you like to do?"
	exitHint = "To exit, type Q, ESC or Ctrl + C."
)

func (m Model) viewDistros() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	if m.host != "" {
		b.WriteString(m.styles.Subtle.Render("System: " + m.host))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Title.Render(prompt))
	b.WriteString("\n")

	cat := m.dispatcher.App().Catalog()
	if cat.Len() == 0 {
		b.WriteString(m.styles.Warning.Render("No distributions in the catalog."))
		b.WriteString("\n")
	}

	labels := make([]string, 0, cat.Len())
	for _, d := range cat.Distros {
		label := d.Name
		if d.Manager != "" {
			label = fmt.Sprintf("%s (%s)", d.Name, d.Manager)
		}
		labels = append(labels, label)
	}
	m.writeRows(&b, labels, m.dispatcher.Cursor(), nil)

	m.writeFooter(&b)
	return b.String()
}

func (m Model) viewActions() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	app := m.dispatcher.App()
	if name, err := app.DistroName(app.SelectedDistro()); err == nil {
		b.WriteString(m.styles.Subtle.Render("Distribution: " + name))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Title.Render(prompt))
	b.WriteString("\n")

	labels := make([]string, 0, len(catalog.Actions))
	for _, a := range catalog.Actions {
		labels = append(labels, a.String())
	}
	m.writeRows(&b, labels, m.dispatcher.Cursor(), nil)

	m.writeFooter(&b)
	return b.String()
}

func (m Model) viewPackages() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")

	app := m.dispatcher.App()
	distro, err := app.Catalog().Distro(app.SelectedDistro())
	if err != nil {
		b.WriteString(m.styles.Error.Render(err.Error()))
		b.WriteString("\n")
		m.writeFooter(&b)
		return b.String()
	}

	title := fmt.Sprintf("Packages to %s on %s", app.Action(), distro.Name)
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	labels := make([]string, 0, len(distro.Packages))
	marked := make([]bool, 0, len(distro.Packages))
	for _, p := range distro.Packages {
		labels = append(labels, p.Name)
		marked = append(marked, app.HasPackage(p.Name))
	}
	if len(labels) == 0 {
		b.WriteString(m.styles.Warning.Render("This distribution lists no packages."))
		b.WriteString("\n")
	}
	m.writeRows(&b, labels, m.dispatcher.Cursor(), marked)

	if plan := app.Plan(); len(plan) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtle.Render("Plan (not executed):"))
		b.WriteString("\n")
		for _, cmd := range plan {
			b.WriteString(m.styles.Command.Render("  $ " + cmd))
			b.WriteString("\n")
		}
	}

	m.writeFooter(&b)
	return b.String()
}

// writeRows renders one line per label, "> " on the highlighted row and two
// spaces elsewhere. marked may be nil when the list has no checkboxes.
func (m Model) writeRows(b *strings.Builder, labels []string, cursor int, marked []bool) {
	for i, label := range labels {
		if marked != nil {
			box := "[ ] "
			if marked[i] {
				box = "[x] "
			}
			label = box + label
		}

		if i == cursor {
			b.WriteString(m.styles.SelectedOption.Render("> " + label))
		} else if marked != nil && marked[i] {
			b.WriteString(m.styles.Marked.Render("  " + label))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + label))
		}
		b.WriteString("\n")
	}
}

func (m Model) writeFooter(b *strings.Builder) {
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(exitHint))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
}
