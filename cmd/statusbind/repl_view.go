package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type replStyles struct {
	prompt   lipgloss.Style
	title    lipgloss.Style
	badge    lipgloss.Style
	muted    lipgloss.Style
	value    lipgloss.Style
	failed   lipgloss.Style
	raised   lipgloss.Style
	varName  lipgloss.Style
	panel    lipgloss.Style
	panelHdr lipgloss.Style
}

func newREPLStyles() replStyles {
	blue := lipgloss.Color("#3B82F6")
	green := lipgloss.Color("#10B981")
	amber := lipgloss.Color("#F59E0B")
	red := lipgloss.Color("#EF4444")
	grey := lipgloss.Color("#6B7280")

	return replStyles{
		prompt:   lipgloss.NewStyle().Foreground(blue).Bold(true),
		title:    lipgloss.NewStyle().Foreground(blue).Bold(true).Padding(0, 1),
		badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(blue).Padding(0, 1),
		muted:    lipgloss.NewStyle().Foreground(grey),
		value:    lipgloss.NewStyle().Foreground(green),
		failed:   lipgloss.NewStyle().Foreground(amber),
		raised:   lipgloss.NewStyle().Foreground(red),
		varName:  lipgloss.NewStyle().Foreground(amber),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(blue).Padding(0, 1),
		panelHdr: lipgloss.NewStyle().Foreground(blue).Bold(true),
	}
}

var replCommandHelp = [][2]string{
	{":module <name>", "switch the unqualified module"},
	{":reset", "fresh runtime and native slots"},
	{":vars", "toggle the variables panel"},
	{":clear", "clear the transcript"},
	{":help", "toggle this help"},
	{":quit", "exit"},
	{"x = expr", "bind a variable; _ holds the last result"},
}

func (m replModel) View() string {
	if m.quitting {
		return m.styles.muted.Render("bye\n")
	}
	if !m.ready {
		return "starting..."
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("statusbind") + m.styles.badge.Render(m.sess.module) + " " +
		m.styles.muted.Render(strings.Join(m.sess.rt.Modules(), " ")) + "\n")
	b.WriteString(m.styles.muted.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	reserved := 7
	if m.help.ShowAll {
		reserved += len(replCommandHelp) + 8
	}
	if m.showVars {
		reserved += len(m.env) + 3
	}
	shown := m.transcript
	if budget := max((m.height-reserved)/2, 1); len(shown) > budget {
		shown = shown[len(shown)-budget:]
	}
	for _, entry := range shown {
		b.WriteString(m.renderEntry(entry))
	}

	if m.showVars {
		b.WriteString(m.renderVars() + "\n")
	}
	if m.help.ShowAll {
		b.WriteString(m.renderCommandHelp() + "\n")
	}

	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.help.View(replKeyMap))
	return b.String()
}

func (m replModel) renderEntry(e transcriptEntry) string {
	var b strings.Builder
	if e.input != "" {
		b.WriteString(m.styles.muted.Render("  › ") + e.input + "\n")
	}
	switch e.kind {
	case entryValue:
		b.WriteString("  " + m.styles.value.Render("→ "+e.output))
	case entryFailedStatus:
		b.WriteString("  " + m.styles.failed.Render("≠ "+e.output))
	case entryRaised:
		b.WriteString("  " + m.styles.raised.Render("✗ "+e.output))
	default:
		b.WriteString("  " + m.styles.muted.Render(e.output))
	}
	b.WriteString("\n\n")
	return b.String()
}

func (m replModel) renderVars() string {
	if len(m.env) == 0 {
		return m.styles.panel.Render(m.styles.muted.Render("no variables"))
	}
	names := make([]string, 0, len(m.env))
	for name := range m.env {
		names = append(names, name)
	}
	slices.Sort(names)

	lines := []string{m.styles.panelHdr.Render("Variables")}
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %s = %s", m.styles.varName.Render(name), m.sess.rt.Repr(m.env[name])))
	}
	return m.styles.panel.Render(strings.Join(lines, "\n"))
}

func (m replModel) renderCommandHelp() string {
	lines := []string{m.styles.panelHdr.Render("Commands")}
	for _, c := range replCommandHelp {
		lines = append(lines, fmt.Sprintf("  %s  %s", m.styles.varName.Render(fmt.Sprintf("%-15s", c[0])), m.styles.muted.Render(c[1])))
	}
	return m.styles.panel.Render(strings.Join(lines, "\n"))
}
