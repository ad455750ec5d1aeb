package main

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgomes/statusbind/bind"
	"github.com/mgomes/statusbind/fixtures/statusexample"
	"github.com/mgomes/statusbind/host"
)

type entryKind int

const (
	entryValue entryKind = iota
	// entryFailedStatus is a non-raising Status wrapper that is not OK.
	entryFailedStatus
	entryRaised
	entryInfo
)

type transcriptEntry struct {
	input  string
	output string
	kind   entryKind
}

type replKeys struct {
	Prev     key.Binding
	Next     key.Binding
	Eval     key.Binding
	Complete key.Binding
	Vars     key.Binding
	Help     key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func (k replKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Vars, k.Clear, k.Quit}
}

func (k replKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Eval, k.Complete},
		{k.Vars, k.Help, k.Clear, k.Quit},
	}
}

var replKeyMap = replKeys{
	Prev:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous input")),
	Next:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next input")),
	Eval:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
	Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
	Vars:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "vars")),
	Help:     key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "help")),
	Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
}

// inputHistory recalls submitted lines. cursor equals len(lines) when the
// user is not browsing.
type inputHistory struct {
	lines  []string
	cursor int
}

func (h *inputHistory) push(line string) {
	h.lines = append(h.lines, line)
	h.cursor = len(h.lines)
}

func (h *inputHistory) prev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.lines[h.cursor], true
}

// next moves forward. Stepping past the newest line yields an empty input.
func (h *inputHistory) next() (string, bool) {
	if h.cursor >= len(h.lines) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.lines) {
		return "", true
	}
	return h.lines[h.cursor], true
}

func (h *inputHistory) rewind() { h.cursor = len(h.lines) }

type replModel struct {
	input      textinput.Model
	help       help.Model
	styles     replStyles
	sess       *session
	env        map[string]host.Value
	transcript []transcriptEntry
	history    inputHistory
	width      int
	height     int
	showVars   bool
	quitting   bool
	ready      bool
}

func newREPLModel() (replModel, error) {
	styles := newREPLStyles()

	in := textinput.New()
	in.Placeholder = `make_status(:not_found, "gone")`
	in.Prompt = "status> "
	in.PromptStyle = styles.prompt
	in.CharLimit = 500
	in.Width = 60
	in.Focus()

	sess, err := newSession(statusexample.ModuleName, host.Config{})
	if err != nil {
		return replModel{}, err
	}
	return replModel{
		input:  in,
		help:   help.New(),
		styles: styles,
		sess:   sess,
		env:    make(map[string]host.Value),
	}, nil
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-10, 10)
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, replKeyMap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, replKeyMap.Clear):
			m.transcript = nil
			return m, nil
		case key.Matches(msg, replKeyMap.Vars):
			m.showVars = !m.showVars
			return m, nil
		case key.Matches(msg, replKeyMap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, replKeyMap.Prev):
			if line, ok := m.history.prev(); ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
			}
			return m, nil
		case key.Matches(msg, replKeyMap.Next):
			if line, ok := m.history.next(); ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
			}
			return m, nil
		case key.Matches(msg, replKeyMap.Complete):
			return m.complete(), nil
		case key.Matches(msg, replKeyMap.Eval):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) submit() (replModel, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.history.rewind()
	if strings.HasPrefix(line, ":") {
		return m.handleCommand(line)
	}

	output, kind := m.evaluate(line)
	m.transcript = append(m.transcript, transcriptEntry{input: line, output: output, kind: kind})
	m.history.push(line)
	return m, nil
}

func (m replModel) handleCommand(line string) (replModel, tea.Cmd) {
	fields := strings.Fields(line)
	note := func(output string, kind entryKind) {
		m.transcript = append(m.transcript, transcriptEntry{input: line, output: output, kind: kind})
	}

	switch fields[0] {
	case ":help", ":h":
		m.help.ShowAll = !m.help.ShowAll
	case ":clear", ":c":
		m.transcript = nil
	case ":vars", ":v":
		m.showVars = !m.showVars
	case ":reset", ":r":
		if err := m.rebuild(m.sess.module); err != nil {
			note(err.Error(), entryRaised)
		} else {
			note("fresh runtime and native slots", entryInfo)
		}
	case ":module", ":m":
		if len(fields) != 2 {
			note("usage: :module <name>", entryRaised)
			break
		}
		if err := m.rebuild(fields[1]); err != nil {
			note(err.Error(), entryRaised)
		} else {
			note("now in "+fields[1], entryInfo)
		}
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		note(fmt.Sprintf("unknown command %s", fields[0]), entryRaised)
	}
	return m, nil
}

// rebuild replaces the session. Variables refer to objects of the old
// runtime, so they are dropped.
func (m *replModel) rebuild(module string) error {
	sess, err := newSession(module, m.sess.rt.Config())
	if err != nil {
		return err
	}
	m.sess = sess
	m.env = make(map[string]host.Value)
	return nil
}

func (m replModel) evaluate(line string) (string, entryKind) {
	name, src := splitAssignment(line)

	result, err := host.Eval(m.sess.rt, m.sess.scope(m.env), src)
	if err != nil {
		return err.Error(), entryRaised
	}
	if name != "" {
		m.env[name] = result
	}
	m.env["_"] = result

	kind := entryValue
	if result.Kind() == host.KindInstance {
		if s, err := bind.LoadStatus(result); err == nil && !s.Ok() {
			kind = entryFailedStatus
		}
	}
	return m.sess.rt.Repr(result), kind
}

// splitAssignment recognises "name = expr". Anything else is evaluated whole.
func splitAssignment(line string) (string, string) {
	lhs, rhs, found := strings.Cut(line, "=")
	if found {
		if name := strings.TrimSpace(lhs); isIdentifier(name) {
			return name, strings.TrimSpace(rhs)
		}
	}
	return "", line
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

func (m replModel) complete() replModel {
	line := m.input.Value()
	start := strings.LastIndexAny(line, " (,[") + 1
	word := line[start:]
	if word == "" {
		return m
	}

	found := completions(m.sess.scope(m.env), word)
	switch len(found) {
	case 0:
	case 1:
		m.input.SetValue(line[:start] + found[0])
		m.input.CursorEnd()
	default:
		if prefix := commonPrefix(found); len(prefix) > len(word) {
			m.input.SetValue(line[:start] + prefix)
			m.input.CursorEnd()
		}
		m.transcript = append(m.transcript, transcriptEntry{output: strings.Join(found, "  "), kind: entryInfo})
	}
	return m
}

// completions lists the names in scope that extend word. After a dot it
// lists members of the value before the dot.
func completions(scope map[string]host.Value, word string) []string {
	var out []string
	if dot := strings.LastIndexByte(word, '.'); dot >= 0 {
		owner, prefix := word[:dot], word[dot+1:]
		if v, ok := scope[owner]; ok {
			for _, name := range memberNames(v) {
				if strings.HasPrefix(name, prefix) {
					out = append(out, owner+"."+name)
				}
			}
		}
	} else {
		for _, name := range []string{"true", "false", "nil"} {
			if strings.HasPrefix(name, word) {
				out = append(out, name)
			}
		}
		for name := range scope {
			if strings.HasPrefix(name, word) {
				out = append(out, name)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func memberNames(v host.Value) []string {
	var names []string
	classMembers := func(c *host.Class) {
		for ; c != nil; c = c.Base {
			for name := range c.Methods {
				names = append(names, name)
			}
			for name := range c.Getters {
				names = append(names, name)
			}
		}
	}
	switch v.Kind() {
	case host.KindModule:
		names = v.Module().Names()
	case host.KindClass:
		classMembers(v.Class())
	case host.KindInstance:
		inst := v.Instance()
		classMembers(inst.Class)
		for name := range inst.Attrs {
			names = append(names, name)
		}
	case host.KindEnumType:
		for _, member := range v.EnumType().Members() {
			names = append(names, member.Name)
		}
	}
	return names
}

func commonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

func runREPL() error {
	model, err := newREPLModel()
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
