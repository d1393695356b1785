// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/avdedit/internal/application/port"
	"github.com/bnema/avdedit/internal/application/usecase"
	"github.com/bnema/avdedit/internal/cli/styles"
	"github.com/bnema/avdedit/internal/domain/entity"
	"github.com/bnema/avdedit/internal/logging"
)

type editorMode int

const (
	modeList editorMode = iota
	modePicker
	modeEditValue
	modeAdd
)

// pendingAction is what runs after the user confirms discarding edits.
type pendingAction int

const (
	actionNone pendingAction = iota
	actionQuit
	actionRevert
	actionSwitch
)

// EditorModelConfig holds the dependencies of the editor.
type EditorModelConfig struct {
	ListAvdsUC *usecase.ListAvdsUseCase
	Session    *usecase.EditSession
	Watcher    port.ConfigWatcher // nil disables external change tracking
	AvdRoot    string
	// InitialAvd preselects an AVD by name instead of the first one.
	InitialAvd     string
	ConfirmDiscard bool
}

// EditorModel is the Bubble Tea model for the interactive config editor.
type EditorModel struct {
	// UI components
	help     help.Model
	keys     styles.EditorKeyMap
	pickKeys styles.PickerKeyMap
	inKeys   styles.InputKeyMap
	input    textinput.Model
	confirm  *styles.ConfirmModel
	renderer *styles.EntryRenderer

	// State
	mode       editorMode
	pending    pendingAction
	avds       []entity.AvdDescriptor
	rows       []usecase.EntryRow
	cursor     int
	pickerIdx  int
	editingKey string
	status     string
	statusErr  bool
	width      int
	height     int
	err        error

	// Watch of the open config.ini
	watchCancel context.CancelFunc
	watchPath   string
	watchCh     <-chan struct{}

	// Dependencies
	ctx            context.Context
	listAvdsUC     *usecase.ListAvdsUseCase
	session        *usecase.EditSession
	watcher        port.ConfigWatcher
	root           string
	initialAvd     string
	confirmDiscard bool
	theme          *styles.Theme
}

// NewEditorModel creates a new editor model.
func NewEditorModel(ctx context.Context, theme *styles.Theme, cfg EditorModelConfig) EditorModel {
	return EditorModel{
		help:           styles.NewStyledHelp(theme),
		keys:           styles.DefaultEditorKeyMap(),
		pickKeys:       styles.DefaultPickerKeyMap(),
		inKeys:         styles.DefaultInputKeyMap(),
		renderer:       styles.NewEntryRenderer(theme),
		mode:           modeList,
		width:          80,
		height:         24,
		ctx:            ctx,
		listAvdsUC:     cfg.ListAvdsUC,
		session:        cfg.Session,
		watcher:        cfg.Watcher,
		root:           cfg.AvdRoot,
		initialAvd:     cfg.InitialAvd,
		confirmDiscard: cfg.ConfirmDiscard,
		theme:          theme,
	}
}

// avdsLoadedMsg is sent when the AVD list is loaded.
type avdsLoadedMsg struct {
	avds []entity.AvdDescriptor
	err  error
}

// configOpenedMsg is sent when an AVD's config.ini was opened.
type configOpenedMsg struct {
	avd entity.AvdDescriptor
	err error
}

// configSavedMsg is sent after a save attempt.
type configSavedMsg struct {
	err error
}

// configRevertedMsg is sent after unsaved edits were discarded.
type configRevertedMsg struct {
	err error
}

// configChangedMsg is sent when the watched config.ini changed on disk.
type configChangedMsg struct {
	path string
}

// configReloadedMsg is sent after reconciling with an external change.
type configReloadedMsg struct {
	result usecase.ReloadResult
	err    error
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return m.loadAvds
}

func (m EditorModel) loadAvds() tea.Msg {
	log := logging.FromContext(m.ctx)

	out, err := m.listAvdsUC.Execute(m.ctx, usecase.ListAvdsInput{Root: m.root})
	if err != nil {
		return avdsLoadedMsg{err: err}
	}
	log.Debug().Int("count", len(out.Avds)).Msg("avds loaded for editor")
	return avdsLoadedMsg{avds: out.Avds}
}

func (m EditorModel) openAvd(avd entity.AvdDescriptor) tea.Cmd {
	return func() tea.Msg {
		return configOpenedMsg{avd: avd, err: m.session.Open(m.ctx, avd)}
	}
}

func (m EditorModel) saveConfig() tea.Msg {
	return configSavedMsg{err: m.session.Save(m.ctx)}
}

func (m EditorModel) revertConfig() tea.Msg {
	return configRevertedMsg{err: m.session.Revert(m.ctx)}
}

func (m EditorModel) reloadConfig() tea.Msg {
	result, err := m.session.Reload(m.ctx)
	return configReloadedMsg{result: result, err: err}
}

// waitForChange blocks until the watch channel fires. A closed channel ends
// the watch without a message.
func waitForChange(path string, ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return configChangedMsg{path: path}
	}
}

// Update implements tea.Model.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m.handleConfirm(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case avdsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.avds = msg.avds
		m.err = nil
		if len(m.avds) == 0 {
			m.mode = modePicker
			return m, nil
		}
		m.pickerIdx = m.initialIndex()
		return m, m.openAvd(m.avds[m.pickerIdx])

	case configOpenedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Cannot open %s: %v", msg.avd.Name, msg.err))
			return m, nil
		}
		m.mode = modeList
		m.cursor = 0
		m.refreshRows()
		m.clearStatus()
		return m, m.startWatch(msg.avd)

	case configSavedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Save failed: %v", msg.err))
			return m, nil
		}
		m.setStatus(styles.IconSave + " Saved " + entity.ConfigFileName)
		return m, nil

	case configRevertedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Revert failed: %v", msg.err))
			return m, nil
		}
		m.refreshRows()
		m.setStatus("Reverted to file on disk")
		return m, nil

	case configChangedMsg:
		if msg.path != m.watchPath {
			return m, nil
		}
		return m, tea.Batch(m.reloadConfig, m.rearmWatch())

	case configReloadedMsg:
		switch {
		case msg.err != nil:
			m.setError(fmt.Sprintf("Reload failed: %v", msg.err))
		case msg.result == usecase.ReloadReplaced:
			m.refreshRows()
			m.setStatus(entity.ConfigFileName + " reloaded from disk")
		case msg.result == usecase.ReloadConflict:
			m.setError(entity.ConfigFileName + " changed on disk. Save to overwrite or revert to load it")
		}
		return m, nil
	}

	if m.mode == modeEditValue || m.mode == modeAdd {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m EditorModel) initialIndex() int {
	for i, avd := range m.avds {
		if avd.Matches(m.initialAvd) {
			return i
		}
	}
	return 0
}

func (m EditorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modePicker:
		return m.handlePickerKey(msg)
	case modeEditValue, modeAdd:
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.guardDirty(actionQuit)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.currentRow(); ok && row.Kind.IsBoolean() {
			m.toggle(row)
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if row.Kind.IsBoolean() {
			m.toggle(row)
			return m, nil
		}
		m.editingKey = row.Key
		m.input = styles.NewValueInput(m.theme, row.Key, row.Value)
		m.mode = modeEditValue
		m.setStatus(styles.IconPencil + " Editing " + row.Key)
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Add):
		if !m.session.Editable() {
			m.setError("This AVD has no " + entity.ConfigFileName)
			return m, nil
		}
		m.input = styles.NewEntryInput(m.theme)
		m.mode = modeAdd
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Save):
		if !m.session.Editable() {
			return m, nil
		}
		return m, m.saveConfig

	case key.Matches(msg, m.keys.Revert):
		return m.guardDirty(actionRevert)

	case key.Matches(msg, m.keys.SwitchAvd):
		return m.guardDirty(actionSwitch)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m EditorModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.pickKeys.Cancel):
		if _, ok := m.session.Avd(); ok {
			m.mode = modeList
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.pickKeys.Up):
		if m.pickerIdx > 0 {
			m.pickerIdx--
		}

	case key.Matches(msg, m.pickKeys.Down):
		if m.pickerIdx < len(m.avds)-1 {
			m.pickerIdx++
		}

	case key.Matches(msg, m.pickKeys.Open):
		if m.pickerIdx < len(m.avds) {
			return m, m.openAvd(m.avds[m.pickerIdx])
		}

	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m EditorModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.inKeys.Cancel):
		m.mode = modeList
		m.input.Blur()
		m.clearStatus()
		return m, nil

	case key.Matches(msg, m.inKeys.Submit):
		text := m.input.Value()
		mode := m.mode
		m.mode = modeList
		m.input.Blur()
		m.clearStatus()

		if mode == modeAdd {
			if m.session.AddEntry(text) {
				entry, _ := entity.ParseEntryInput(text)
				m.refreshRows()
				m.moveCursorTo(entry.Key)
			}
			return m, nil
		}

		if err := m.session.SetValue(m.editingKey, text); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.refreshRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m EditorModel) handleConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}

	discard := m.confirm.Result()
	m.confirm = nil
	if !discard {
		m.pending = actionNone
		return m, nil
	}
	return m.runAction()
}

// guardDirty runs action, asking first when unsaved edits would be lost.
func (m EditorModel) guardDirty(action pendingAction) (tea.Model, tea.Cmd) {
	m.pending = action
	if m.confirmDiscard && m.session.Dirty() {
		confirm := styles.NewConfirm(m.theme, "Discard unsaved changes?")
		m.confirm = &confirm
		return m, nil
	}
	return m.runAction()
}

func (m EditorModel) runAction() (tea.Model, tea.Cmd) {
	action := m.pending
	m.pending = actionNone

	switch action {
	case actionQuit:
		m.stopWatch()
		return m, tea.Quit
	case actionRevert:
		if _, ok := m.session.Avd(); !ok {
			return m, nil
		}
		return m, m.revertConfig
	case actionSwitch:
		m.mode = modePicker
		return m, nil
	}
	return m, nil
}

func (m *EditorModel) toggle(row usecase.EntryRow) {
	if _, err := m.session.Toggle(row.Key); err != nil {
		m.setError(err.Error())
		return
	}
	m.refreshRows()
}

func (m EditorModel) currentRow() (usecase.EntryRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return usecase.EntryRow{}, false
	}
	return m.rows[m.cursor], true
}

func (m *EditorModel) refreshRows() {
	m.rows = m.session.Rows()
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m *EditorModel) moveCursorTo(k string) {
	for i, row := range m.rows {
		if row.Key == k {
			m.cursor = i
			return
		}
	}
}

func (m *EditorModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *EditorModel) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m *EditorModel) clearStatus() {
	m.status = ""
	m.statusErr = false
}

func (m *EditorModel) startWatch(avd entity.AvdDescriptor) tea.Cmd {
	m.stopWatch()
	if m.watcher == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(m.ctx)
	ch, err := m.watcher.Watch(ctx, avd.ConfigPath)
	if err != nil {
		cancel()
		logging.FromContext(m.ctx).Warn().Err(err).Str("avd", avd.Name).Msg("external changes will not be tracked")
		return nil
	}
	m.watchCancel = cancel
	m.watchPath = avd.ConfigPath
	m.watchCh = ch
	return waitForChange(m.watchPath, ch)
}

func (m *EditorModel) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
	}
	m.watchCancel = nil
	m.watchPath = ""
	m.watchCh = nil
}

func (m EditorModel) rearmWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	return waitForChange(m.watchPath, m.watchCh)
}

// View implements tea.Model.
func (m EditorModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}

	if m.mode == modePicker {
		b.WriteString(m.renderPicker())
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
		b.WriteString(m.help.View(m.pickKeys))
		return b.String()
	}

	b.WriteString(m.renderRows())

	if m.mode == modeEditValue || m.mode == modeAdd {
		b.WriteString("\n")
		b.WriteString(t.InputBox(m.input.View(), true))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	if m.mode == modeEditValue || m.mode == modeAdd {
		b.WriteString(m.help.View(m.inKeys))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m EditorModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.theme.Subtle
	if m.statusErr {
		style = m.theme.WarningStyle
	}
	return "\n" + style.Render(m.status) + "\n"
}

func (m EditorModel) renderHeader() string {
	t := m.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	avd, ok := m.session.Avd()
	if !ok || m.mode == modePicker {
		return iconStyle.Render(styles.IconMobile) + t.Title.MarginLeft(1).Render("Select an AVD")
	}

	header := iconStyle.Render(styles.IconConfig) + t.Title.MarginLeft(1).Render(avd.Name)
	switch {
	case m.session.Missing():
		header += "  " + t.BadgeMuted.Render("no "+entity.ConfigFileName)
	case m.session.Dirty():
		header += "  " + t.Badge.Render("modified")
	}
	return header + "\n" + t.Subtle.Render(avd.ConfigPath)
}

func (m EditorModel) renderPicker() string {
	t := m.theme
	if len(m.avds) == 0 {
		msg := "  No AVDs found"
		if m.root != "" {
			msg += " in " + m.root
		}
		return t.Subtle.Render(msg) + "\n"
	}

	var b strings.Builder
	for i, avd := range m.avds {
		label := avd.Name
		if !avd.HasConfig {
			label += " " + styles.IconWarning
		}
		if i == m.pickerIdx {
			b.WriteString(t.EntryRowSelected.Render(styles.IconCursor + " " + label))
		} else {
			b.WriteString(t.EntryRow.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m EditorModel) renderRows() string {
	t := m.theme

	if m.session.Missing() {
		return t.Subtle.Render("  This AVD has no "+entity.ConfigFileName+". Nothing to edit.") + "\n"
	}
	if len(m.rows) == 0 {
		return t.Subtle.Render("  No entries") + "\n"
	}

	// Reserve room for header, status, input and help.
	visible := max(m.height-10, 5)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.rows))

	var b strings.Builder
	for i := start; i < end; i++ {
		row := m.rows[i]
		if i == m.cursor {
			b.WriteString(t.EntryRowSelected.Render(styles.IconCursor + " " + rowText(row)))
		} else {
			b.WriteString(t.EntryRow.Render("  " + m.renderer.RenderRow(row)))
		}
		b.WriteString("\n")
	}
	if end < len(m.rows) {
		b.WriteString(t.Subtle.Render(fmt.Sprintf("  … %d more", len(m.rows)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// rowText renders a row without inner styling so the selection style applies
// to the whole line.
func rowText(row usecase.EntryRow) string {
	if row.Kind.IsBoolean() {
		return styles.Checkbox(row.Checked) + " " + row.Key
	}
	return row.Key + " = " + row.Value
}

// Ensure interface compliance.
var _ tea.Model = (*EditorModel)(nil)
