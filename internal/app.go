package internal

// NOTE: Searching for `// #` will walk you through the main flow of the application

import (
	"fmt"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/reflow/wrap"
	"github.com/robinovitch61/copycode/internal/color"
	"github.com/robinovitch61/copycode/internal/command"
	"github.com/robinovitch61/copycode/internal/constants"
	"github.com/robinovitch61/copycode/internal/copyaction"
	"github.com/robinovitch61/copycode/internal/dev"
	"github.com/robinovitch61/copycode/internal/fileio"
	"github.com/robinovitch61/copycode/internal/help"
	"github.com/robinovitch61/copycode/internal/message"
	"github.com/robinovitch61/copycode/internal/style"
	"github.com/robinovitch61/copycode/internal/toast"
	"github.com/robinovitch61/copycode/internal/util"
	"strings"
)

type Model struct {
	config        Config
	handler       *copyaction.Handler
	elements      []copyaction.Element
	loaded        bool
	cursor        int
	offset        int
	width, height int
	toast         toast.Model
	watcher       *fsnotify.Watcher
	helpText      string
	err           error
}

func InitialModel(c Config, handler *copyaction.Handler) Model {
	return Model{
		config:  c,
		handler: handler,
	}
}

// #1: Load the page and find its copyable blocks
func (m Model) Init() tea.Cmd {
	style.DebugColors()
	if m.config.Watch {
		return tea.Batch(command.LoadPageCmd(m.config.PagePath), command.StartPageWatchCmd(m.config.PagePath))
	}
	return command.LoadPageCmd(m.config.PagePath)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	dev.DebugMsg("App", msg)
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case message.ErrMsg:
		m.err = msg.Err
		m.Close()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scrollToCursor()
		return m, nil

	// #2: The page is loaded, blocks are listed with the first one selected. On reload, the selection stays put
	case command.PageLoadedMsg:
		reload := m.loaded
		m.elements = msg.Elements
		m.loaded = true
		if !reload {
			m.cursor, m.offset = 0, 0
		}
		m.cursor = max(min(m.cursor, len(m.elements)-1), 0)
		m.offset = min(m.offset, m.cursor)
		m.scrollToCursor()
		dev.Debug(fmt.Sprintf("loaded %d blocks from %s", len(msg.Elements), msg.Path))
		return m, nil

	case command.PageWatchStartedMsg:
		if m.err != nil {
			_ = msg.Watcher.Close()
			return m, nil
		}
		m.watcher = msg.Watcher
		return m, command.WaitForPageChangeCmd(m.watcher, m.config.PagePath)

	case command.PageChangedMsg:
		if m.watcher == nil {
			return m, command.LoadPageCmd(msg.Path)
		}
		return m, tea.Batch(command.LoadPageCmd(msg.Path), command.WaitForPageChangeCmd(m.watcher, msg.Path))

	// #3: The user presses a key, possibly triggering a copy of the selected block
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	// #4: The clipboard write finished and the block shows as copied. Schedule the end of that
	case copyaction.CopiedMsg:
		toastMsg := "Copied to clipboard"
		toastStyle := style.ToastSuccess
		if msg.Result.Err != nil {
			toastMsg = fmt.Sprintf("Error copying to clipboard: %s", msg.Result.Err.Error())
			toastStyle = style.ToastError
		}
		var toastCmd tea.Cmd
		m.toast, toastCmd = toast.Show(toastMsg, toastStyle, constants.ToastDuration)
		return m, tea.Batch(toastCmd, m.handler.ResetCmd(msg.Result))

	// #5: The copied state's time is up. A reset from an earlier copy of the same block is ignored
	case copyaction.ResetMsg:
		m.handler.Reset(msg.Activation)
		return m, nil

	case fileio.SaveCompleteMsg:
		toastMsg := msg.SuccessMessage
		toastStyle := style.ToastSuccess
		if toastMsg == "" {
			toastMsg = msg.ErrMessage
			toastStyle = style.ToastError
		}
		m.toast, cmd = toast.Show(toastMsg, toastStyle, constants.ToastDuration)
		return m, cmd

	case toast.TimeoutMsg:
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		errString := wrap.String(m.err.Error(), max(m.width, 1))
		return lipgloss.JoinVertical(
			lipgloss.Left,
			"Error - if this seems wrong, consider opening an issue",
			"https://github.com/robinovitch61/copycode/issues/new",
			"",
			m.config.KeyMap.Quit.Help().Key+" to quit",
			"",
			errString,
		)
	}
	if !m.loaded || m.width == 0 || m.height == 0 {
		return ""
	}
	topBar := m.topBar()
	if m.helpText != "" {
		centeredHelp := lipgloss.Place(m.width, m.height-lipgloss.Height(topBar), lipgloss.Center, lipgloss.Center, m.helpText)
		return lipgloss.JoinVertical(lipgloss.Left, topBar, centeredHelp)
	}

	viewLines := strings.Split(topBar, "\n")
	viewLines = append(viewLines, m.blockLines()...)
	for len(viewLines) < m.height {
		viewLines = append(viewLines, "")
	}
	viewLines = viewLines[:m.height]
	if toastHeight := m.toast.ViewHeight(); toastHeight > 0 && toastHeight < len(viewLines) {
		viewLines = viewLines[:len(viewLines)-toastHeight]
		viewLines = append(viewLines, strings.Split(m.toast.View(), "\n")...)
	}
	return strings.Join(viewLines, "\n")
}

// Close stops watching the page. It is safe to call more than once
func (m *Model) Close() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		dev.Debug(fmt.Sprintf("closing page watcher: %v", err))
	}
	m.watcher = nil
}

// Copied reports whether the block with id elementID currently shows as copied
func (m Model) Copied(elementID string) bool {
	return m.handler.Copied(elementID)
}

func (m Model) topBar() string {
	padding := "   "
	blocks := fmt.Sprintf("%d blocks", len(m.elements))
	if len(m.elements) == 1 {
		blocks = "1 block"
	}
	left := fmt.Sprintf("copycode %s%s%s%s%s", m.config.Version, padding, m.config.PagePath, padding, blocks)
	right := fmt.Sprintf("%s to quit / %s for help", m.config.KeyMap.Quit.Help().Key, m.config.KeyMap.Help.Help().Key)
	toJoin := []string{left}
	if len(left)+len(padding)+len(right) < m.width {
		toJoin = append(toJoin, right)
	}
	return util.JoinWithEqualSpacing(m.width, toJoin...)
}

func (m Model) contentHeight() int {
	return m.height - lipgloss.Height(m.topBar())
}

func (m Model) blockHeight(i int) int {
	return lipgloss.Height(m.renderBlock(i))
}

func (m Model) renderBlock(i int) string {
	e := m.elements[i]
	title := style.BlockTitle.Render(e.ID)
	if e.Title != "" {
		title += " · " + style.Regular.Foreground(color.LangColor(e.Title)).Render(e.Title)
	}
	if m.handler.Copied(e.ID) {
		title += " " + style.Copied.Render(constants.CopiedBadge)
	}

	preview := util.PreviewLines(e.Text(), max(m.width-2, 1), constants.MaxPreviewLines)
	lines := append([]string{title}, preview...)

	blockStyle := style.BlockIdle
	if i == m.cursor {
		blockStyle = style.BlockSelected
	}
	return blockStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func (m Model) blockLines() []string {
	if len(m.elements) == 0 {
		return []string{style.Subtle.Render("no copyable blocks found on this page")}
	}
	var lines []string
	for i := m.offset; i < len(m.elements) && len(lines) < m.contentHeight(); i++ {
		lines = append(lines, strings.Split(m.renderBlock(i), "\n")...)
	}
	return lines
}

func (m *Model) scrollToCursor() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	available := m.contentHeight()
	for m.offset < m.cursor {
		used := 0
		for i := m.offset; i <= m.cursor; i++ {
			used += m.blockHeight(i)
		}
		if used <= available {
			break
		}
		m.offset++
	}
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.config.KeyMap

	if key.Matches(msg, km.Quit) {
		m.Close()
		return m, tea.Quit
	}

	// any key hides help
	if m.helpText != "" {
		m.helpText = ""
		return m, nil
	}

	if m.err != nil || !m.loaded {
		return m, nil
	}

	if key.Matches(msg, km.Help) {
		m.helpText = help.MakeHelp(km, style.KeyHelpStyle)
		return m, nil
	}

	if len(m.elements) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, km.Down):
		if m.cursor < len(m.elements)-1 {
			m.cursor++
		}
	case key.Matches(msg, km.Top):
		m.cursor = 0
	case key.Matches(msg, km.Bottom):
		m.cursor = len(m.elements) - 1
	case key.Matches(msg, km.Copy):
		return m, m.handler.CopyCmd(m.elements[m.cursor])
	case key.Matches(msg, km.Save):
		e := m.elements[m.cursor]
		return m, fileio.GetSaveCommand(m.config.SaveDir, e.ID, e.Title, e.Text())
	}
	m.scrollToCursor()
	return m, nil
}
