package dock

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dockbar/anim"
	"github.com/llehouerou/dockbar/glass"
	"github.com/llehouerou/dockbar/internal/overlay"
	"github.com/llehouerou/dockbar/internal/render"
	"github.com/llehouerou/dockbar/shape"
	"github.com/llehouerou/dockbar/theme"
)

// Bar-level defaults, in units.
const (
	// DefaultHeight is the bar height when the host configures none.
	DefaultHeight = 60
	// DefaultGap is the spacer between the tab row and the action button.
	DefaultGap = 16
)

const (
	frameInterval  = time.Second / 30
	longPressDelay = 500 * time.Millisecond
)

// FrameMsg advances in-flight animations. The bar schedules its own frames
// while any tween is active and stops ticking once everything settles.
type FrameMsg struct {
	Time time.Time
}

// SelectMsg asks the bar to change the selected index. Hosts can send it
// instead of calling Select directly.
type SelectMsg struct {
	Index int
}

// KeyMap defines the bar's key bindings.
type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Action key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous tab"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tab"),
		),
		Action: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "action"),
		),
	}
}

// Shadow is one entry of the flat bar's shadow list.
type Shadow struct {
	Color  lipgloss.Color
	Blur   float64
	Spread float64
}

// tabTweens holds the animated values of one tab.
type tabTweens struct {
	indicator anim.Tween
	titleOp   anim.Tween
	padX      anim.Tween
}

func (t tabTweens) frame() tabFrame {
	return tabFrame{
		indicator:    t.indicator.Value(),
		titleOpacity: t.titleOp.Value(),
		padX:         t.padX.Value(),
	}
}

func (t tabTweens) done() bool {
	return t.indicator.Done() && t.titleOp.Done() && t.padX.Done()
}

// Model is the navigation bar container: the tab row plus the floating
// action button region. The host owns the tab list and selected index and
// must keep the index valid; an out-of-range index fails with an indexing
// panic, it is not recovered here.
type Model struct {
	tabs     []Item
	selected int

	width      int
	height     float64
	gap        float64
	margin     float64
	background *lipgloss.Color
	shadows    []Shadow
	shape      shape.Shape
	fx         *glass.Effect
	th         *theme.Theme
	feedback   Feedback
	keys       KeyMap

	// Derived: the selected tab's action button. Recomputed atomically
	// with every selection change; never shown against a stale selection.
	// visibleAction keeps the last non-nil descriptor so an outgoing
	// button still has a body while its width tween runs out.
	action        *ActionButton
	visibleAction *ActionButton
	actionW       anim.Tween
	gapW          anim.Tween
	iconFade      anim.Tween
	actionIcon    string
	prevIcon      string

	frames    []tabTweens
	lastFrame time.Time
	ticking   bool

	pressedTab int // -1 when nothing is pressed
	pressedAt  time.Time
	tooltipTab int // -1 when no tooltip is shown
}

// BarOption configures the container.
type BarOption func(*Model)

// WithSelected sets the initially selected index.
func WithSelected(i int) BarOption {
	return func(m *Model) { m.selected = i }
}

// WithHeight sets the bar height in units.
func WithHeight(h float64) BarOption {
	return func(m *Model) { m.height = h }
}

// WithGap sets the tab-row/action-button gap in units.
func WithGap(g float64) BarOption {
	return func(m *Model) { m.gap = g }
}

// WithBarMargin sets the margin around the bar in units.
func WithBarMargin(mg float64) BarOption {
	return func(m *Model) { m.margin = mg }
}

// WithBackground sets the flat bar background color.
func WithBackground(c lipgloss.Color) BarOption {
	return func(m *Model) { m.background = &c }
}

// WithShadows sets the flat bar shadow list.
func WithShadows(s ...Shadow) BarOption {
	return func(m *Model) { m.shadows = s }
}

// WithShape sets the bar shape.
func WithShape(s shape.Shape) BarOption {
	return func(m *Model) { m.shape = s }
}

// WithBarGlass enables the bar-level glass effect.
func WithBarGlass(fx glass.Effect) BarOption {
	return func(m *Model) { m.fx = &fx }
}

// WithTheme injects the palette. Defaults to theme.Default.
func WithTheme(th *theme.Theme) BarOption {
	return func(m *Model) { m.th = th }
}

// WithFeedback injects the haptic trigger.
func WithFeedback(f Feedback) BarOption {
	return func(m *Model) { m.feedback = f }
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(k KeyMap) BarOption {
	return func(m *Model) { m.keys = k }
}

// New constructs the bar. Tab order defines left-to-right render order.
func New(tabs []Item, opts ...BarOption) Model {
	m := Model{
		tabs:       tabs,
		height:     DefaultHeight,
		gap:        DefaultGap,
		shape:      shape.Default(),
		th:         theme.Default(),
		feedback:   NopFeedback{},
		keys:       DefaultKeyMap(),
		pressedTab: -1,
		tooltipTab: -1,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.frames = make([]tabTweens, len(tabs))
	for i, it := range tabs {
		fr := frameAt(it, i == m.selected)
		m.frames[i] = tabTweens{
			indicator: anim.New(fr.indicator),
			titleOp:   anim.New(fr.titleOpacity),
			padX:      anim.New(fr.padX),
		}
	}

	m.deriveAction()
	m.visibleAction = m.action
	if m.action != nil {
		m.actionW = anim.New(m.action.EffectiveSize())
		m.gapW = anim.New(m.gap)
		m.actionIcon = m.action.Icon
	} else {
		m.actionW = anim.New(0)
		m.gapW = anim.New(0)
	}
	m.iconFade = anim.New(1)
	return m
}

// deriveAction recomputes the current action button from the selected tab.
// This is the only derived state the bar owns.
func (m *Model) deriveAction() {
	m.action = m.tabs[m.selected].action
}

// Selected returns the currently selected index.
func (m Model) Selected() int { return m.selected }

// Tabs returns the tab list. Callers must not mutate it mid-render.
func (m Model) Tabs() []Item { return m.tabs }

// Action returns the action button derived from the selected tab, or nil.
func (m Model) Action() *ActionButton { return m.action }

// SetWidth sets the width available to the bar, in cells.
func (m *Model) SetWidth(w int) { m.width = w }

// Width returns the configured width in cells.
func (m Model) Width() int { return m.width }

// SetTabs replaces the tab list. The selected index is kept as-is; the
// host is responsible for keeping it valid. In-flight animations retarget
// to the new descriptors.
func (m *Model) SetTabs(tabs []Item) tea.Cmd {
	m.tabs = tabs
	m.frames = make([]tabTweens, len(tabs))
	for i, it := range tabs {
		fr := frameAt(it, i == m.selected)
		m.frames[i] = tabTweens{
			indicator: anim.New(fr.indicator),
			titleOp:   anim.New(fr.titleOpacity),
			padX:      anim.New(fr.padX),
		}
	}
	return m.applySelection()
}

// Select changes the selected index and retargets every in-flight
// animation toward the new end state. The action button derivation happens
// in the same pass, so no frame shows a stale pairing.
func (m *Model) Select(i int) tea.Cmd {
	if i == m.selected {
		return nil
	}
	m.selected = i
	return m.applySelection()
}

func (m *Model) applySelection() tea.Cmd {
	m.deriveAction()
	m.tooltipTab = -1

	for j := range m.frames {
		it := m.tabs[j]
		selected := j == m.selected
		fr := frameAt(it, selected)
		dur := resolveDuration(it, m.th)
		curve := resolveCurve(it)

		m.frames[j].indicator.Retarget(fr.indicator, dur, curve)
		m.frames[j].padX.Retarget(fr.padX, dur, curve)
		// Title fade trails the rest by the fixed stagger.
		m.frames[j].titleOp.Retarget(fr.titleOpacity, titleDuration(it, m.th), curve)
	}

	if m.action != nil {
		m.visibleAction = m.action
		m.actionW.Retarget(m.action.EffectiveSize(), m.th.DurMedium, anim.EaseInOut)
		m.gapW.Retarget(m.gap, m.th.DurMedium, anim.EaseInOut)
		if m.action.Icon != m.actionIcon {
			m.prevIcon = m.actionIcon
			m.actionIcon = m.action.Icon
			m.iconFade.Snap(0)
			m.iconFade.Retarget(1, m.th.DurFast, anim.EaseOut)
		}
	} else {
		m.actionW.Retarget(0, m.th.DurMedium, anim.EaseInOut)
		m.gapW.Retarget(0, m.th.DurMedium, anim.EaseInOut)
	}

	return m.startTicking()
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	m.lastFrame = time.Now()
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// Init is a no-op; the bar only starts ticking when something animates.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles frame, selection, key and mouse messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return m.advance(msg.Time)

	case SelectMsg:
		cmd := m.Select(msg.Index)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// advance moves every tween forward by the elapsed frame time and keeps
// ticking while anything is still in motion or a press is held.
func (m Model) advance(now time.Time) (Model, tea.Cmd) {
	dt := now.Sub(m.lastFrame)
	if dt < 0 {
		dt = 0
	}
	m.lastFrame = now

	for i := range m.frames {
		m.frames[i].indicator.Advance(dt)
		m.frames[i].titleOp.Advance(dt)
		m.frames[i].padX.Advance(dt)
	}
	m.actionW.Advance(dt)
	m.gapW.Advance(dt)
	m.iconFade.Advance(dt)
	if m.iconFade.Done() {
		m.prevIcon = ""
	}
	if m.action == nil && m.actionW.Done() {
		m.visibleAction = nil
	}

	// Press held past the threshold reveals the tooltip.
	if m.pressedTab >= 0 && now.Sub(m.pressedAt) >= longPressDelay {
		if m.tabs[m.pressedTab].tooltip != "" {
			m.tooltipTab = m.pressedTab
		}
	}

	if m.animating() || m.pressedTab >= 0 {
		return m, frameCmd()
	}
	m.ticking = false
	return m, nil
}

func (m Model) animating() bool {
	for _, fr := range m.frames {
		if !fr.done() {
			return true
		}
	}
	return !m.actionW.Done() || !m.gapW.Done() || !m.iconFade.Done()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		if m.selected > 0 {
			m.tap(m.selected - 1)
		}
	case key.Matches(msg, m.keys.Next):
		if m.selected < len(m.tabs)-1 {
			m.tap(m.selected + 1)
		}
	case key.Matches(msg, m.keys.Action):
		m.tapAction()
	}
	cmd := m.startTicking()
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	tab, onAction := m.hit(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		if tab >= 0 {
			m.pressedTab = tab
			m.pressedAt = time.Now()
			cmd := m.startTicking()
			return m, cmd
		}
		if onAction {
			m.tapAction()
		}

	case tea.MouseActionRelease:
		pressed := m.pressedTab
		m.pressedTab = -1
		m.tooltipTab = -1
		held := time.Since(m.pressedAt)
		if pressed >= 0 && pressed == tab && held < longPressDelay {
			m.tap(pressed)
		}
	}
	return m, nil
}

// tap fires the feedback pulse (when asked for) and then the callback.
func (m *Model) tap(i int) {
	it := m.tabs[i]
	if it.haptics {
		m.feedback.Pulse()
	}
	if it.onTap != nil {
		it.onTap()
	}
}

func (m *Model) tapAction() {
	if m.action == nil {
		return
	}
	if m.action.Feedback {
		m.feedback.Pulse()
	}
	if m.action.OnTap != nil {
		m.action.OnTap()
	}
}

// hit maps a column to a tab index, or to the action button region.
func (m Model) hit(x int) (tab int, onAction bool) {
	spans, actionSpan := m.layoutSpans()
	for i, s := range spans {
		if x >= s.start && x < s.end {
			return i, false
		}
	}
	if x >= actionSpan.start && x < actionSpan.end {
		return -1, true
	}
	return -1, false
}

type span struct {
	start, end int
}

// layoutSpans recomputes tab hit spans from the current render geometry.
func (m Model) layoutSpans() ([]span, span) {
	geom := shape.BorderFor(m.shape)
	spans := make([]span, len(m.tabs))

	x := cellsX(m.margin) + 1 // bar left border
	for i, it := range m.tabs {
		w := lipgloss.Width(renderTab(it, i == m.selected, geom, m.fx, m.th, m.frames[i].frame()))
		spans[i] = span{start: x, end: x + w}
		x += w
	}
	x++ // bar right border

	gw := cellsX(m.gapW.Value())
	aw := cellsX(m.actionW.Value())
	return spans, span{start: x + gw, end: x + gw + aw}
}

// View renders the bar: the shaped tab row, the animated gap spacer and
// the action button region, which collapses to nothing when the selected
// tab has no action.
func (m Model) View() string {
	geom := shape.BorderFor(m.shape)

	rendered := make([]string, len(m.tabs))
	for i, it := range m.tabs {
		rendered[i] = renderTab(it, i == m.selected, geom, m.fx, m.th, m.frames[i].frame())
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)

	bar := m.renderBar(row, geom)

	gw := cellsX(m.gapW.Value())
	aw := cellsX(m.actionW.Value())

	parts := []string{bar}
	if gw > 0 {
		parts = append(parts, strings.Repeat(" ", gw))
	}
	if aw > 0 && m.visibleAction != nil {
		parts = append(parts, m.renderAction(aw, geom))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	if mg := cellsX(m.margin); mg > 0 {
		out = lipgloss.NewStyle().Margin(0, mg).Render(out)
	}

	return m.composeTooltip(out)
}

// renderBar wraps the tab row in the shaped, filled bar container.
func (m Model) renderBar(row string, geom shape.Geometry) string {
	style := lipgloss.NewStyle().Border(geom.Border)

	var shadowRow string
	if m.fx != nil {
		// Glass panel: blurred tint or gradient with optional border;
		// shadow at full (doubled) strength for the larger surface.
		p := m.fx.Resolve(m.th.Surface, glassRampColumns)
		style = style.Background(p.Solid())
		if p.Border != nil {
			style = style.BorderForeground(*p.Border)
		} else {
			style = style.BorderForeground(m.th.Border)
		}
		if p.Shadow {
			shadowRow = m.shadowRow(lipgloss.Width(row)+2, p.ShadowColor, p.ShadowBlur)
		}
	} else {
		style = style.BorderForeground(m.th.Border)
		if m.background != nil {
			style = style.Background(*m.background)
		}
		if len(m.shadows) > 0 {
			s := m.shadows[0]
			shadowRow = m.shadowRow(lipgloss.Width(row)+2, s.Color, s.Blur)
		}
	}

	bar := style.Render(row)
	if shadowRow != "" {
		bar = lipgloss.JoinVertical(lipgloss.Left, bar, shadowRow)
	}
	return bar
}

// shadowRow renders a soft shadow line under a floating surface. Blur
// fades the shadow color toward the backdrop.
func (m Model) shadowRow(width int, c lipgloss.Color, blur float64) string {
	fade := blur / 40
	if fade > 0.8 {
		fade = 0.8
	}
	col := theme.Blend(c, m.th.Surface, fade)
	return lipgloss.NewStyle().
		Foreground(col).
		Render(strings.Repeat("▀", max(width, 0)))
}

// renderAction renders the floating action button at its current animated
// width. Icon changes crossfade rather than jump-cut.
func (m Model) renderAction(aw int, geom shape.Geometry) string {
	a := m.visibleAction
	inner := max(aw-2, 1)

	icon, opacity := m.crossfadeIcon()

	var bg, fg, borderFg lipgloss.Color
	var shadowRow string
	if m.fx != nil {
		// Blur and shadow run at half the container's parameters inside
		// the button (glass.ActionRatio).
		p := m.fx.Scaled(glass.ActionRatio).Resolve(m.th.Surface, glassRampColumns)
		bg = p.Solid()
		fg = m.th.FgBase
		borderFg = m.th.Border
		if p.Border != nil {
			borderFg = *p.Border
		}
		if p.Shadow {
			shadowRow = m.shadowRow(aw, p.ShadowColor, p.ShadowBlur)
		}
	} else {
		bg = m.th.Primary
		if a.Background != nil {
			bg = *a.Background
		}
		fg = m.th.OnPrimary
		if a.Foreground != nil {
			fg = *a.Foreground
		}
		borderFg = bg
	}

	content := icon
	if a.Extended && a.Label != "" {
		content = icon + " " + a.Label
	}
	faded := theme.Blend(bg, fg, opacity)
	body := lipgloss.NewStyle().
		Foreground(faded).
		Background(bg).
		Bold(true).
		Render(render.Center(content, inner))

	btn := lipgloss.NewStyle().
		Border(geom.Border).
		BorderForeground(borderFg).
		Render(body)

	if shadowRow != "" {
		btn = lipgloss.JoinVertical(lipgloss.Left, btn, shadowRow)
	}
	return btn
}

// crossfadeIcon returns the glyph and opacity for the action icon swap:
// the old icon fades out, the new one fades in, keyed by icon identity.
func (m Model) crossfadeIcon() (string, float64) {
	fade := m.iconFade.Value()
	if fade >= 1 || m.prevIcon == "" {
		return m.actionIcon, 1
	}
	if fade < 0.5 {
		return m.prevIcon, 1 - 2*fade
	}
	return m.actionIcon, 2*fade - 1
}

// composeTooltip overlays the pressed tab's tooltip on the bar's top row.
func (m Model) composeTooltip(out string) string {
	if m.tooltipTab < 0 {
		return out
	}
	text := m.tabs[m.tooltipTab].tooltip
	if text == "" {
		return out
	}

	spans, _ := m.layoutSpans()
	tip := m.th.S().Subtle.Render(" " + text + " ")
	w := lipgloss.Width(out)
	return overlay.Compose(out, overlay.AtOffset(tip, spans[m.tooltipTab].start, 0), w)
}
