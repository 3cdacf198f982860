package dock

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/dockbar/internal/testutil"
)

func barItems(t *testing.T, n int, opts ...Option) []Item {
	t.Helper()
	items := make([]Item, n)
	for i := range n {
		items[i] = testItem(t, opts...).With(WithTitle(tabTitle(i)))
	}
	return items
}

func tabTitle(i int) string {
	return [...]string{"Home", "Search", "Library", "Settings", "More"}[i]
}

// settle drives frame messages until every animation finishes.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for range 100 {
		if !m.animating() {
			return m
		}
		m, _ = m.Update(FrameMsg{Time: m.lastFrame.Add(50 * time.Millisecond)})
	}
	t.Fatal("animations did not settle")
	return m
}

func TestDerivesActionFromSelectedTab(t *testing.T) {
	action := NewActionButton("+", func() {})
	items := barItems(t, 3)
	items[1] = items[1].With(WithAction(action))

	m := New(items)
	assert.Nil(t, m.Action())

	m.Select(1)
	assert.Equal(t, action, m.Action())

	m.Select(2)
	assert.Nil(t, m.Action())
}

func TestActionRegionRoundTrip(t *testing.T) {
	items := barItems(t, 2)
	items[1] = items[1].With(WithAction(&ActionButton{Icon: "+", Size: 56}))

	m := New(items)
	assert.Equal(t, 0.0, m.actionW.Value())
	assert.Equal(t, 0.0, m.gapW.Value())

	// NoAction -> HasAction: both animate in.
	cmd := m.Select(1)
	require.NotNil(t, cmd)
	assert.Equal(t, 56.0, m.actionW.Target())
	assert.Equal(t, float64(DefaultGap), m.gapW.Target())

	m = settle(t, m)
	assert.Equal(t, 56.0, m.actionW.Value())
	assert.Equal(t, 16.0, m.gapW.Value())

	// HasAction -> NoAction: both animate out.
	m.Select(0)
	assert.Equal(t, 0.0, m.actionW.Target())
	assert.Equal(t, 0.0, m.gapW.Target())

	m = settle(t, m)
	assert.Equal(t, 0.0, m.actionW.Value())
	assert.Equal(t, 0.0, m.gapW.Value())
}

func TestActionSwapCrossfadesWithoutCollapse(t *testing.T) {
	items := barItems(t, 2)
	items[0] = items[0].With(WithAction(&ActionButton{Icon: "+", Size: 56}))
	items[1] = items[1].With(WithAction(&ActionButton{Icon: "✎", Size: 56}))

	m := New(items)
	m = settle(t, m)
	require.Equal(t, 56.0, m.actionW.Value())

	// HasAction -> HasAction with equal sizes: only the icon crossfades.
	m.Select(1)
	assert.Equal(t, 56.0, m.actionW.Target())
	assert.Equal(t, 56.0, m.actionW.Value())
	assert.False(t, m.iconFade.Done())
	assert.Equal(t, "+", m.prevIcon)
	assert.Equal(t, "✎", m.actionIcon)

	m = settle(t, m)
	glyph, opacity := m.crossfadeIcon()
	assert.Equal(t, "✎", glyph)
	assert.Equal(t, 1.0, opacity)
}

func TestSelectionRetargetsInFlightAnimation(t *testing.T) {
	items := barItems(t, 2)
	items[1] = items[1].With(WithAction(&ActionButton{Icon: "+", Size: 56}))

	m := New(items)
	m.Select(1)
	m, _ = m.Update(FrameMsg{Time: m.lastFrame.Add(100 * time.Millisecond)})
	mid := m.actionW.Value()
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 56.0)

	// Switching back mid-flight retargets from the current value.
	m.Select(0)
	assert.Equal(t, mid, m.actionW.Value())
	assert.Equal(t, 0.0, m.actionW.Target())
}

func TestActionRegionAnimatesOutAfterDeselection(t *testing.T) {
	items := barItems(t, 2)
	items[1] = items[1].With(WithAction(&ActionButton{Icon: "+", Size: 56}))

	m := New(items, WithSelected(1))
	m = settle(t, m)
	with := testutil.MeasureWidth(m.View())

	// Deselecting must not drop the button body in a single frame: the
	// width tween still holds its full size until frames advance.
	m.Select(0)
	assert.Equal(t, with, testutil.MeasureWidth(m.View()))

	m, _ = m.Update(FrameMsg{Time: m.lastFrame.Add(100 * time.Millisecond)})
	assert.Less(t, testutil.MeasureWidth(m.View()), with)

	m = settle(t, m)
	assert.Equal(t, with-18, testutil.MeasureWidth(m.View()))
}

func TestOutOfRangeSelectionPanics(t *testing.T) {
	items := barItems(t, 2)
	assert.Panics(t, func() {
		New(items, WithSelected(5))
	})
}

func TestTapFiresHapticsBeforeCallback(t *testing.T) {
	var order []string
	items := barItems(t, 2, WithHaptics())
	items[1] = items[1].With(WithOnTap(func() { order = append(order, "tap") }))

	m := New(items, WithFeedback(recordFeedback{&order}))
	m.tap(1)

	require.Equal(t, []string{"pulse", "tap"}, order)
}

type recordFeedback struct {
	order *[]string
}

func (r recordFeedback) Pulse() {
	*r.order = append(*r.order, "pulse")
}

func TestKeysTapNeighborTabs(t *testing.T) {
	var tapped []string
	items := barItems(t, 3)
	for i := range items {
		title := items[i].Title()
		items[i] = items[i].With(WithOnTap(func() { tapped = append(tapped, title) }))
	}

	m := New(items, WithSelected(1))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, []string{"Home", "Library"}, tapped)
}

func TestInputStartsFrameTicking(t *testing.T) {
	items := barItems(t, 2)

	m := New(items)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	assert.True(t, m.ticking)

	m = New(items)
	spans, _ := m.layoutSpans()
	m, cmd = m.Update(tea.MouseMsg{
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: spans[0].start,
	})
	require.NotNil(t, cmd)
	assert.True(t, m.ticking)
}

func TestMouseClickTapsHitTab(t *testing.T) {
	var tapped string
	items := barItems(t, 2)
	items[1] = items[1].With(WithOnTap(func() { tapped = "Search" }))

	m := New(items)
	spans, _ := m.layoutSpans()
	x := spans[1].start

	m, _ = m.Update(tea.MouseMsg{
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: x,
	})
	m, _ = m.Update(tea.MouseMsg{
		Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: x,
	})

	assert.Equal(t, "Search", tapped)
}

func TestLongPressRevealsTooltip(t *testing.T) {
	var tapped bool
	items := barItems(t, 1, WithTooltip("go home"))
	items[0] = items[0].With(WithOnTap(func() { tapped = true }))

	m := New(items)
	spans, _ := m.layoutSpans()
	m, _ = m.Update(tea.MouseMsg{
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: spans[0].start,
	})
	require.Equal(t, 0, m.pressedTab)

	m.pressedAt = m.pressedAt.Add(-time.Second)
	m, _ = m.Update(FrameMsg{Time: m.lastFrame.Add(50 * time.Millisecond)})
	assert.Equal(t, 0, m.tooltipTab)

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "go home")

	// Releasing after the threshold dismisses the tooltip without tapping.
	m, _ = m.Update(tea.MouseMsg{
		Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: spans[0].start,
	})
	assert.Equal(t, -1, m.tooltipTab)
	assert.False(t, tapped)
}

func TestEndToEndUnderlineScenario(t *testing.T) {
	// 4 tabs, selected index 2, underline indicator, labels below icons:
	// tab 2 stacks icon, title, 5-cell underline; the others show none.
	items := barItems(t, 4,
		WithIndicator(IndicatorUnderline),
		WithLabelPosition(LabelBottom),
	)

	m := New(items, WithSelected(2))
	view := testutil.StripANSI(m.View())

	assert.Equal(t, 1, strings.Count(view, " ───── "))

	iconLine := testutil.LineIndex(view, "⌂")
	titleLine := testutil.LineIndex(view, "Library")
	barLine := testutil.LineIndex(view, " ───── ")
	require.GreaterOrEqual(t, iconLine, 0)
	assert.Less(t, iconLine, titleLine)
	assert.Less(t, titleLine, barLine)
}

func TestViewCollapsesActionRegionWhenAbsent(t *testing.T) {
	items := barItems(t, 2)
	items[1] = items[1].With(WithAction(&ActionButton{Icon: "+", Size: 56}))

	m := New(items)
	without := testutil.MeasureWidth(m.View())

	m.Select(1)
	m = settle(t, m)
	with := testutil.MeasureWidth(m.View())

	// 56 units of button plus 16 units of gap project to 14 + 4 cells.
	assert.Equal(t, without+18, with)
}

func TestSetTabsKeepsSelectionAndRetargets(t *testing.T) {
	items := barItems(t, 2)
	m := New(items, WithSelected(1))

	next := barItems(t, 3)
	next[1] = next[1].With(WithAction(&ActionButton{Icon: "+", Size: 40}))
	m.SetTabs(next)

	assert.Equal(t, 1, m.Selected())
	require.NotNil(t, m.Action())
	assert.Equal(t, 40.0, m.actionW.Target())
}
