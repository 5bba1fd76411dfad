package ui

import (
	"sync"

	"github.com/zhubert/songbook/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// NarrowWidth is the breakpoint below which only one pane is shown
	NarrowWidth int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	Narrow        bool
	ListWidth     int
	DetailWidth   int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
			NarrowWidth:  DefaultNarrowWidth,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// SetNarrowWidth changes the single-pane breakpoint. Takes effect on the
// next UpdateTerminalSize.
func (v *ViewContext) SetNarrowWidth(width int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if width <= 0 {
		width = DefaultNarrowWidth
	}
	v.NarrowWidth = width
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	// Narrow terminals give the whole width to whichever pane is showing
	v.Narrow = width < v.NarrowWidth
	if v.Narrow {
		v.ListWidth = width
		v.DetailWidth = width
	} else {
		v.ListWidth = max(width/ListWidthRatio, MinListWidth)
		v.DetailWidth = width - v.ListWidth
	}

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"narrow", v.Narrow,
		"listWidth", v.ListWidth,
		"detailWidth", v.DetailWidth,
	)
}

// IsNarrow reports whether the layout is single-pane.
func (v *ViewContext) IsNarrow() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Narrow
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
