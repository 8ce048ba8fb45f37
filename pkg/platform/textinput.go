package platform

import (
	"sync"

	"github.com/go-drift/searchfield/pkg/graphics"
)

// TextSurface is the editable text capability a widget decorates.
type TextSurface interface {
	Text() string
	Editable() bool
	SetEditable(editable bool)
	Font() graphics.Font
}

// TextPainter is implemented by surfaces that draw their own text, caret
// and selection. bounds is the text area inside the widget's insets.
type TextPainter interface {
	PaintText(canvas graphics.Canvas, bounds graphics.Rect)
}

// TextSelection represents the current text selection.
type TextSelection struct {
	// BaseOffset is the position where the selection started.
	BaseOffset int
	// ExtentOffset is the position where the selection ended.
	ExtentOffset int
}

// Start returns the smaller of BaseOffset and ExtentOffset.
func (s TextSelection) Start() int {
	if s.BaseOffset < s.ExtentOffset {
		return s.BaseOffset
	}
	return s.ExtentOffset
}

// End returns the larger of BaseOffset and ExtentOffset.
func (s TextSelection) End() int {
	if s.BaseOffset > s.ExtentOffset {
		return s.BaseOffset
	}
	return s.ExtentOffset
}

// IsCollapsed returns true if the selection has no length (just a cursor).
func (s TextSelection) IsCollapsed() bool {
	return s.BaseOffset == s.ExtentOffset
}

// IsValid returns true if both offsets are non-negative.
func (s TextSelection) IsValid() bool {
	return s.BaseOffset >= 0 && s.ExtentOffset >= 0
}

// TextSelectionCollapsed creates a collapsed selection at the given offset.
func TextSelectionCollapsed(offset int) TextSelection {
	return TextSelection{
		BaseOffset:   offset,
		ExtentOffset: offset,
	}
}

// TextEditingValue represents the current text editing state.
type TextEditingValue struct {
	// Text is the current text content.
	Text string
	// Selection is the current selection within the text.
	Selection TextSelection
}

// TextEditingController manages text input state. It implements TextSurface
// and TextPainter. Offsets are byte offsets into the text.
type TextEditingController struct {
	value          TextEditingValue
	editable       bool
	caretVisible   bool
	font           graphics.Font
	textColor      graphics.Color
	selectionColor graphics.Color
	listeners      map[int]func()
	nextListenerID int
	mu             sync.RWMutex
}

// Default colors used by PaintText.
const (
	DefaultTextColor      = graphics.ColorBlack
	DefaultSelectionColor = graphics.Color(0xFF50C7FF)
)

// NewTextEditingController creates a new text editing controller with the given initial text.
// The controller starts editable.
func NewTextEditingController(text string) *TextEditingController {
	return &TextEditingController{
		value: TextEditingValue{
			Text:      text,
			Selection: TextSelectionCollapsed(len(text)),
		},
		editable:       true,
		textColor:      DefaultTextColor,
		selectionColor: DefaultSelectionColor,
		listeners:      make(map[int]func()),
	}
}

// Editable reports whether user edits are accepted.
func (c *TextEditingController) Editable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.editable
}

// SetEditable enables or disables user edits.
func (c *TextEditingController) SetEditable(editable bool) {
	c.mu.Lock()
	changed := c.editable != editable
	c.editable = editable
	c.mu.Unlock()
	if changed {
		c.notifyListeners()
	}
}

// Font returns the font used to measure and draw the text. May be nil.
func (c *TextEditingController) Font() graphics.Font {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.font
}

// SetFont sets the font used to measure and draw the text.
func (c *TextEditingController) SetFont(font graphics.Font) {
	c.mu.Lock()
	c.font = font
	c.mu.Unlock()
	c.notifyListeners()
}

// SetColors sets the text and selection highlight colors.
func (c *TextEditingController) SetColors(text, selection graphics.Color) {
	c.mu.Lock()
	c.textColor = text
	c.selectionColor = selection
	c.mu.Unlock()
	c.notifyListeners()
}

// SetCaretVisible shows or hides the caret drawn by PaintText.
func (c *TextEditingController) SetCaretVisible(visible bool) {
	c.mu.Lock()
	c.caretVisible = visible
	c.mu.Unlock()
	c.notifyListeners()
}

// Insert replaces the selection with s and collapses the selection after it.
// It returns false without changing anything when the controller is not editable.
func (c *TextEditingController) Insert(s string) bool {
	c.mu.Lock()
	if !c.editable {
		c.mu.Unlock()
		return false
	}
	text := c.value.Text
	start := clampOffset(c.value.Selection.Start(), len(text))
	end := clampOffset(c.value.Selection.End(), len(text))
	c.value.Text = text[:start] + s + text[end:]
	c.value.Selection = TextSelectionCollapsed(start + len(s))
	c.mu.Unlock()
	c.notifyListeners()
	return true
}

// PaintText draws the selection highlight, the text and the caret inside bounds.
func (c *TextEditingController) PaintText(canvas graphics.Canvas, bounds graphics.Rect) {
	c.mu.RLock()
	value := c.value
	font := c.font
	caret := c.caretVisible && c.editable
	textColor, selectionColor := c.textColor, c.selectionColor
	c.mu.RUnlock()

	if font == nil || bounds.IsEmpty() {
		return
	}
	m := font.Metrics()
	baseline := bounds.Top + (bounds.Height()+m.Ascent-m.Descent)/2
	text := value.Text
	start := clampOffset(value.Selection.Start(), len(text))
	end := clampOffset(value.Selection.End(), len(text))

	canvas.Save()
	canvas.ClipRect(bounds)
	if value.Selection.IsValid() && start != end {
		x0 := bounds.Left + font.Advance(text[:start])
		x1 := bounds.Left + font.Advance(text[:end])
		highlight := graphics.Rect{Left: x0, Top: baseline - m.Ascent, Right: x1, Bottom: baseline + m.Descent}
		canvas.DrawRect(highlight, graphics.FillPaint(selectionColor))
	}
	if text != "" {
		canvas.DrawText(text, graphics.Offset{X: bounds.Left, Y: baseline}, font, textColor)
	}
	if caret && start == end {
		x := bounds.Left + font.Advance(text[:start])
		canvas.DrawRect(graphics.Rect{Left: x, Top: baseline - m.Ascent, Right: x + 1, Bottom: baseline + m.Descent}, graphics.FillPaint(textColor))
	}
	canvas.Restore()
}

func clampOffset(offset, n int) int {
	if offset < 0 {
		return 0
	}
	if offset > n {
		return n
	}
	return offset
}

// Text returns the current text content.
func (c *TextEditingController) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value.Text
}

// SetText sets the text content.
func (c *TextEditingController) SetText(text string) {
	c.mu.Lock()
	c.value.Text = text
	// Move selection to end if it's beyond the text length
	if c.value.Selection.BaseOffset > len(text) {
		c.value.Selection.BaseOffset = len(text)
	}
	if c.value.Selection.ExtentOffset > len(text) {
		c.value.Selection.ExtentOffset = len(text)
	}
	c.mu.Unlock()
	c.notifyListeners()
}

// Selection returns the current selection.
func (c *TextEditingController) Selection() TextSelection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value.Selection
}

// SetSelection sets the selection.
func (c *TextEditingController) SetSelection(selection TextSelection) {
	c.mu.Lock()
	c.value.Selection = selection
	c.mu.Unlock()
	c.notifyListeners()
}

// AddListener adds a callback that is called when the value changes.
// Returns an unsubscribe function.
func (c *TextEditingController) AddListener(fn func()) func() {
	c.mu.Lock()
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// notifyListeners calls all registered listeners.
func (c *TextEditingController) notifyListeners() {
	c.mu.RLock()
	listeners := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
