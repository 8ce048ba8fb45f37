package platform

import (
	"testing"

	"github.com/go-drift/searchfield/pkg/graphics"
)

func TestTextEditingController_InsertRespectsEditable(t *testing.T) {
	c := NewTextEditingController("")
	if !c.Editable() {
		t.Fatal("controller should start editable")
	}
	if !c.Insert("go") {
		t.Fatal("Insert refused while editable")
	}
	c.SetEditable(false)
	if c.Insert("pher") {
		t.Fatal("Insert accepted while not editable")
	}
	if c.Text() != "go" {
		t.Fatalf("Text = %q, want go", c.Text())
	}
}

func TestTextEditingController_InsertReplacesSelection(t *testing.T) {
	c := NewTextEditingController("hello world")
	c.SetSelection(TextSelection{BaseOffset: 6, ExtentOffset: 11})
	c.Insert("gopher")
	if c.Text() != "hello gopher" {
		t.Fatalf("Text = %q", c.Text())
	}
	if sel := c.Selection(); !sel.IsCollapsed() || sel.BaseOffset != 12 {
		t.Fatalf("Selection = %+v", sel)
	}
}

func TestTextEditingController_Listeners(t *testing.T) {
	c := NewTextEditingController("")
	calls := 0
	unsubscribe := c.AddListener(func() { calls++ })
	c.SetText("a")
	c.SetEditable(false)
	c.SetEditable(false)
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	unsubscribe()
	c.SetText("b")
	if calls != 2 {
		t.Fatalf("listener called after unsubscribe")
	}
}

func TestTextEditingController_SetTextClampsSelection(t *testing.T) {
	c := NewTextEditingController("abcdef")
	c.SetText("ab")
	if sel := c.Selection(); sel.BaseOffset != 2 || sel.ExtentOffset != 2 {
		t.Fatalf("Selection = %+v", sel)
	}
}

func TestTextEditingController_PaintText(t *testing.T) {
	c := NewTextEditingController("abcd")
	c.SetFont(graphics.FixedFont{PointSize: 14, Ascent: 10, Descent: 4, RuneWidth: 8})
	c.SetSelection(TextSelection{BaseOffset: 1, ExtentOffset: 3})

	var rec graphics.PictureRecorder
	canvas := rec.BeginRecording(graphics.Size{Width: 200, Height: 40})
	c.PaintText(canvas, graphics.Rect{Left: 10, Top: 10, Right: 150, Bottom: 30})
	ops := rec.EndRecording().Ops()

	var highlight, text *graphics.DisplayOp
	for i := range ops {
		switch ops[i].Op {
		case graphics.OpDrawRect:
			highlight = &ops[i]
		case graphics.OpDrawText:
			text = &ops[i]
		}
	}
	if highlight == nil || text == nil {
		t.Fatalf("missing ops: %+v", ops)
	}
	if highlight.Rect.Left != 18 || highlight.Rect.Right != 34 {
		t.Errorf("highlight = %+v, want x 18..34", highlight.Rect)
	}
	if highlight.Paint.Color != DefaultSelectionColor {
		t.Errorf("highlight color = %v", highlight.Paint.Color)
	}
	// baseline = top + (height + ascent - descent)/2 = 10 + (20+10-4)/2
	if text.Offset != (graphics.Offset{X: 10, Y: 23}) {
		t.Errorf("text origin = %+v", text.Offset)
	}
}

func TestTextEditingController_PaintWithoutFont(t *testing.T) {
	c := NewTextEditingController("abc")
	var rec graphics.PictureRecorder
	c.PaintText(rec.BeginRecording(graphics.Size{Width: 10, Height: 10}), graphics.Rect{Right: 10, Bottom: 10})
	if ops := rec.EndRecording().Ops(); len(ops) != 0 {
		t.Fatalf("painted %d ops without a font", len(ops))
	}
}

func TestTextEditingController_Caret(t *testing.T) {
	c := NewTextEditingController("abcd")
	c.SetFont(graphics.FixedFont{PointSize: 14, Ascent: 10, Descent: 4, RuneWidth: 8})
	bounds := graphics.Rect{Left: 10, Top: 10, Right: 150, Bottom: 30}

	caret := func() *graphics.DisplayOp {
		var rec graphics.PictureRecorder
		c.PaintText(rec.BeginRecording(graphics.Size{Width: 200, Height: 40}), bounds)
		ops := rec.EndRecording().Ops()
		for i := range ops {
			if ops[i].Op == graphics.OpDrawRect {
				return &ops[i]
			}
		}
		return nil
	}

	if caret() != nil {
		t.Fatal("caret painted before SetCaretVisible")
	}
	c.SetCaretVisible(true)
	op := caret()
	if op == nil {
		t.Fatal("caret not painted")
	}
	if op.Rect.Left != 42 || op.Rect.Width() != 1 {
		t.Errorf("caret rect = %+v, want x=42 width 1", op.Rect)
	}
	c.SetEditable(false)
	if caret() != nil {
		t.Error("caret painted while not editable")
	}
}
