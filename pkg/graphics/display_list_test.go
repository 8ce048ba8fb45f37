package graphics

import (
	"image"
	"testing"
)

func TestPictureRecorder_RecordsAndReplays(t *testing.T) {
	var rec PictureRecorder
	c := rec.BeginRecording(Size{Width: 100, Height: 40})
	c.Save()
	c.Translate(5, 6)
	c.ClipRRect(PillRRect(RectFromLTWH(0, 0, 100, 40)))
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorRed))
	c.DrawCircle(Offset{X: 20, Y: 20}, 15, FillPaint(ColorBlue))
	c.SaveLayerAlpha(RectFromLTWH(0, 0, 100, 40), 0.5)
	c.DrawImageRect(image.NewRGBA(image.Rect(0, 0, 4, 4)), Rect{}, RectFromLTWH(1, 2, 3, 4), FilterQualityLow)
	c.Restore()
	c.DrawText("hi", Offset{X: 1, Y: 2}, FixedFont{RuneWidth: 7}, ColorBlack)
	c.Restore()
	list := rec.EndRecording()

	ops := list.Ops()
	want := []string{OpSave, OpTranslate, OpClipRRect, OpDrawRect, OpDrawCircle, OpSaveLayer, OpDrawImageRect, OpRestore, OpDrawText, OpRestore}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if op.Op != want[i] {
			t.Errorf("op %d = %s, want %s", i, op.Op, want[i])
		}
	}
	if ops[2].Radius != 20 {
		t.Errorf("clip radius = %v, want 20", ops[2].Radius)
	}
	if ops[5].Alpha != 0.5 {
		t.Errorf("layer alpha = %v", ops[5].Alpha)
	}

	var replay PictureRecorder
	list.Paint(replay.BeginRecording(list.Size()))
	again := replay.EndRecording().Ops()
	if len(again) != len(ops) {
		t.Fatalf("replay recorded %d ops, want %d", len(again), len(ops))
	}
	for i := range ops {
		if again[i].Op != ops[i].Op || again[i].Rect != ops[i].Rect {
			t.Errorf("replayed op %d = %+v, want %+v", i, again[i], ops[i])
		}
	}
}

func TestPictureRecorder_PaintIsCopied(t *testing.T) {
	var rec PictureRecorder
	c := rec.BeginRecording(Size{Width: 10, Height: 10})
	g := NewLinearGradient(Offset{}, Offset{X: 10}, GradientStop{0, ColorWhite}, GradientStop{1, ColorBlack})
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), Paint{Gradient: g})
	g.Stops[0].Color = ColorRed
	ops := rec.EndRecording().Ops()
	if got := ops[0].Paint.Gradient.Stops[0].Color; got != ColorWhite {
		t.Fatalf("recorded stop mutated to %v", got)
	}
}

func TestPictureRecorder_EndWithoutBegin(t *testing.T) {
	var rec PictureRecorder
	if ops := rec.EndRecording().Ops(); len(ops) != 0 {
		t.Fatalf("ops = %v", ops)
	}
}
