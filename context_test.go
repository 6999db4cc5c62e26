package gg

import "testing"

func TestPushPopRestoresState(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetGlobalAlpha(0.4)
	dc.SetGlobalCompositeOperation(CompositeXor)
	dc.Translate(5, 5)

	dc.Push()
	dc.SetGlobalAlpha(1.0)
	dc.SetGlobalCompositeOperation(CompositeSourceOver)
	dc.Translate(1, 1)
	dc.Pop()

	if dc.GlobalAlpha() != 0.4 {
		t.Errorf("expected globalAlpha restored to 0.4, got %v", dc.GlobalAlpha())
	}
	if dc.GlobalCompositeOperation() != CompositeXor {
		t.Errorf("expected compositeOp restored to xor, got %v", dc.GlobalCompositeOperation())
	}
}

func TestDefaultStateMatchesCanvasDefaults(t *testing.T) {
	dc := NewContext(10, 10)
	if dc.GlobalAlpha() != 1 {
		t.Errorf("expected default globalAlpha 1, got %v", dc.GlobalAlpha())
	}
	if dc.GlobalCompositeOperation() != CompositeSourceOver {
		t.Errorf("expected default compositeOp source-over, got %v", dc.GlobalCompositeOperation())
	}
}
