package effects

import "testing"

func TestNewBundle_EffectArithmetic(t *testing.T) {
	t.Parallel()

	// bs=70, bm=75, rs=80, rm=85.
	b := NewBundle(70, 75, 80, 85)

	if b.RecognitionEffect != 10 {
		t.Errorf("RecognitionEffect = %v, want 10", b.RecognitionEffect)
	}
	if b.ArchitectureEffect != 5 {
		t.Errorf("ArchitectureEffect = %v, want 5", b.ArchitectureEffect)
	}
	if b.Interaction != 0 {
		t.Errorf("Interaction = %v, want 0", b.Interaction)
	}
}

func TestNewBundle_NonZeroInteraction(t *testing.T) {
	t.Parallel()

	// Multi-agent helps recognition (+9) but not base (0).
	b := NewBundle(83, 83, 72, 81)
	if b.Interaction != 9 {
		t.Errorf("Interaction = %v, want 9", b.Interaction)
	}
}

func TestSourceString(t *testing.T) {
	t.Parallel()

	if got := DataDriven.String(); got != "data-driven" {
		t.Errorf("DataDriven.String() = %q", got)
	}
	if got := Fallback.String(); got != "fallback" {
		t.Errorf("Fallback.String() = %q", got)
	}
}
