package lazyimg

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCrossFade_ImageFadesInWhilePlaceholderHolds(t *testing.T) {
	f := NewCrossFade(1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	f.Update(0.5)

	if math.Abs(f.ImageAlpha()-0.5) > 0.01 {
		t.Errorf("image alpha = %f, want ~0.5", f.ImageAlpha())
	}
	if f.PlaceholderAlpha() != 1 {
		t.Errorf("placeholder alpha = %f, want 1 during the delay", f.PlaceholderAlpha())
	}
}

func TestCrossFade_PlaceholderHidesAfterDelay(t *testing.T) {
	f := NewCrossFade(1.0, ease.Linear)

	f.Update(0.5)
	f.Update(0.5) // image fully in, delay consumed
	if math.Abs(f.ImageAlpha()-1) > 0.01 {
		t.Fatalf("image alpha = %f, want ~1", f.ImageAlpha())
	}
	if f.Done {
		t.Fatal("Done before the placeholder faded")
	}

	f.Update(0.5)
	if math.Abs(f.PlaceholderAlpha()-0.5) > 0.01 {
		t.Errorf("placeholder alpha = %f, want ~0.5", f.PlaceholderAlpha())
	}

	f.Update(0.5)
	if math.Abs(f.PlaceholderAlpha()) > 0.01 {
		t.Errorf("placeholder alpha = %f, want ~0", f.PlaceholderAlpha())
	}
	if !f.Done {
		t.Error("expected Done after both layers finished")
	}
}

// A frame that crosses the delay boundary spends its remainder on the
// placeholder fade instead of dropping it.
func TestCrossFade_CrossingFrameCarriesLeftover(t *testing.T) {
	f := NewCrossFade(0.5, ease.Linear)

	f.Update(0.75)

	if math.Abs(f.PlaceholderAlpha()-0.5) > 0.01 {
		t.Errorf("placeholder alpha = %f, want ~0.5 (0.25s past the delay)", f.PlaceholderAlpha())
	}
}

func TestCrossFade_UpdateAfterDoneIsNoop(t *testing.T) {
	f := NewCrossFade(0.5, ease.Linear)
	f.Update(0.5)
	f.Update(0.5)
	if !f.Done {
		t.Fatal("expected Done")
	}

	f.Update(1.0)

	if math.Abs(f.ImageAlpha()-1) > 0.01 || math.Abs(f.PlaceholderAlpha()) > 0.01 {
		t.Error("alphas changed after Done")
	}
}

func TestNewCrossFade_ZeroDurationUsesDefault(t *testing.T) {
	f := NewCrossFade(0, nil)

	f.Update(DefaultFadeDuration)

	if math.Abs(f.ImageAlpha()-1) > 0.01 {
		t.Errorf("image alpha = %f, want ~1 after the default duration", f.ImageAlpha())
	}
}

func TestStartFade_NilUnlessFading(t *testing.T) {
	if f := StartFade(Presentation{ShouldFade: false}, nil); f != nil {
		t.Error("StartFade returned a transition for an instant snap")
	}
	if f := StartFade(Presentation{ShouldFade: true, FadeDuration: 0.25}, nil); f == nil {
		t.Error("StartFade returned nil for a fading presentation")
	}
}
