// Package feedback turns trigger outcomes into toasts, haptic pulses and sounds.
package feedback

// Toaster holds a single transient message. A new Show replaces the old one.
type Toaster struct {
	Duration float32 // seconds a toast stays up
	FadeTime float32 // seconds spent fading out at the end

	text      string
	remaining float32
}

func NewToaster(duration float32) *Toaster {
	fade := duration / 4
	if fade > 0.5 {
		fade = 0.5
	}
	return &Toaster{Duration: duration, FadeTime: fade}
}

// Show puts text on screen for the full duration.
func (t *Toaster) Show(text string) {
	t.text = text
	t.remaining = t.Duration
}

// Update ages the current toast by dt seconds.
func (t *Toaster) Update(dt float32) {
	if t.remaining <= 0 {
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = 0
		t.text = ""
	}
}

// Current returns the visible text and its opacity in [0, 1].
func (t *Toaster) Current() (text string, alpha float32, ok bool) {
	if t.remaining <= 0 {
		return "", 0, false
	}
	alpha = 1
	if t.FadeTime > 0 && t.remaining < t.FadeTime {
		alpha = t.remaining / t.FadeTime
	}
	return t.text, alpha, true
}
