// Package uitest provides a headless harness for exercising widget trees:
// it drives real frames through the engine against a recording renderer,
// dispatches synthetic input, and finds elements for assertions.
package uitest

import (
	"sync"

	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/rendering"
)

// Frame is one recorded renderer invocation.
type Frame struct {
	List   *rendering.DisplayList
	Damage []geometry.Rect
}

// RecordingRenderer captures every display list handed to it instead of
// drawing. An injected error simulates a backend failure.
type RecordingRenderer struct {
	mu     sync.Mutex
	frames []Frame
	err    error
}

// NewRecordingRenderer creates an empty recorder.
func NewRecordingRenderer() *RecordingRenderer {
	return &RecordingRenderer{}
}

// SetError makes subsequent Render calls fail with err until cleared
// with nil. Failed frames are not recorded.
func (r *RecordingRenderer) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Render records the frame, or fails with the injected error.
func (r *RecordingRenderer) Render(list *rendering.DisplayList, damage *rendering.DamageRegion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, Frame{
		List:   list,
		Damage: append([]geometry.Rect(nil), damage.Rects()...),
	})
	return nil
}

// FrameCount returns how many frames rendered successfully.
func (r *RecordingRenderer) FrameCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// LastFrame returns the most recent successful frame.
func (r *RecordingRenderer) LastFrame() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}
