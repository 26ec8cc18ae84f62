// Package record writes the growth of a structure as an MJPEG AVI video.
package record

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// ErrFrameSize is returned when a frame does not match the video size.
var ErrFrameSize = errors.New("record: frame size does not match video")

// FrameWriter is the subset of mjpeg.AviWriter the recorder needs.
type FrameWriter interface {
	AddFrame(jpegData []byte) error
	Close() error
}

// Recorder encodes frames as JPEG and appends them to a video stream.
type Recorder struct {
	out     FrameWriter
	bounds  image.Rectangle
	quality int
	buf     bytes.Buffer
	frames  int
}

// Create opens an AVI file at path for frames of w x h pixels.
func Create(path string, w, h, fps, quality int) (*Recorder, error) {
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return NewRecorder(aw, w, h, quality), nil
}

// NewRecorder wraps an existing frame writer.
func NewRecorder(out FrameWriter, w, h, quality int) *Recorder {
	if quality <= 0 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	return &Recorder{out: out, bounds: image.Rect(0, 0, w, h), quality: quality}
}

// AddFrame appends img as the next frame.
func (r *Recorder) AddFrame(img image.Image) error {
	b := img.Bounds()
	if b.Dx() != r.bounds.Dx() || b.Dy() != r.bounds.Dy() {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, b.Dx(), b.Dy(), r.bounds.Dx(), r.bounds.Dy())
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &jpeg.Options{Quality: r.quality}); err != nil {
		return fmt.Errorf("encode frame %d: %w", r.frames, err)
	}
	if err := r.out.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames reports how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalises the video.
func (r *Recorder) Close() error {
	return r.out.Close()
}
