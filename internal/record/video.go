package record

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// Video writes presented frames into an MJPEG AVI file.
type Video struct {
	writer mjpeg.AviWriter
	buf    bytes.Buffer
	opts   *jpeg.Options
	frames int
	err    error
}

// NewVideo creates path for a w*h video played back at fps.
func NewVideo(path string, w, h, fps int) (*Video, error) {
	writer, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &Video{writer: writer, opts: &jpeg.Options{Quality: 90}}, nil
}

// AddFrame encodes img as the next frame. After the first failure further
// frames are dropped and the error is reported by Close.
func (v *Video) AddFrame(img *image.RGBA) {
	if v.err != nil {
		return
	}
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, v.opts); err != nil {
		v.err = fmt.Errorf("encode frame %d: %w", v.frames, err)
		return
	}
	if err := v.writer.AddFrame(v.buf.Bytes()); err != nil {
		v.err = fmt.Errorf("write frame %d: %w", v.frames, err)
		return
	}
	v.frames++
}

// Frames returns the number of frames written.
func (v *Video) Frames() int { return v.frames }

// Close finalizes the AVI file.
func (v *Video) Close() error {
	if err := v.writer.Close(); err != nil && v.err == nil {
		v.err = fmt.Errorf("close video: %w", err)
	}
	return v.err
}
