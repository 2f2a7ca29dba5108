package ffprobe

import (
	"context"
	"sync"
)

// DurationProber is satisfied by *Prober and by test fakes.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// MediaFile pairs a path with its lazily probed duration. The first successful
// probe is cached; failures are not, so a later call probes again.
type MediaFile struct {
	Path string

	mu       sync.Mutex
	probed   bool
	duration float64
}

// NewMediaFile returns a MediaFile for path.
func NewMediaFile(path string) *MediaFile {
	return &MediaFile{Path: path}
}

// Duration returns the cached duration or probes it with p.
func (m *MediaFile) Duration(ctx context.Context, p DurationProber) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.probed {
		return m.duration, nil
	}
	seconds, err := p.Duration(ctx, m.Path)
	if err != nil {
		return 0, err
	}
	m.duration = seconds
	m.probed = true
	return seconds, nil
}
