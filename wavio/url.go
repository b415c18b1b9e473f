package wavio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-audioedit/dsp/clip"
)

// MaxDownloadBytes caps remote payloads (256 MiB). The decoder needs a
// seekable buffer, so the body is read into memory first.
const MaxDownloadBytes = 256 << 20

// LoadURL fetches url and decodes it as WAV audio. The request honors
// ctx for cancellation.
func LoadURL(ctx context.Context, client *http.Client, url string) (*clip.Clip, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if len(body) > MaxDownloadBytes {
		return nil, fmt.Errorf("fetch %s: payload exceeds %d bytes", url, MaxDownloadBytes)
	}

	log.WithFields(logrus.Fields{"url": url, "bytes": len(body)}).Debug("Fetched remote audio")

	c, err := LoadReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return c, nil
}

// SourceLoader resolves a source string as either an HTTP(S) URL or a
// local file path. It satisfies the engine's Loader interface.
type SourceLoader struct {
	// Client is used for URL sources; nil means http.DefaultClient.
	Client *http.Client
}

// Load decodes the given source into a clip.
func (l *SourceLoader) Load(ctx context.Context, src string) (*clip.Clip, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return LoadURL(ctx, l.Client, src)
	}
	return LoadFile(src)
}
