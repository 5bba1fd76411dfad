package lyrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zhubert/songbook/internal/errors"
)

// DefaultLRCLIBEndpoint is the public LRCLIB API.
const DefaultLRCLIBEndpoint = "https://lrclib.net/api"

// LRCLIBProvider looks lyrics up in the LRCLIB database by title, trying
// the display title first and then the original one.
type LRCLIBProvider struct {
	Endpoint string
	client   *http.Client
}

// NewLRCLIBProvider returns a provider with its own HTTP client.
func NewLRCLIBProvider(timeout time.Duration) *LRCLIBProvider {
	return &LRCLIBProvider{Endpoint: DefaultLRCLIBEndpoint, client: newHTTPClient(timeout)}
}

func (p *LRCLIBProvider) Name() string {
	return "lrclib"
}

type lrclibTrack struct {
	TrackName    string `json:"trackName"`
	Instrumental bool   `json:"instrumental"`
	PlainLyrics  string `json:"plainLyrics"`
}

func (p *LRCLIBProvider) Generate(ctx context.Context, displayTitle, alternateTitle string) (string, error) {
	for _, title := range []string{displayTitle, alternateTitle} {
		if title == "" {
			continue
		}
		text, err := p.search(ctx, title)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
	}
	return "", errors.GenerationEmpty(displayTitle)
}

func (p *LRCLIBProvider) search(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("track_name", cleanTitle(title))
	reqURL := fmt.Sprintf("%s/search?%s", strings.TrimRight(p.Endpoint, "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "songbook (https://github.com/zhubert/songbook)")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errors.E(errors.Op("lyrics.LRCLIB"), errors.KindNetwork, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.E(errors.Op("lyrics.LRCLIB"), errors.KindNetwork, fmt.Sprintf("status %d", resp.StatusCode))
	}

	var tracks []lrclibTrack
	if err := json.NewDecoder(resp.Body).Decode(&tracks); err != nil {
		return "", errors.E(errors.Op("lyrics.LRCLIB"), errors.KindInvalid, "failed to parse response", err)
	}
	for _, t := range tracks {
		if !t.Instrumental && strings.TrimSpace(t.PlainLyrics) != "" {
			return strings.TrimSpace(t.PlainLyrics), nil
		}
	}
	return "", nil
}

// cleanTitle drops punctuation LRCLIB search treats as noise.
func cleanTitle(s string) string {
	replacer := strings.NewReplacer("!", "", "?", "", ",", "", "\"", "")
	return strings.Join(strings.Fields(replacer.Replace(s)), " ")
}
