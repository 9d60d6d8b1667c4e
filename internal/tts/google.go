package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	translateTTSURL = "https://translate.google.com/translate_tts"

	// The endpoint rejects queries much longer than this, so long
	// replies are synthesized chunk by chunk.
	maxChunkRunes = 200
)

// Google synthesizes speech through the Google Translate TTS endpoint.
// MP3 frames from consecutive chunks are concatenated into one payload,
// which Telegram plays as a single voice message.
type Google struct {
	language string
	client   *http.Client
}

// NewGoogle creates a Google Translate TTS client for the given language code.
func NewGoogle(language string) *Google {
	return &Google{
		language: language,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Synthesize returns MP3 audio for the given text
func (g *Google) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrSynthesisFailed)
	}

	var audio bytes.Buffer
	for _, chunk := range splitChunks(text, maxChunkRunes) {
		data, err := g.fetchChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		audio.Write(data)
	}

	return audio.Bytes(), nil
}

func (g *Google) fetchChunk(ctx context.Context, chunk string) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", g.language)
	params.Set("q", chunk)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, translateTTSURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSynthesisFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	return data, nil
}

// splitChunks breaks text into rune-bounded chunks, preferring to cut at
// spaces so words are not split mid-syllable.
func splitChunks(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > 0 {
		if len(runes) <= limit {
			chunks = append(chunks, string(runes))
			break
		}

		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == ' ' {
				cut = i
				break
			}
		}

		chunks = append(chunks, strings.TrimSpace(string(runes[:cut])))
		runes = runes[cut:]
	}
	return chunks
}
