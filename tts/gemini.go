package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/safwanpaleri/roundtable/logger"
	"github.com/safwanpaleri/roundtable/providers"
)

const (
	defaultTTSModel = "gemini-2.5-flash-preview-tts"
	defaultVoice    = "Kore"

	// Gemini TTS always returns 16-bit PCM mono at 24 kHz.
	geminiSampleRate = 24000
)

// GeminiService implements Service using the Gemini generateContent API
// with audio response modalities.
type GeminiService struct {
	providers.BaseProvider
	model   string
	baseURL string
	apiKey  string
}

// NewGeminiService creates a Gemini TTS service. The API key is read
// from GEMINI_API_KEY, falling back to GOOGLE_API_KEY.
func NewGeminiService(model, baseURL string) *GeminiService {
	if model == "" {
		model = defaultTTSModel
	}
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	base, apiKey := providers.NewBaseProviderWithAPIKey("gemini-tts", "GEMINI_API_KEY", "GOOGLE_API_KEY")

	return &GeminiService{
		BaseProvider: base,
		model:        model,
		baseURL:      baseURL,
		apiKey:       apiKey,
	}
}

// Name returns the service identifier
func (s *GeminiService) Name() string {
	return "gemini-tts"
}

type geminiTTSRequest struct {
	Contents         []geminiTTSContent `json:"contents"`
	GenerationConfig geminiTTSGenConfig `json:"generationConfig"`
}

type geminiTTSContent struct {
	Parts []geminiTTSPart `json:"parts"`
}

type geminiTTSPart struct {
	Text       string               `json:"text,omitempty"`
	InlineData *geminiTTSInlineData `json:"inlineData,omitempty"`
}

type geminiTTSInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiTTSGenConfig struct {
	ResponseModalities []string        `json:"responseModalities"`
	SpeechConfig       geminiSpeechCfg `json:"speechConfig"`
}

type geminiSpeechCfg struct {
	VoiceConfig geminiVoiceCfg `json:"voiceConfig"`
}

type geminiVoiceCfg struct {
	PrebuiltVoiceConfig geminiPrebuiltVoice `json:"prebuiltVoiceConfig"`
}

type geminiPrebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

type geminiTTSResponse struct {
	Candidates []struct {
		Content geminiTTSContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Synthesize renders text to 16-bit PCM mono audio at 24 kHz.
func (s *GeminiService) Synthesize(ctx context.Context, text string, cfg SynthesisConfig) (io.ReadCloser, error) {
	start := time.Now()

	voice := cfg.Voice
	if voice == "" {
		voice = defaultVoice
	}

	ttsReq := geminiTTSRequest{
		Contents: []geminiTTSContent{
			{Parts: []geminiTTSPart{{Text: text}}},
		},
		GenerationConfig: geminiTTSGenConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: geminiSpeechCfg{
				VoiceConfig: geminiVoiceCfg{
					PrebuiltVoiceConfig: geminiPrebuiltVoice{VoiceName: voice},
				},
			},
		},
	}

	headers := providers.RequestHeaders{
		"Content-Type": "application/json",
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)

	logger.LLMCall(s.Name(), "synthesize", 1, "voice", voice, "chars", len(text))

	respBytes, err := s.MakeJSONRequest(ctx, url, ttsReq, headers, s.Name())
	if err != nil {
		logger.LLMError(s.Name(), "synthesize", err)
		return nil, err
	}

	var ttsResp geminiTTSResponse
	if err := json.Unmarshal(respBytes, &ttsResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal TTS response: %w", err)
	}
	if ttsResp.Error != nil {
		return nil, fmt.Errorf("gemini TTS API error: %s", ttsResp.Error.Message)
	}

	audio, err := extractAudio(&ttsResp)
	if err != nil {
		return nil, err
	}

	logger.LLMResponse(s.Name(), "synthesize", time.Since(start).Seconds(), "bytes", len(audio))

	return io.NopCloser(bytes.NewReader(audio)), nil
}

func extractAudio(resp *geminiTTSResponse) ([]byte, error) {
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			audio, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode audio data: %w", err)
			}
			return audio, nil
		}
	}
	return nil, fmt.Errorf("gemini TTS response contained no audio")
}

// SampleRate returns the fixed output sample rate.
func (s *GeminiService) SampleRate() int {
	return geminiSampleRate
}
