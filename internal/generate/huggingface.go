package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// HuggingFaceBaseURL is the hosted inference API root.
	HuggingFaceBaseURL = "https://api-inference.huggingface.co/models"

	// DefaultModel is the instruction-tuned model used for answering.
	DefaultModel = "google/flan-t5-base"

	// hfRateLimit caps requests per second against the shared inference API.
	hfRateLimit = 2.0

	// Generation parameters sent on every request.
	maxNewTokens = 250
	temperature  = 0.7
)

// HuggingFace is a rate-limited client for the Hugging Face hosted
// inference API.
type HuggingFace struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	token      string
	baseURL    string
	model      string
}

// HuggingFaceOption configures a HuggingFace client.
type HuggingFaceOption func(*HuggingFace)

// WithToken sets the API token for authenticated requests.
func WithToken(token string) HuggingFaceOption {
	return func(h *HuggingFace) {
		h.token = token
	}
}

// WithModel sets the model to call.
func WithModel(model string) HuggingFaceOption {
	return func(h *HuggingFace) {
		h.model = model
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) HuggingFaceOption {
	return func(h *HuggingFace) {
		h.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) HuggingFaceOption {
	return func(h *HuggingFace) {
		h.httpClient = hc
	}
}

// NewHuggingFace creates a hosted inference client. The token defaults to
// the HUGGINGFACEHUB_API_TOKEN environment variable.
func NewHuggingFace(opts ...HuggingFaceOption) *HuggingFace {
	h := &HuggingFace{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(hfRateLimit), 1),
		baseURL:    HuggingFaceBaseURL,
		model:      DefaultModel,
	}

	if token := os.Getenv("HUGGINGFACEHUB_API_TOKEN"); token != "" {
		h.token = token
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Name identifies the backend.
func (h *HuggingFace) Name() string {
	return BackendHuggingFace
}

// IsAvailable probes the model endpoint with the configured token. A nil
// return means the model can be called.
func (h *HuggingFace) IsAvailable(ctx context.Context) error {
	if h.token == "" {
		return ErrNoToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.modelURL(), nil)
	if err != nil {
		return fmt.Errorf("creating probe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.token)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if err := checkHTTPErrors(resp); err != nil {
			return err
		}
		return fmt.Errorf("%w: probe returned status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// Generate calls the hosted model with the prompt and returns its text.
func (h *HuggingFace) Generate(ctx context.Context, prompt string) (string, error) {
	if h.token == "" {
		return "", ErrNoToken
	}

	if err := h.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	body, err := json.Marshal(hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens: maxNewTokens,
			Temperature:  temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.modelURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.token)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return "", err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var generations []hfGeneration
	if err := json.Unmarshal(raw, &generations); err != nil {
		// The API reports model-level problems as {"error": "..."} with
		// status 200, so surface that message when the array shape fails.
		var apiMsg struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(raw, &apiMsg); jsonErr == nil && apiMsg.Error != "" {
			return "", &APIError{StatusCode: resp.StatusCode, Code: "api_error", Message: apiMsg.Error}
		}
		return "", &APIError{StatusCode: resp.StatusCode, Code: "invalid_response", Message: "unexpected response shape"}
	}

	if len(generations) == 0 || generations[0].GeneratedText == "" {
		return "", &APIError{StatusCode: resp.StatusCode, Code: "invalid_response", Message: "no generated text"}
	}
	return generations[0].GeneratedText, nil
}

func (h *HuggingFace) modelURL() string {
	return h.baseURL + "/" + h.model
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response) error {
	if resp.StatusCode == 401 || resp.StatusCode == 403 {
		return fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	}
	if resp.StatusCode == 429 {
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       "api_error",
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}
	return nil
}

// hfRequest is the inference API request body.
type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

// hfParameters are the generation knobs passed on every call.
type hfParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
}

// hfGeneration is one element of the inference API response array.
type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}
