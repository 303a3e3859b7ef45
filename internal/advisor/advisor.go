// Package advisor talks to a locally hosted chat-completion endpoint for
// free-text tax and process guidance. The advisory path is best-effort: every
// failure is converted into a readable fallback reply so callers never need a
// separate error path.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rpires/nf-control/internal/recerror"
)

// systemPrompt establishes the tax and process advisory persona for every
// question. Kept in Portuguese to match the audience of the tool.
const systemPrompt = "Assuma a função de um assistente especializado em legislação tributária e processos de negócios. " +
	"Sua principal responsabilidade é fornecer informações precisas, detalhadas e atualizadas sobre a legislação corporativa, " +
	"regulamentações fiscais e os processos operacionais obrigatórios para empresas. " +
	"Responda de forma objetiva, cite cuidados com CFOP, impostos (ICMS/ISS/IPI), " +
	"e sugira ações quando houver mudanças gerenciais ou legislações relevantes. " +
	"Se não tiver certeza, peça documentação (legislação, nota, contrato)."

// Client is a stateless, single-turn client for the advisory endpoint.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	model       string
	temperature float64
	topP        float64
}

// Config holds the advisory client settings.
type Config struct {
	Endpoint    string
	Model       string
	Temperature float64
	TopP        float64
	Timeout     time.Duration
}

// NewClient creates a client for the given endpoint and decoding options.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint:    strings.TrimRight(cfg.Endpoint, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// OfflineNotice is the banner shown when the endpoint does not answer the
// liveness probe.
func OfflineNotice(endpoint, model string) string {
	return fmt.Sprintf("Ollama não detectado em %s. Ajuste o endpoint e garanta que o modelo '%s' está disponível.", endpoint, model)
}

// Available probes the endpoint root and reports whether the service answered
// with a non-server-error status. It is used only for an advisory banner and
// never gates any other operation.
func (c *Client) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode < 500
}

// chatRequest is the wire format of the /api/chat endpoint.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	TopP        float64 `json:"top_p"`
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

// Ask sends a single-turn question under the advisory persona and returns the
// reply text. On any failure (connection, timeout, non-2xx status, malformed
// body) it returns a fallback string embedding the error instead of raising.
func (c *Client) Ask(ctx context.Context, question string) string {
	reply, err := c.ask(ctx, question)
	if err != nil {
		return fmt.Sprintf("[I.A. indisponível ou erro na consulta: %v]", err)
	}
	return reply
}

func (c *Client) ask(ctx context.Context, question string) (string, error) {
	requestBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: strings.TrimSpace(question)},
		},
		Stream: false,
		Options: chatOptions{
			TopP:        c.topP,
			Temperature: c.temperature,
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", &recerror.AdvisoryError{Endpoint: c.endpoint, Stage: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/chat", strings.NewReader(string(jsonBody)))
	if err != nil {
		return "", &recerror.AdvisoryError{Endpoint: c.endpoint, Stage: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &recerror.AdvisoryError{Endpoint: c.endpoint, Stage: "transport", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &recerror.AdvisoryError{Endpoint: c.endpoint, Stage: "read", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &recerror.AdvisoryError{
			Endpoint: c.endpoint,
			Stage:    "status",
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &recerror.AdvisoryError{Endpoint: c.endpoint, Stage: "decode", Err: err}
	}

	return response.Message.Content, nil
}
