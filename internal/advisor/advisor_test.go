package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *Client {
	return NewClient(Config{
		Endpoint:    endpoint,
		Model:       "llama3.2",
		Temperature: 0.2,
		TopP:        0.9,
		Timeout:     2 * time.Second,
	})
}

func TestAskSuccess(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		resp := chatResponse{Message: chatMessage{Role: "assistant", Content: "Use o CFOP 5.102 para revenda."}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	reply := client.Ask(context.Background(), "  CFOP 5.101 vs 5.102?  ")
	assert.Equal(t, "Use o CFOP 5.102 para revenda.", reply)

	// The request carries the fixed persona plus the trimmed question.
	assert.Equal(t, "llama3.2", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "legislação tributária")
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "CFOP 5.101 vs 5.102?", captured.Messages[1].Content)
	assert.False(t, captured.Stream)
	assert.InDelta(t, 0.9, captured.Options.TopP, 1e-9)
	assert.InDelta(t, 0.2, captured.Options.Temperature, 1e-9)
}

func TestAskServerErrorReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	reply := newTestClient(server.URL).Ask(context.Background(), "pergunta")
	assert.Contains(t, reply, "[I.A. indisponível ou erro na consulta:")
	assert.Contains(t, reply, "500")
}

func TestAskMalformedResponseReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	reply := newTestClient(server.URL).Ask(context.Background(), "pergunta")
	assert.Contains(t, reply, "[I.A. indisponível ou erro na consulta:")
}

func TestAskConnectionRefusedReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	reply := newTestClient(server.URL).Ask(context.Background(), "pergunta")
	assert.Contains(t, reply, "[I.A. indisponível ou erro na consulta:")
}

func TestAskTimeoutReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Config{
		Endpoint: server.URL,
		Model:    "llama3.2",
		Timeout:  50 * time.Millisecond,
	})
	reply := client.Ask(context.Background(), "pergunta")
	assert.Contains(t, reply, "[I.A. indisponível ou erro na consulta:")
}

func TestOfflineNotice(t *testing.T) {
	notice := OfflineNotice("http://localhost:11434", "llama3.2")
	assert.Contains(t, notice, "Ollama não detectado em http://localhost:11434")
	assert.Contains(t, notice, "'llama3.2'")
}

func TestAvailable(t *testing.T) {
	t.Run("HealthyEndpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("Ollama is running"))
		}))
		defer server.Close()
		assert.True(t, newTestClient(server.URL).Available(context.Background()))
	})

	t.Run("ClientErrorStillCountsAsUp", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()
		assert.True(t, newTestClient(server.URL).Available(context.Background()))
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		assert.False(t, newTestClient(server.URL).Available(context.Background()))
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()
		assert.False(t, newTestClient(server.URL).Available(context.Background()))
	})
}
