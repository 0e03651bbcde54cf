package aiControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shihab103/Supper-Shop-Server/models"
)

type fakeGenerator struct {
	reply      string
	err        error
	lastSystem string
	lastTurns  []models.ChatTurn
}

func (f *fakeGenerator) Generate(_ context.Context, system string, turns []models.ChatTurn) (string, error) {
	f.lastSystem = system
	f.lastTurns = turns
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newChatEngine(a Assistant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/ai/chat", ChatHandler(a))
	return r
}

func postChat(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func catalogServer(hits *atomic.Int64, products string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, products)
	}))
}

func TestChatRejectsEmptyPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "hi"}
	r := newChatEngine(Assistant{Generator: gen, Logger: testLogger()})

	for _, body := range []any{gin.H{}, gin.H{"prompt": ""}, gin.H{"prompt": "   "}} {
		w := postChat(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestChatWithoutKeywordSkipsRetrieval(t *testing.T) {
	var hits atomic.Int64
	srv := catalogServer(&hits, `[]`)
	defer srv.Close()

	gen := &fakeGenerator{reply: "hello there"}
	r := newChatEngine(Assistant{Generator: gen, ProductsURL: srv.URL, Logger: testLogger()})

	w := postChat(r, gin.H{"prompt": "hello, how are you?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), hits.Load())
	assert.NotContains(t, gen.lastSystem, "JSON")
}

func TestChatKeywordTriggersRetrieval(t *testing.T) {
	var hits atomic.Int64
	srv := catalogServer(&hits, `[{"name":"Miniket Rice","description":"চালের দাম প্রতি কেজি ৮৫ টাকা"},{"name":"Soybean Oil","description":"ভোজ্য তেল"}]`)
	defer srv.Close()

	gen := &fakeGenerator{reply: "৮৫ টাকা"}
	r := newChatEngine(Assistant{Generator: gen, ProductsURL: srv.URL, Logger: testLogger()})

	// The whole prompt is matched as a substring of each serialized record;
	// only the rice document contains it.
	w := postChat(r, gin.H{"prompt": "চালের দাম"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), hits.Load())
	assert.Contains(t, gen.lastSystem, "Miniket Rice")
	assert.NotContains(t, gen.lastSystem, "Soybean Oil")
}

func TestChatBengaliKeywordTriggersRetrieval(t *testing.T) {
	var hits atomic.Int64
	srv := catalogServer(&hits, `[{"name":"Miniket Rice","price":85}]`)
	defer srv.Close()

	gen := &fakeGenerator{reply: "৮৫ টাকা"}
	r := newChatEngine(Assistant{Generator: gen, ProductsURL: srv.URL, Logger: testLogger()})

	w := postChat(r, gin.H{"prompt": "চালের দাম কত?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), hits.Load())
}

func TestChatNoMatchFallsBackToFullCatalog(t *testing.T) {
	var hits atomic.Int64
	srv := catalogServer(&hits, `[{"name":"Miniket Rice"},{"name":"Soybean Oil"}]`)
	defer srv.Close()

	gen := &fakeGenerator{reply: "ok"}
	r := newChatEngine(Assistant{Generator: gen, ProductsURL: srv.URL, Logger: testLogger()})

	w := postChat(r, gin.H{"prompt": "price of unicorn dust"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, gen.lastSystem, "Miniket Rice")
	assert.Contains(t, gen.lastSystem, "Soybean Oil")
}

func TestChatUnreachableCatalogStillAnswers(t *testing.T) {
	gen := &fakeGenerator{reply: "sorry, can't check prices right now"}
	r := newChatEngine(Assistant{
		Generator:   gen,
		ProductsURL: "http://127.0.0.1:1", // nothing listens here
		Logger:      testLogger(),
	})

	w := postChat(r, gin.H{"prompt": "what is the stock of rice"})
	require.Equal(t, http.StatusOK, w.Code)
	// The sentinel never reaches the model verbatim.
	assert.NotContains(t, gen.lastSystem, catalogUnavailable)
	assert.Contains(t, gen.lastSystem, "পৌঁছানো যাচ্ছে না")
}

func TestChatEmptyCatalogSentinel(t *testing.T) {
	var hits atomic.Int64
	srv := catalogServer(&hits, `[]`)
	defer srv.Close()

	gen := &fakeGenerator{reply: "ok"}
	r := newChatEngine(Assistant{Generator: gen, ProductsURL: srv.URL, Logger: testLogger()})

	w := postChat(r, gin.H{"prompt": "anything in stock?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, gen.lastSystem, catalogEmpty)
	assert.Contains(t, gen.lastSystem, "মজুত নেই")
}

func TestChatGreetingOnlyOnFirstTurn(t *testing.T) {
	gen := &fakeGenerator{reply: "hi"}
	r := newChatEngine(Assistant{Generator: gen, Logger: testLogger()})

	w := postChat(r, gin.H{"prompt": "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, gen.lastSystem, "স্বাগতম")

	w = postChat(r, gin.H{
		"prompt": "hello again",
		"history": []models.ChatTurn{
			{Role: models.ChatRoleUser, Text: "hello"},
			{Role: models.ChatRoleModel, Text: "hi"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, gen.lastSystem, "স্বাগতম")
}

func TestChatReturnsUpdatedHistory(t *testing.T) {
	gen := &fakeGenerator{reply: "second answer"}
	r := newChatEngine(Assistant{Generator: gen, Logger: testLogger()})

	history := []models.ChatTurn{
		{Role: models.ChatRoleUser, Text: "first question"},
		{Role: models.ChatRoleModel, Text: "first answer"},
	}
	w := postChat(r, gin.H{"prompt": "second question", "history": history})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    string            `json:"data"`
		History []models.ChatTurn `json:"history"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "second answer", resp.Data)
	require.Len(t, resp.History, 4)
	assert.Equal(t, "second question", resp.History[2].Text)
	assert.Equal(t, models.ChatRoleModel, resp.History[3].Role)
	assert.Equal(t, "second answer", resp.History[3].Text)

	// The model saw the prior turns plus the new prompt, not its own reply.
	require.Len(t, gen.lastTurns, 3)
	assert.Equal(t, "second question", gen.lastTurns[2].Text)
}

func TestChatModelFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	r := newChatEngine(Assistant{Generator: gen, Logger: testLogger()})

	w := postChat(r, gin.H{"prompt": "hello"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Failed to fetch AI response from Gemini", resp["error"])
	assert.True(t, strings.Contains(resp["details"].(string), "quota exceeded"))
}

func TestWantsProductData(t *testing.T) {
	assert.True(t, wantsProductData("What is the PRICE of rice?"))
	assert.True(t, wantsProductData("চালের দাম কত"))
	assert.True(t, wantsProductData("is this available?"))
	assert.False(t, wantsProductData("tell me a joke"))
}
