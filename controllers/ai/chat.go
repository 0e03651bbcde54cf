package aiControllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/shihab103/Supper-Shop-Server/models"
)

// Trigger words that make a prompt look like a price/stock/availability
// question. Bengali cues first, English equivalents after. Substring match,
// case-insensitive.
var retrievalKeywords = []string{
	"দাম", "মূল্য", "প্রাইস", "স্টক", "কত", "আছে", "ডিসকাউন্ট",
	"price", "stock", "cost", "available", "availability", "discount", "koto", "dam",
}

// Sentinels for the two degraded retrieval outcomes. They never leave the
// server; buildSystemInstruction rewrites them into natural language.
const (
	catalogUnavailable = "__catalog_unavailable__"
	catalogEmpty       = "__catalog_empty__"
)

// Generator is the boundary to the generative-language model.
type Generator interface {
	Generate(ctx context.Context, systemInstruction string, turns []models.ChatTurn) (string, error)
}

// Assistant holds the chat endpoint's collaborators. ProductsURL points at
// this server's own public catalog listing; retrieval goes over the network
// like any other client.
type Assistant struct {
	Generator   Generator
	ProductsURL string
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

type ChatRequest struct {
	Prompt  string            `json:"prompt"`
	History []models.ChatTurn `json:"history"`
}

// POST /api/ai/chat
//
// The caller owns conversation state: it sends the full history and gets it
// back with the user turn and the model turn appended, ready for the next
// call.
func ChatHandler(a Assistant) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
			return
		}
		if a.Generator == nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "AI assistant is not configured",
			})
			return
		}
		ctx := c.Request.Context()

		catalogData := ""
		if wantsProductData(req.Prompt) {
			catalogData = a.retrieve(ctx, req.Prompt)
		}

		system := buildSystemInstruction(req.History, catalogData)

		turns := append(append([]models.ChatTurn{}, req.History...), models.ChatTurn{
			Role: models.ChatRoleUser,
			Text: req.Prompt,
		})

		reply, err := a.Generator.Generate(ctx, system, turns)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch AI response from Gemini",
				"details": err.Error(),
			})
			return
		}

		turns = append(turns, models.ChatTurn{Role: models.ChatRoleModel, Text: reply})
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    reply,
			"history": turns,
		})
	}
}

func wantsProductData(prompt string) bool {
	p := strings.ToLower(prompt)
	for _, kw := range retrievalKeywords {
		if strings.Contains(p, kw) {
			return true
		}
	}
	return false
}

// retrieve fetches the public product listing and narrows it to records
// whose serialized form mentions the prompt. No match falls back to the
// whole catalog; failures collapse into sentinels instead of failing the
// chat request.
func (a Assistant) retrieve(ctx context.Context, prompt string) string {
	client := a.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.ProductsURL+"/all-products", nil)
	if err != nil {
		return catalogUnavailable
	}
	resp, err := client.Do(req)
	if err != nil {
		a.Logger.Warn("product retrieval failed", "error", err)
		return catalogUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		a.Logger.Warn("product retrieval failed", "status", resp.StatusCode)
		return catalogUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return catalogUnavailable
	}
	var products []json.RawMessage
	if err := json.Unmarshal(body, &products); err != nil {
		return catalogUnavailable
	}
	if len(products) == 0 {
		return catalogEmpty
	}

	needle := strings.ToLower(prompt)
	matched := make([]json.RawMessage, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(string(p)), needle) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		matched = products
	}

	data, err := json.Marshal(matched)
	if err != nil {
		return catalogUnavailable
	}
	return string(data)
}

// buildSystemInstruction assembles the fixed persona, the one-time greeting,
// and whatever the retrieval step produced.
func buildSystemInstruction(history []models.ChatTurn, catalogData string) string {
	var b strings.Builder
	b.WriteString("তুমি Supper Shop-এর একজন বন্ধুসুলভ শপিং অ্যাসিস্ট্যান্ট। ")
	b.WriteString("সবসময় বাংলায় সংক্ষিপ্ত ও ভদ্রভাবে উত্তর দেবে; ক্রেতা ইংরেজিতে লিখলে ইংরেজিতে উত্তর দেবে। ")
	b.WriteString("শুধু এই দোকানের পণ্য নিয়েই কথা বলবে।")

	if len(history) == 0 {
		b.WriteString(" প্রথম উত্তরের শুরুতে একবার বলবে: \"আসসালামু আলাইকুম! Supper Shop-এ স্বাগতম।\" ")
		b.WriteString("এই অভিবাদন পরের কোনো উত্তরে আর কখনো পুনরাবৃত্তি করবে না।")
	}

	switch catalogData {
	case "":
		// no retrieval this turn
	case catalogUnavailable:
		b.WriteString(" পণ্যের তথ্যভান্ডারে এই মুহূর্তে পৌঁছানো যাচ্ছে না; ক্রেতাকে বিনীতভাবে জানাও যে দাম ও স্টকের তথ্য এখন দেওয়া সম্ভব হচ্ছে না, একটু পরে আবার চেষ্টা করতে বলো।")
	case catalogEmpty:
		b.WriteString(" দোকানে এই মুহূর্তে কোনো পণ্য মজুত নেই; ক্রেতাকে সেটাই জানাও।")
	default:
		b.WriteString(" নিচের JSON হলো প্রাসঙ্গিক পণ্যের বর্তমান তথ্য (দাম, ডিসকাউন্ট, স্টকসহ); উত্তরে শুধু এই তথ্যই ব্যবহার করবে:\n")
		b.WriteString(catalogData)
	}

	return b.String()
}

// ErrNoReply reports an empty candidate set from the model.
var ErrNoReply = errors.New("model returned no reply")
