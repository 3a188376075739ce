package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const fallbackReply = "I'm sorry, I don't have an answer for that yet."

// 关键词规则表，顺序即优先级
var keywordReplies = []struct {
	keyword string
	reply   string
}{
	{"water", "Most crops need 1-2 inches of water per week, depending on weather conditions and soil type."},
	{"fertilize", "The best time to fertilize most crops is early in the growing season. Always follow package instructions for application rates."},
	{"pest", "Integrated Pest Management (IPM) combines prevention, monitoring, and control methods to minimize pest damage with the least risk."},
}

// Service 优先转发到推理服务；未配置时退回本地关键词规则。
type Service struct {
	baseURL string
	client  *http.Client
}

func NewService(baseURL string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Answer 不做重试：上游失败直接把错误交给调用方。
func (s *Service) Answer(ctx context.Context, query string) (string, error) {
	if s.baseURL == "" {
		return keywordAnswer(query), nil
	}

	body, _ := json.Marshal(map[string]string{"query": query})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chatbot", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference server status %d", resp.StatusCode)
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Response, nil
}

func keywordAnswer(query string) string {
	q := strings.ToLower(query)
	for _, kr := range keywordReplies {
		if strings.Contains(q, kr.keyword) {
			return kr.reply
		}
	}
	return fallbackReply
}
