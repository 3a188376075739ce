package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"smartfarm-api/internal/core/cache"
)

// Client weatherapi.com 代理。响应按地点缓存（singleflight 合并并发回源），
// 上游失败不重试，错误原样上抛。
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	cache    *cache.Cache // 可为 nil（测试 / 未配置 redis）
	cacheTTL time.Duration
}

func NewClient(baseURL, apiKey string, timeout time.Duration, c *cache.Cache, cacheTTL time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.weatherapi.com/v1"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (c *Client) Current(ctx context.Context, location string) (json.RawMessage, error) {
	q := url.Values{"q": {location}, "aqi": {"no"}}
	return c.fetch(ctx, "/current.json", q, "weather:current:"+strings.ToLower(location))
}

func (c *Client) Forecast(ctx context.Context, location string, days int) (json.RawMessage, error) {
	if days <= 0 {
		days = 3
	}
	q := url.Values{"q": {location}, "days": {strconv.Itoa(days)}, "aqi": {"no"}, "alerts": {"no"}}
	key := fmt.Sprintf("weather:forecast:%s:%d", strings.ToLower(location), days)
	return c.fetch(ctx, "/forecast.json", q, key)
}

func (c *Client) fetch(ctx context.Context, path string, q url.Values, cacheKey string) (json.RawMessage, error) {
	load := func(ctx context.Context) ([]byte, error) {
		q.Set("key", c.apiKey)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("weather api status %d", resp.StatusCode)
		}
		return body, nil
	}

	if c.cache == nil {
		b, err := load(ctx)
		return json.RawMessage(b), err
	}
	b, err := c.cache.GetOrLoad(ctx, cacheKey, c.cacheTTL, load)
	return json.RawMessage(b), err
}
