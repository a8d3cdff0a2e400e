// Package client 提供记账本服务端 API 的 Go 客户端。
// 登录后会话 Cookie 由内部的 cookie jar 维护，调用方无需处理令牌。
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"moneymanager/api"
	"moneymanager/models"
)

// Client 记账本 API 客户端
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient 创建客户端。baseURL 形如 http://localhost:8080
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("创建 cookie jar 失败: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}, nil
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// do 发送请求并把 2xx 响应体解析到 out（out 为 nil 时丢弃）
func (c *Client) do(method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("序列化请求失败: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("%s (HTTP %d)", errResp.Message, resp.StatusCode)
		}
		return fmt.Errorf("请求失败: HTTP %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}
	return nil
}

// Signup 注册并登录
func (c *Client) Signup(email, password, name string) (*models.User, error) {
	var resp api.AuthResponse
	err := c.do("POST", "/api/auth/signup", api.SignupRequest{
		Email:    email,
		Password: password,
		Name:     name,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login 登录
func (c *Client) Login(email, password string) (*models.User, error) {
	var resp api.AuthResponse
	err := c.do("POST", "/api/auth/login", api.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout 退出登录。服务端对未登录的调用同样返回成功
func (c *Client) Logout() error {
	return c.do("POST", "/api/auth/logout", nil, nil)
}

// Me 获取当前会话用户
func (c *Client) Me() (*models.User, error) {
	var resp struct {
		Data models.User `json:"data"`
	}
	if err := c.do("GET", "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Transactions 获取指定用户的收支记录列表
func (c *Client) Transactions(userID uint) ([]api.TransactionRecord, error) {
	var records []api.TransactionRecord
	path := fmt.Sprintf("/api/transactions?userId=%d", userID)
	if err := c.do("GET", path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AddTransaction 创建一条收支记录
func (c *Client) AddTransaction(req api.CreateTransactionRequest) (*api.TransactionRecord, error) {
	var record api.TransactionRecord
	if err := c.do("POST", "/api/transactions", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteAll 清空指定用户的全部收支记录
func (c *Client) DeleteAll(userID uint) error {
	path := fmt.Sprintf("/api/transactions?userId=%d", userID)
	return c.do("DELETE", path, nil, nil)
}

// Import 批量导入收支记录，返回导入条数。服务端整体校验，失败时一条都不会写入
func (c *Client) Import(records []api.TransactionRecord) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.do("POST", "/api/transactions/import", records, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// Balance 获取余额汇总
func (c *Client) Balance() (*api.BalanceResponse, error) {
	var resp api.BalanceResponse
	if err := c.do("GET", "/api/transactions/balance", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MonthlySummary 获取月度收支汇总
func (c *Client) MonthlySummary() ([]models.MonthlySummary, error) {
	var result []models.MonthlySummary
	if err := c.do("GET", "/api/transactions/summary", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Export 导出当前用户的全部收支记录
func (c *Client) Export() ([]api.TransactionRecord, error) {
	var records []api.TransactionRecord
	if err := c.do("GET", "/api/transactions/export", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
