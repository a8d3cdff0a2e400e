package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moneymanager/api"
	"moneymanager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer 模拟服务端：登录下发会话 Cookie，后续接口校验 Cookie
func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	requireAuth := func(w http.ResponseWriter, r *http.Request) bool {
		cookie, err := r.Cookie("auth-token")
		if err != nil || cookie.Value == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"code": 401, "message": "未登录"})
			return false
		}
		return true
	}

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "password123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"code": 401, "message": "邮箱或密码错误"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "auth-token", Value: "test-token", Path: "/"})
		json.NewEncoder(w).Encode(api.AuthResponse{
			User:  models.User{ID: 1, Email: req.Email},
			Token: "test-token",
		})
	})

	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]api.TransactionRecord{
				{ID: 1, Type: "income", Amount: 1000, Description: "四月工资", Date: "2025-04-01"},
			})
		case http.MethodPost:
			var req api.CreateTransactionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			json.NewEncoder(w).Encode(api.TransactionRecord{
				ID: 2, Type: req.Type, Amount: req.Amount, Description: req.Description, Date: req.Date,
			})
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]string{"message": "已清空全部记录"})
		}
	})

	mux.HandleFunc("/api/transactions/import", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		var records []api.TransactionRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&records))
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "导入成功", "count": len(records)})
	})

	mux.HandleFunc("/api/transactions/balance", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		json.NewEncoder(w).Encode(api.BalanceResponse{Balance: 700, TotalIncome: 1000, TotalExpense: 300})
	})

	return httptest.NewServer(mux)
}

func TestClient_LoginAndCookieSession(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	// 未登录时受保护接口返回服务端的错误信息
	_, err = c.Transactions(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "未登录")

	user, err := c.Login("test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	// 登录后 Cookie 自动携带
	records, err := c.Transactions(1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "四月工资", records[0].Description)
}

func TestClient_LoginFailed(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = c.Login("test@example.com", "wrong-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "邮箱或密码错误")
}

func TestClient_AddAndImport(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	c, err := NewClient(server.URL)
	require.NoError(t, err)
	_, err = c.Login("test@example.com", "password123")
	require.NoError(t, err)

	record, err := c.AddTransaction(api.CreateTransactionRequest{
		UserID: 1, Type: "expense", Amount: 88.5, Description: "晚餐", Date: "2025-04-20",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), record.ID)
	assert.Equal(t, "expense", record.Type)

	count, err := c.Import([]api.TransactionRecord{
		{Type: "income", Amount: 1000, Date: "2025-04-01"},
		{Type: "expense", Amount: 300, Date: "2025-04-15"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	balance, err := c.Balance()
	require.NoError(t, err)
	assert.Equal(t, 700.0, balance.Balance)

	require.NoError(t, c.DeleteAll(1))
}
