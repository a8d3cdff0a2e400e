package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"moneymanager/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResetRouter() (*gin.Engine, *PasswordResetHandler) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	return router, NewPasswordResetHandler(cfg)
}

func resetColumns() []string {
	return []string{"id", "user_id", "email", "code", "expires_at", "used", "created_at"}
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPasswordResetHandler_RequestReset_UnknownEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer func() { config.GlobalConfig = nil }()

	// 邮箱未注册同样返回成功提示，不暴露账号是否存在
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	router, h := newResetRouter()
	router.POST("/request-reset", h.RequestReset)

	w := postJSON(router, "/request-reset", gin.H{"email": "nobody@example.com"})
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), resetRequestedMessage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetHandler_RequestReset_Throttled(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer func() { config.GlobalConfig = nil }()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("test@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "test@example.com", "hash", "小明", now, now))

	// 一分钟内已有未使用的验证码
	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WillReturnRows(sqlmock.NewRows(resetColumns()).
			AddRow(1, 1, "test@example.com", "123456", now.Add(10*time.Minute), false, now.Add(-10*time.Second)))

	router, h := newResetRouter()
	router.POST("/request-reset", h.RequestReset)

	w := postJSON(router, "/request-reset", gin.H{"email": "test@example.com"})
	assert.Equal(t, 429, w.Code)
	assert.Contains(t, w.Body.String(), "过于频繁")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetHandler_VerifyCode(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer func() { config.GlobalConfig = nil }()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WithArgs("test@example.com", "123456").
		WillReturnRows(sqlmock.NewRows(resetColumns()).
			AddRow(1, 1, "test@example.com", "123456", now.Add(5*time.Minute), false, now))

	router, h := newResetRouter()
	router.POST("/verify-code", h.VerifyCode)

	w := postJSON(router, "/verify-code", gin.H{"email": "test@example.com", "code": "123456"})
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "验证成功")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetHandler_VerifyCode_WrongCode(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WithArgs("test@example.com", "000000").
		WillReturnRows(sqlmock.NewRows(resetColumns()))

	router, h := newResetRouter()
	router.POST("/verify-code", h.VerifyCode)

	w := postJSON(router, "/verify-code", gin.H{"email": "test@example.com", "code": "000000"})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "验证码错误")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetHandler_VerifyCode_Expired(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer func() { config.GlobalConfig = nil }()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WithArgs("test@example.com", "123456").
		WillReturnRows(sqlmock.NewRows(resetColumns()).
			AddRow(1, 1, "test@example.com", "123456", now.Add(-time.Minute), false, now.Add(-11*time.Minute)))

	router, h := newResetRouter()
	router.POST("/verify-code", h.VerifyCode)

	w := postJSON(router, "/verify-code", gin.H{"email": "test@example.com", "code": "123456"})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "已过期")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetHandler_ResetPassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer func() { config.GlobalConfig = nil }()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WithArgs("test@example.com", "123456").
		WillReturnRows(sqlmock.NewRows(resetColumns()).
			AddRow(1, 1, "test@example.com", "123456", now.Add(5*time.Minute), false, now))

	// 更新用户密码
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 标记当前验证码已使用
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `password_resets` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 使该用户其余未使用的验证码失效
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `password_resets` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router, h := newResetRouter()
	router.POST("/reset", h.ResetPassword)

	w := postJSON(router, "/reset", gin.H{
		"email":        "test@example.com",
		"code":         "123456",
		"new_password": "newpassword123",
	})
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "密码重置成功")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetHandler_ResetPassword_UsedCode(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer func() { config.GlobalConfig = nil }()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WithArgs("test@example.com", "123456").
		WillReturnRows(sqlmock.NewRows(resetColumns()).
			AddRow(1, 1, "test@example.com", "123456", now.Add(5*time.Minute), true, now))

	router, h := newResetRouter()
	router.POST("/reset", h.ResetPassword)

	w := postJSON(router, "/reset", gin.H{
		"email":        "test@example.com",
		"code":         "123456",
		"new_password": "newpassword123",
	})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "已被使用")
	require.NoError(t, mock.ExpectationsWereMet())
}
