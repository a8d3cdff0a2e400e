package api

import (
	"net/http"

	"moneymanager/config"
	"moneymanager/middleware"

	"github.com/gin-gonic/gin"
)

// authCookieMaxAge 会话 Cookie 有效期：7 天
const authCookieMaxAge = 7 * 24 * 60 * 60

// getCookieOptions 根据运行模式返回 Cookie 的安全选项
// release 模式下启用 Secure（仅 HTTPS 传输）
// SameSite=Strict: 跨站请求一律不携带 Cookie，防止 CSRF
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	cfg := config.GetConfig()
	if cfg != nil && cfg.Server.Mode == "release" {
		secure = true
	}
	sameSite = http.SameSiteStrictMode
	return
}

// setAuthCookie 下发会话 Cookie（HttpOnly，全站有效）
func setAuthCookie(c *gin.Context, token string) {
	secure, sameSite := getCookieOptions()
	c.SetCookieData(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   authCookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}

// clearAuthCookie 清除会话 Cookie，重复调用无副作用
func clearAuthCookie(c *gin.Context) {
	secure, sameSite := getCookieOptions()
	c.SetCookieData(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}
