package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionHandler_ExportJSON(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer initTransactionTestConfig()()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows(transactionColumns()).
			AddRow(2, 1, "expense", 300.0, "超市购物", "2025-04-15", "2025年4月15日(二)", now, now).
			AddRow(1, 1, "income", 1000.0, "四月工资", "2025-04-01", "2025年4月1日(二)", now, now))

	router, h := newTransactionRouter(1)
	router.GET("/transactions/export", h.ExportJSON)

	req := httptest.NewRequest("GET", "/transactions/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	// 导出内容与导入接口的交换格式对称
	var records []TransactionRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, uint(2), records[0].ID)
	assert.Equal(t, "expense", records[0].Type)
	assert.Equal(t, 300.0, records[0].Amount)
	assert.Equal(t, "2025-04-15", records[0].Date)
	assert.Equal(t, "income", records[1].Type)

	// 缩进格式，便于人工查看
	assert.True(t, strings.Contains(w.Body.String(), "\n  "))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer initTransactionTestConfig()()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows(transactionColumns()).
			AddRow(1, 1, "income", 1000.0, "四月工资", "2025-04-01", "", now, now))

	router, h := newTransactionRouter(1)
	router.GET("/transactions/export/csv", h.ExportCSV)

	req := httptest.NewRequest("GET", "/transactions/export/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	body := w.Body.String()
	// BOM 开头，Excel 才能正确识别中文
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	assert.Contains(t, body, "收入")
	assert.Contains(t, body, "四月工资")
	assert.Contains(t, body, "1000.00")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer initTransactionTestConfig()()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows(transactionColumns()).
			AddRow(1, 1, "expense", 88.5, "晚餐", "2025-04-20", "", now, now))

	router, h := newTransactionRouter(1)
	router.GET("/transactions/export/excel", h.ExportExcel)

	req := httptest.NewRequest("GET", "/transactions/export/excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	// xlsx 是 zip 容器，以 PK 开头
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	require.NoError(t, mock.ExpectationsWereMet())
}
