package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"moneymanager/api"
	"moneymanager/models"
)

// State 客户端本地状态。余额不存储，总是由记录即时计算
type State struct {
	User         *models.User            `json:"user,omitempty"`
	Transactions []api.TransactionRecord `json:"transactions"`
}

// Balance 计算余额（收入减支出）
func (s *State) Balance() float64 {
	var balance float64
	for _, tx := range s.Transactions {
		switch tx.Type {
		case models.TypeIncome:
			balance += tx.Amount
		case models.TypeExpense:
			balance -= tx.Amount
		}
	}
	return balance
}

// Store 基于单个 JSON 文件的本地状态存储
type Store struct {
	path string
}

// NewStore 创建状态存储，path 为状态文件路径
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load 读取本地状态。文件不存在或内容损坏时返回空状态，不报错
func (s *Store) Load() *State {
	empty := &State{Transactions: []api.TransactionRecord{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return empty
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		// 损坏的状态文件按空状态处理，下次 Save 会覆盖
		return empty
	}
	if state.Transactions == nil {
		state.Transactions = []api.TransactionRecord{}
	}
	return &state
}

// Save 写入本地状态。先写临时文件再重命名，避免写入中断留下半个文件
func (s *Store) Save(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化状态失败: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("创建状态目录失败: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("写入状态文件失败: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("替换状态文件失败: %w", err)
	}
	return nil
}
