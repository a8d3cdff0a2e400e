// moneyctl 是记账本服务端的命令行客户端。
// 会话 Cookie 不落盘，每次执行都通过 MONEYCTL_EMAIL / MONEYCTL_PASSWORD
// 环境变量重新登录；交易记录会缓存到本地状态文件，便于离线查看余额。
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"moneymanager/api"
	"moneymanager/client"
	"moneymanager/models"
)

var (
	serverURL string
	stateFile string
)

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".moneyctl.json"
	}
	return filepath.Join(home, ".moneyctl", "state.json")
}

func store() *client.Store {
	return client.NewStore(stateFile)
}

// login 使用环境变量中的凭据登录
func login(c *client.Client) (*models.User, error) {
	email := os.Getenv("MONEYCTL_EMAIL")
	password := os.Getenv("MONEYCTL_PASSWORD")
	if email == "" || password == "" {
		return nil, fmt.Errorf("请设置 MONEYCTL_EMAIL 与 MONEYCTL_PASSWORD 环境变量")
	}
	return c.Login(email, password)
}

// sync 拉取服务端记录并写入本地状态
func sync(c *client.Client, user *models.User) ([]api.TransactionRecord, error) {
	records, err := c.Transactions(user.ID)
	if err != nil {
		return nil, err
	}
	state := store().Load()
	state.User = user
	state.Transactions = records
	if err := store().Save(state); err != nil {
		return nil, err
	}
	return records, nil
}

// connect 创建客户端并登录
func connect() (*client.Client, *models.User, error) {
	c, err := client.NewClient(serverURL)
	if err != nil {
		return nil, nil, err
	}
	user, err := login(c)
	if err != nil {
		return nil, nil, err
	}
	return c, user, nil
}

func printRecords(records []api.TransactionRecord) {
	for _, r := range records {
		sign := "+"
		if r.Type == models.TypeExpense {
			sign = "-"
		}
		fmt.Printf("#%-4d %s  %s%.2f  %s\n", r.ID, r.Date, sign, r.Amount, r.Description)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "moneyctl",
		Short:         "记账本命令行客户端",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "服务端地址")
	rootCmd.PersistentFlags().StringVar(&stateFile, "state", defaultStateFile(), "本地状态文件路径")

	rootCmd.AddCommand(
		newSignupCmd(),
		newListCmd(),
		newAddCmd(),
		newBalanceCmd(),
		newSummaryCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "错误:", err)
		os.Exit(1)
	}
}

func newSignupCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "signup <email> <password>",
		Short: "注册新账号",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.NewClient(serverURL)
			if err != nil {
				return err
			}
			user, err := c.Signup(args[0], args[1], name)
			if err != nil {
				return err
			}
			state := store().Load()
			state.User = user
			state.Transactions = []api.TransactionRecord{}
			if err := store().Save(state); err != nil {
				return err
			}
			fmt.Printf("注册成功，用户 #%d %s\n", user.ID, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "昵称")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "列出全部收支记录",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, user, err := connect()
			if err != nil {
				return err
			}
			records, err := sync(c, user)
			if err != nil {
				return err
			}
			printRecords(records)
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "add <income|expense> <amount> <date>",
		Short: "记一笔收入或支出，日期格式 YYYY-MM-DD",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var amount float64
			if _, err := fmt.Sscanf(args[1], "%f", &amount); err != nil {
				return fmt.Errorf("金额无效: %s", args[1])
			}
			if description == "" {
				description = models.DefaultDescription
			}

			c, user, err := connect()
			if err != nil {
				return err
			}
			record, err := c.AddTransaction(api.CreateTransactionRequest{
				UserID:      user.ID,
				Type:        args[0],
				Amount:      amount,
				Description: description,
				Date:        args[2],
			})
			if err != nil {
				return err
			}
			if _, err := sync(c, user); err != nil {
				return err
			}
			fmt.Printf("已记录 #%d %s %.2f\n", record.ID, record.Type, record.Amount)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "描述")
	return cmd
}

func newBalanceCmd() *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "查看余额汇总",
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				// 离线模式：用本地缓存的记录计算
				state := store().Load()
				fmt.Printf("余额（本地缓存）: %.2f\n", state.Balance())
				return nil
			}
			c, _, err := connect()
			if err != nil {
				return err
			}
			b, err := c.Balance()
			if err != nil {
				return err
			}
			fmt.Printf("收入: %.2f\n支出: %.2f\n余额: %.2f\n", b.TotalIncome, b.TotalExpense, b.Balance)
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "使用本地缓存计算，不连接服务端")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "查看月度收支汇总",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := connect()
			if err != nil {
				return err
			}
			months, err := c.MonthlySummary()
			if err != nil {
				return err
			}
			for _, m := range months {
				fmt.Printf("%s  收入 %.2f  支出 %.2f  结余 %.2f\n", m.Month, m.Income, m.Expense, m.Balance)
			}
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "导出全部收支记录到 JSON 文件",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := connect()
			if err != nil {
				return err
			}
			records, err := c.Export()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("写入文件失败: %w", err)
			}
			fmt.Printf("已导出 %d 条记录到 %s\n", len(records), args[0])
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "从 JSON 文件批量导入收支记录",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("读取文件失败: %w", err)
			}
			var records []api.TransactionRecord
			if err := json.Unmarshal(data, &records); err != nil {
				return fmt.Errorf("文件不是有效的记录列表: %w", err)
			}

			c, user, err := connect()
			if err != nil {
				return err
			}
			count, err := c.Import(records)
			if err != nil {
				return err
			}
			if _, err := sync(c, user); err != nil {
				return err
			}
			fmt.Printf("已导入 %d 条记录\n", count)
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "清空全部收支记录",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("清空操作不可恢复，确认请加 --yes")
			}
			c, user, err := connect()
			if err != nil {
				return err
			}
			if err := c.DeleteAll(user.ID); err != nil {
				return err
			}
			if _, err := sync(c, user); err != nil {
				return err
			}
			fmt.Println("已清空全部记录")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "确认清空")
	return cmd
}
