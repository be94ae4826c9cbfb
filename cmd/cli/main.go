package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "caixaflow-cli",
		Short: "CaixaFlow CLI tool",
		Long:  `A command line interface for interacting with the CaixaFlow ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the CaixaFlow API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		accountsCmd(),
		balanceCmd(),
		movementsCmd(),
		transferCmd(),
		reconcileCmd(),
		cashflowCmd(),
		closingCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodGet, "/api/v1/accounts", nil)
		},
	})

	var initialBalance string
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodPost, "/api/v1/accounts", map[string]any{
				"name":            args[0],
				"initial_balance": initialBalance,
			})
		},
	}
	createCmd.Flags().StringVar(&initialBalance, "initial-balance", "0", "Opening balance")
	cmd.AddCommand(createCmd)

	return cmd
}

func balanceCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account balance at end of day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/accounts/" + args[0] + "/balance"
			if date != "" {
				path += "?date=" + url.QueryEscape(date)
			}
			return doRequest(http.MethodGet, path, nil)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Balance date (YYYY-MM-DD, default today)")

	return cmd
}

func movementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movements",
		Short: "Ledger movement operations",
	}

	var accountID, kind, startDate, endDate string
	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List movements",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if accountID != "" {
				query.Set("account_id", accountID)
			}
			if kind != "" {
				query.Set("type", kind)
			}
			if startDate != "" {
				query.Set("start_date", startDate)
			}
			if endDate != "" {
				query.Set("end_date", endDate)
			}
			if limit > 0 {
				query.Set("limit", fmt.Sprintf("%d", limit))
			}

			path := "/api/v1/movements"
			if encoded := query.Encode(); encoded != "" {
				path += "?" + encoded
			}
			return doRequest(http.MethodGet, path, nil)
		},
	}
	listCmd.Flags().StringVar(&accountID, "account", "", "Filter by account id")
	listCmd.Flags().StringVar(&kind, "type", "", "Filter by movement type (INCOME, EXPENSE, TRANSFER)")
	listCmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD)")
	listCmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows")
	cmd.AddCommand(listCmd)

	var date, categoryCode, description, paymentMethod string
	createCmd := &cobra.Command{
		Use:   "create <account-id> <type> <amount>",
		Short: "Create a movement",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodPost, "/api/v1/movements", map[string]any{
				"account_id":     args[0],
				"type":           args[1],
				"amount":         args[2],
				"date":           date,
				"category_code":  categoryCode,
				"description":    description,
				"payment_method": paymentMethod,
			})
		},
	}
	createCmd.Flags().StringVar(&date, "date", "", "Movement date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&categoryCode, "category", "", "Analytical category code")
	createCmd.Flags().StringVar(&description, "description", "", "Description")
	createCmd.Flags().StringVar(&paymentMethod, "payment-method", "", "Payment method")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodDelete, "/api/v1/movements/"+args[0], nil)
		},
	})

	return cmd
}

func transferCmd() *cobra.Command {
	var date, description string
	cmd := &cobra.Command{
		Use:   "transfer <from-account> <to-account> <amount>",
		Short: "Transfer between accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodPost, "/api/v1/transfers", map[string]any{
				"from_account_id": args[0],
				"to_account_id":   args[1],
				"amount":          args[2],
				"date":            date,
				"description":     description,
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Transfer date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Description")

	return cmd
}

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconciliation operations",
	}

	var date, notes string
	recordCmd := &cobra.Command{
		Use:   "record <account-id> <bank-balance>",
		Short: "Record a bank reconciliation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodPost, "/api/v1/reconciliations", map[string]any{
				"account_id":   args[0],
				"bank_balance": args[1],
				"date":         date,
				"notes":        notes,
			})
		},
	}
	recordCmd.Flags().StringVar(&date, "date", "", "Reconciliation date (YYYY-MM-DD)")
	recordCmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.AddCommand(recordCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "day <date>",
		Short: "Show the reconciliation standing of every account on a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodGet, "/api/v1/reconciliations/day/"+args[0], nil)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "List reconciliation records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodGet, "/api/v1/reconciliations", nil)
		},
	})

	return cmd
}

func cashflowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Cash flow reports",
	}

	var startDate, endDate, accountID string
	addPeriodFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&startDate, "start", "", "Period start (YYYY-MM-DD)")
		c.Flags().StringVar(&endDate, "end", "", "Period end (YYYY-MM-DD)")
		c.Flags().StringVar(&accountID, "account", "", "Restrict to one account")
	}

	periodQuery := func(path string) string {
		query := url.Values{}
		query.Set("start_date", startDate)
		query.Set("end_date", endDate)
		if accountID != "" {
			query.Set("account_id", accountID)
		}
		return path + "?" + query.Encode()
	}

	statementCmd := &cobra.Command{
		Use:   "statement",
		Short: "Cash flow statement grouped by chart hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodGet, periodQuery("/api/v1/cashflow/statement"), nil)
		},
	}
	addPeriodFlags(statementCmd)
	cmd.AddCommand(statementCmd)

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Opening, income, expense and closing for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodGet, periodQuery("/api/v1/cashflow/summary"), nil)
		},
	}
	addPeriodFlags(summaryCmd)
	cmd.AddCommand(summaryCmd)

	return cmd
}

func closingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closing",
		Short: "Period closing operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the closing watermark",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodGet, "/api/v1/closing", nil)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "close <date>",
		Short: "Close the period through a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodPost, "/api/v1/closing", map[string]any{
				"closing_date": args[0],
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reopen",
		Short: "Clear the closing watermark",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodDelete, "/api/v1/closing", nil)
		},
	})

	return cmd
}

// doRequest performs one API call and prints the JSON response.
func doRequest(method, path string, body any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	if len(respBody) == 0 {
		fmt.Println("ok")
		return nil
	}

	var parsed any
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		fmt.Println(string(respBody))
		return nil
	}

	printJSON(parsed)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
