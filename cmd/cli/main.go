package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "accounts-cli",
		Short: "Accounts service CLI tool",
		Long:  `A command line interface for the accounts service REST API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the accounts API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd(), movementCmd(), ledgerCmd(), statementCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var (
		number      string
		accountType string
		balance     string
		customerID  int64
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/accounts", map[string]any{
				"account_number":  number,
				"account_type":    accountType,
				"initial_balance": jsonNumber(balance),
				"customer_id":     customerID,
			})
		},
	}
	createCmd.Flags().StringVar(&number, "number", "", "Account number (6 to 12 digits)")
	createCmd.Flags().StringVar(&accountType, "type", "SAVINGS", "Account type (SAVINGS, CHECKING, CREDIT)")
	createCmd.Flags().StringVar(&balance, "balance", "0", "Initial balance")
	createCmd.Flags().Int64Var(&customerID, "customer", 0, "Owning customer ID")
	createCmd.MarkFlagRequired("number")
	createCmd.MarkFlagRequired("customer")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch an account by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts")
		},
	}

	cmd.AddCommand(createCmd, getCmd, listCmd)

	return cmd
}

func movementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movement",
		Short: "Movement operations",
	}

	var (
		accountID int64
		amount    string
	)

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a movement against an account",
		Long:  `Registers a signed movement. Positive amounts credit the account, negative amounts debit it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/movements", map[string]any{
				"account_id": accountID,
				"amount":     jsonNumber(amount),
			})
		},
	}
	registerCmd.Flags().Int64Var(&accountID, "account", 0, "Account ID")
	registerCmd.Flags().StringVar(&amount, "amount", "", "Signed amount, e.g. -50.00")
	registerCmd.MarkFlagRequired("account")
	registerCmd.MarkFlagRequired("amount")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a movement by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/movements/" + args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list <account-id>",
		Short: "List movements for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/movements")
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a movement (its ledger entry is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doDelete("/api/v1/movements/" + args[0])
		},
	}

	cmd.AddCommand(registerCmd, getCmd, listCmd, deleteCmd)

	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	listCmd := &cobra.Command{
		Use:   "list <account-id>",
		Short: "List ledger entries for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/ledger")
		},
	}

	verifyCmd := &cobra.Command{
		Use:   "verify <account-id>",
		Short: "Verify an account's ledger chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return verifyChain(args[0])
		},
	}

	cmd.AddCommand(listCmd, verifyCmd)

	return cmd
}

func statementCmd() *cobra.Command {
	var (
		customerID int64
		number     string
		start      string
		end        string
	)

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Generate an account statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/reports?start=%s&end=%s", start, end)
			if number != "" {
				path += "&account_number=" + number
			} else {
				path += "&customer_id=" + strconv.FormatInt(customerID, 10)
			}

			return getJSON(path)
		},
	}
	cmd.Flags().Int64Var(&customerID, "customer", 0, "Customer ID")
	cmd.Flags().StringVar(&number, "number", "", "Account number (overrides --customer)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func verifyChain(accountID string) error {
	body, status, err := request(http.MethodGet, "/api/v1/accounts/"+accountID+"/ledger/verify", nil)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return fmt.Errorf("verification request failed (status %d): %s", status, truncate(string(body), 200))
	}

	var result struct {
		AccountID  int64 `json:"account_id"`
		Consistent bool  `json:"consistent"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if !result.Consistent {
		fmt.Printf("Ledger chain for account %d is INCONSISTENT\n", result.AccountID)
		os.Exit(1)
	}

	fmt.Printf("Ledger chain for account %d is consistent\n", result.AccountID)

	return nil
}

func getJSON(path string) error {
	body, status, err := request(http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	return printResponse(body, status)
}

func postJSON(path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	body, status, err := request(http.MethodPost, path, data)
	if err != nil {
		return err
	}

	return printResponse(body, status)
}

func doDelete(path string) error {
	body, status, err := request(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}

	if status == http.StatusNoContent {
		fmt.Println("deleted")
		return nil
	}

	return printResponse(body, status)
}

func request(method, path string, payload []byte) ([]byte, int, error) {
	client := &http.Client{Timeout: timeout}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		return nil, 0, err
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return body, resp.StatusCode, nil
}

func printResponse(body []byte, status int) error {
	if status < 200 || status >= 300 {
		return fmt.Errorf("request failed (status %d): %s", status, truncate(string(body), 200))
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(parsed)

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}

	fmt.Println(string(out))
}

// jsonNumber keeps decimal amounts out of float64 round-tripping when the
// payload is marshalled.
func jsonNumber(s string) json.RawMessage {
	if s == "" {
		return json.RawMessage("0")
	}

	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return json.RawMessage(strconv.Quote(s))
	}

	return json.RawMessage(s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}
