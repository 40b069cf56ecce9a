package trading

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codeready-toolchain/alex/pkg/apperrors"
	"github.com/codeready-toolchain/alex/pkg/redact"
)

const (
	sandboxAPIURL    = "https://api.cert.tastyworks.com"
	productionAPIURL = "https://api.tastyworks.com"
)

// Client is the brokerage boundary the Ledger drives: session, accounts,
// positions, balances, and order submission.
type Client interface {
	Mode() string
	IsSandbox() bool
	GetPrimaryAccount(ctx context.Context) (*Account, error)
	GetPositions(ctx context.Context) ([]Position, error)
	GetBalances(ctx context.Context) (*Balances, error)
	SubmitOrderDryRun(ctx context.Context, accountNumber string, payload map[string]any) error
	SubmitOrder(ctx context.Context, accountNumber string, payload map[string]any) (*SubmittedOrder, error)
	Close(ctx context.Context) error
}

// Account is a trading account summary.
type Account struct {
	AccountNumber string
	Nickname      string
}

// Position is one current holding.
type Position struct {
	Symbol           string
	Quantity         int
	AverageOpenPrice float64
	InstrumentType   string
	UnderlyingSymbol string
}

// Balances summarizes an account's buying power and liquidating value.
type Balances struct {
	CashBalance           float64
	NetLiquidatingValue   float64
	EquityBuyingPower     float64
	DerivativeBuyingPower float64
	DayTradingBuyingPower float64
}

// SubmittedOrder is what SubmitOrder returns on success.
type SubmittedOrder struct {
	OrderID string
	Status  string
}

// session is the cached, disk-persisted TastyTrade session: stored with
// 0o600 permissions and reused across restarts if a probe GET succeeds.
type session struct {
	SessionToken  string `json:"session_token"`
	RememberToken string `json:"remember_token,omitempty"`
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	IsSandboxMode bool   `json:"is_sandbox"`
}

// Credentials selects the sandbox/live username+password pair and the
// optional remember-token used to bypass 2FA.
type Credentials struct {
	UseSandbox    bool
	Username      string
	Password      string
	RememberToken string
}

// TastyTradeClient is the HTTP implementation of Client.
type TastyTradeClient struct {
	httpClient *http.Client
	creds      Credentials
	cachePath  string
	redactor   *redact.Redactor

	sess *session
}

// NewTastyTradeClient builds a client that caches its session token at
// cachePath, rewritten atomically (write-then-rename) with 0o600
// permissions.
func NewTastyTradeClient(creds Credentials, cachePath string) *TastyTradeClient {
	return &TastyTradeClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		creds:      creds,
		cachePath:  cachePath,
		redactor:   redact.New(nil),
	}
}

func (c *TastyTradeClient) Mode() string {
	if c.creds.UseSandbox {
		return "SANDBOX"
	}
	return "LIVE"
}

func (c *TastyTradeClient) IsSandbox() bool { return c.creds.UseSandbox }

func (c *TastyTradeClient) apiURL() string {
	if c.creds.UseSandbox {
		return sandboxAPIURL
	}
	return productionAPIURL
}

// getSession returns the cached session if valid, otherwise authenticates
// and caches the result.
func (c *TastyTradeClient) getSession(ctx context.Context) (*session, error) {
	if c.sess != nil {
		return c.sess, nil
	}

	if cached := c.loadCachedSession(ctx); cached != nil {
		c.sess = cached
		return c.sess, nil
	}

	if c.creds.Username == "" || c.creds.Password == "" {
		return nil, &apperrors.ConfigurationMissingError{Key: "tastytrade credentials"}
	}

	sess, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	c.sess = sess
	c.saveSession(sess)
	return c.sess, nil
}

func (c *TastyTradeClient) loadCachedSession(ctx context.Context) *session {
	if c.cachePath == "" {
		return nil
	}
	data, err := os.ReadFile(c.cachePath)
	if err != nil {
		return nil
	}
	var sess session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}
	if sess.IsSandboxMode != c.creds.UseSandbox {
		return nil
	}
	if !c.probeSession(ctx, &sess) {
		return nil
	}
	return &sess
}

func (c *TastyTradeClient) probeSession(ctx context.Context, sess *session) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL()+"/customers/me", nil)
	if err != nil {
		return false
	}
	c.setAuthHeaders(req, sess)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *TastyTradeClient) saveSession(sess *session) {
	if c.cachePath == "" {
		return
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.cachePath), 0o700); err != nil {
		slog.Warn("tastytrade: failed to create session cache dir", "error", err)
		return
	}
	tmp := c.cachePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		slog.Warn("tastytrade: failed to write session cache", "error", err)
		return
	}
	if err := os.Rename(tmp, c.cachePath); err != nil {
		slog.Warn("tastytrade: failed to rename session cache into place", "error", err)
	}
}

func (c *TastyTradeClient) authenticate(ctx context.Context) (*session, error) {
	payload := map[string]any{
		"login":    c.creds.Username,
		"password": c.creds.Password,
	}
	rememberToken := c.creds.RememberToken
	if rememberToken != "" {
		payload["remember-token"] = rememberToken
	}

	var body struct {
		Data struct {
			SessionToken  string `json:"session-token"`
			RememberToken string `json:"remember-token"`
			User          struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	status, err := c.postJSON(ctx, c.apiURL()+"/sessions", payload, &body)
	if err != nil {
		return nil, fmt.Errorf("tastytrade login: %w", err)
	}

	switch status {
	case http.StatusCreated:
		return &session{
			SessionToken:  body.Data.SessionToken,
			RememberToken: body.Data.RememberToken,
			UserID:        body.Data.User.ID,
			Email:         body.Data.User.Email,
			IsSandboxMode: c.creds.UseSandbox,
		}, nil
	case http.StatusForbidden:
		if body.Error.Code == "invalid_credentials" && strings.Contains(strings.ToLower(body.Error.Message), "two factor") {
			return nil, &apperrors.ConfigurationMissingError{
				Key: "TASTY_REMEMBER_TOKEN (two-factor authentication required; no interactive 2FA handshake)",
			}
		}
		return nil, fmt.Errorf("tastytrade authentication failed: %s", c.redactor.Redact(body.Error.Message))
	default:
		return nil, fmt.Errorf("tastytrade authentication failed with status %d", status)
	}
}

func (c *TastyTradeClient) setAuthHeaders(req *http.Request, sess *session) {
	req.Header.Set("Authorization", sess.SessionToken)
	req.Header.Set("Content-Type", "application/json")
}

func (c *TastyTradeClient) GetPrimaryAccount(ctx context.Context) (*Account, error) {
	sess, err := c.getSession(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		Data struct {
			Items []struct {
				Account struct {
					AccountNumber string `json:"account-number"`
					Nickname      string `json:"nickname"`
				} `json:"account"`
			} `json:"items"`
		} `json:"data"`
	}

	if err := c.getJSON(ctx, sess, c.apiURL()+"/customers/me/accounts", &body); err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}
	if len(body.Data.Items) == 0 {
		return nil, fmt.Errorf("no trading accounts found for this user")
	}

	acct := body.Data.Items[0].Account
	return &Account{AccountNumber: acct.AccountNumber, Nickname: acct.Nickname}, nil
}

func (c *TastyTradeClient) GetPositions(ctx context.Context) ([]Position, error) {
	sess, err := c.getSession(ctx)
	if err != nil {
		return nil, err
	}
	account, err := c.GetPrimaryAccount(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		Data struct {
			Items []struct {
				Symbol           string  `json:"symbol"`
				Quantity         int     `json:"quantity"`
				AverageOpenPrice float64 `json:"average-open-price"`
				InstrumentType   string  `json:"instrument-type"`
				UnderlyingSymbol string  `json:"underlying-symbol"`
			} `json:"items"`
		} `json:"data"`
	}

	url := fmt.Sprintf("%s/accounts/%s/positions", c.apiURL(), account.AccountNumber)
	if err := c.getJSON(ctx, sess, url, &body); err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}

	positions := make([]Position, 0, len(body.Data.Items))
	for _, it := range body.Data.Items {
		positions = append(positions, Position{
			Symbol:           it.Symbol,
			Quantity:         it.Quantity,
			AverageOpenPrice: it.AverageOpenPrice,
			InstrumentType:   it.InstrumentType,
			UnderlyingSymbol: it.UnderlyingSymbol,
		})
	}
	return positions, nil
}

func (c *TastyTradeClient) GetBalances(ctx context.Context) (*Balances, error) {
	sess, err := c.getSession(ctx)
	if err != nil {
		return nil, err
	}
	account, err := c.GetPrimaryAccount(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		Data struct {
			CashBalance           float64 `json:"cash-balance"`
			NetLiquidatingValue   float64 `json:"net-liquidating-value"`
			EquityBuyingPower     float64 `json:"equity-buying-power"`
			DerivativeBuyingPower float64 `json:"derivative-buying-power"`
			DayTradingBuyingPower float64 `json:"day-trading-buying-power"`
		} `json:"data"`
	}

	url := fmt.Sprintf("%s/accounts/%s/balances", c.apiURL(), account.AccountNumber)
	if err := c.getJSON(ctx, sess, url, &body); err != nil {
		return nil, fmt.Errorf("get balances: %w", err)
	}

	return &Balances{
		CashBalance:           body.Data.CashBalance,
		NetLiquidatingValue:   body.Data.NetLiquidatingValue,
		EquityBuyingPower:     body.Data.EquityBuyingPower,
		DerivativeBuyingPower: body.Data.DerivativeBuyingPower,
		DayTradingBuyingPower: body.Data.DayTradingBuyingPower,
	}, nil
}

func (c *TastyTradeClient) SubmitOrderDryRun(ctx context.Context, accountNumber string, payload map[string]any) error {
	sess, err := c.getSession(ctx)
	if err != nil {
		return err
	}

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	url := fmt.Sprintf("%s/accounts/%s/orders/dry-run", c.apiURL(), accountNumber)
	status, err := c.postJSONAuthed(ctx, sess, url, payload, &body)
	if err != nil {
		return fmt.Errorf("order dry run: %w", err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		if body.Error.Message != "" {
			return fmt.Errorf("order validation failed: %s", body.Error.Message)
		}
		return fmt.Errorf("order validation failed: status %d", status)
	}
	return nil
}

func (c *TastyTradeClient) SubmitOrder(ctx context.Context, accountNumber string, payload map[string]any) (*SubmittedOrder, error) {
	sess, err := c.getSession(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		Data struct {
			Order struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"order"`
		} `json:"data"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	url := fmt.Sprintf("%s/accounts/%s/orders", c.apiURL(), accountNumber)
	status, err := c.postJSONAuthed(ctx, sess, url, payload, &body)
	if err != nil {
		return nil, fmt.Errorf("order submission: %w", err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		if body.Error.Message != "" {
			return nil, fmt.Errorf("order execution failed: %s", body.Error.Message)
		}
		return nil, fmt.Errorf("order execution failed: status %d", status)
	}

	return &SubmittedOrder{OrderID: body.Data.Order.ID, Status: body.Data.Order.Status}, nil
}

// Close ends the session server-side (best-effort) and deletes the cache
// file.
func (c *TastyTradeClient) Close(ctx context.Context) error {
	if c.sess != nil {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.apiURL()+"/sessions", nil)
		if err == nil {
			c.setAuthHeaders(req, c.sess)
			if resp, err := c.httpClient.Do(req); err == nil {
				resp.Body.Close()
			}
		}
		c.sess = nil
	}
	if c.cachePath != "" {
		if err := os.Remove(c.cachePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove session cache: %w", err)
		}
	}
	return nil
}

func (c *TastyTradeClient) getJSON(ctx context.Context, sess *session, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	c.setAuthHeaders(req, sess)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *TastyTradeClient) postJSON(ctx context.Context, url string, payload any, out any) (int, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, out)
	}
	return resp.StatusCode, nil
}

func (c *TastyTradeClient) postJSONAuthed(ctx context.Context, sess *session, url string, payload any, out any) (int, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return 0, err
	}
	c.setAuthHeaders(req, sess)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, out)
	}
	return resp.StatusCode, nil
}
