package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
	"github.com/madrasah-accounts/backend/internal/integration/persistence/model"
)

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iAmLoggedInAsAdmin(ctx context.Context) (context.Context, error) {
	return login(ctx, fmt.Sprintf(`{"password": %q}`, adminPassword))
}

func iAmLoggedInAsATrialUser(ctx context.Context) (context.Context, error) {
	return login(ctx, `{"trial": true}`)
}

func login(ctx context.Context, body string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	resp, err := http.Post(tc.server.URL+"/api/v1/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		return ctx, fmt.Errorf("failed to log in: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ctx, fmt.Errorf("failed to read login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("login failed with status %d: %s", resp.StatusCode, raw)
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ctx, fmt.Errorf("failed to parse login response: %w", err)
	}
	tc.sessionToken = parsed.Token

	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.sessionToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

// theFollowingTransactionsExist seeds ledger rows straight into storage.
// Expected columns: date, category, subcategory, sender, receiver, amount
// and optionally remarks.
func theFollowingTransactionsExist(ctx context.Context, tbl *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(tbl.Rows) < 2 {
		return fmt.Errorf("expected a header row and at least one data row")
	}

	header := tbl.Rows[0]
	for _, row := range tbl.Rows[1:] {
		values := make(map[string]string, len(header.Cells))
		for i, cell := range header.Cells {
			values[cell.Value] = row.Cells[i].Value
		}

		date, ok := entity.ParseDate(values["date"])
		if !ok {
			return fmt.Errorf("invalid date %q", values["date"])
		}
		amount, err := decimal.NewFromString(values["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", values["amount"], err)
		}

		record := model.TransactionModel{
			Date:        date,
			Category:    values["category"],
			Subcategory: values["subcategory"],
			Sender:      values["sender"],
			Receiver:    values["receiver"],
			Remarks:     values["remarks"],
			Amount:      amount,
			CreatedAt:   time.Now(),
		}
		if err := tc.db.DbConn.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}
	return nil
}

// theFollowingCounterpartiesExist seeds reference entities. Expected
// columns: name, kind and optionally trial (true/false).
func theFollowingCounterpartiesExist(ctx context.Context, tbl *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(tbl.Rows) < 2 {
		return fmt.Errorf("expected a header row and at least one data row")
	}

	header := tbl.Rows[0]
	for _, row := range tbl.Rows[1:] {
		values := make(map[string]string, len(header.Cells))
		for i, cell := range header.Cells {
			values[cell.Value] = row.Cells[i].Value
		}

		record := model.CounterpartyModel{
			Name:      values["name"],
			Kind:      values["kind"],
			IsTrial:   values["trial"] == "true",
			CreatedAt: time.Now(),
		}
		if err := tc.db.DbConn.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to seed counterparty: %w", err)
		}
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	value, err := lookupResponseField(ctx, field)
	if err != nil {
		return err
	}
	actual := formatFieldValue(value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := lookupResponseField(ctx, field)
	return err
}

// lookupResponseField resolves a dot-separated path into the JSON body.
// Numeric path segments index into arrays.
func lookupResponseField(ctx context.Context, field string) (interface{}, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}

	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, segment := range strings.Split(field, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", field, string(tc.responseBody))
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", field, string(tc.responseBody))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response. Body: %s", field, string(tc.responseBody))
		}
	}
	return current, nil
}

func formatFieldValue(value interface{}) string {
	// JSON numbers decode as float64; render integers without a decimal
	// point so feature tables can say "300" rather than "300.000000".
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}
