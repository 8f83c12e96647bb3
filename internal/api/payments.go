package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/frly/client-go/internal/split"
	"github.com/frly/client-go/internal/types"
)

// ListBalances returns the server-computed net balance per member for a
// PAYMENT section.
func ListBalances(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64) ([]types.Balance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/payments/balances", baseURL, sectionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list balances: status %d", resp.StatusCode)
	}

	var balances []types.Balance
	if err := json.NewDecoder(resp.Body).Decode(&balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// ListExpenses returns all recorded expenses of a PAYMENT section, newest
// first.
func ListExpenses(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64) ([]types.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/payments/expenses", baseURL, sectionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list expenses: status %d", resp.StatusCode)
	}

	var expenses []types.Expense
	if err := json.NewDecoder(resp.Body).Decode(&expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// AddExpense validates and records a new expense, returning its id. The
// validation runs before any network call; a validation error means nothing
// was submitted.
func AddExpense(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64, req types.ExpenseRequest) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := split.Validate(req); err != nil {
		return 0, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return 0, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/payments/expenses", baseURL, sectionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("add expense: status %d", resp.StatusCode)
	}

	var id int64
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateExpense validates and replaces an existing expense, shares included.
func UpdateExpense(ctx context.Context, httpClient *http.Client, baseURL string, sectionID, expenseID int64, req types.ExpenseRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := split.Validate(req); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/payments/expenses/%d", baseURL, sectionID, expenseID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return types.ErrNotFound
	default:
		return fmt.Errorf("update expense: status %d", resp.StatusCode)
	}
}

// DeleteExpense removes an expense; the server recomputes balances.
func DeleteExpense(ctx context.Context, httpClient *http.Client, baseURL string, sectionID, expenseID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/payments/expenses/%d", baseURL, sectionID, expenseID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return types.ErrNotFound
	default:
		return fmt.Errorf("delete expense: status %d", resp.StatusCode)
	}
}
