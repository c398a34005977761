//go:build staging

package staging

import (
	"fmt"
	"net/http"
	"testing"
)

type itemResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
}

type recipeResponse struct {
	ID int `json:"id"`
}

type checkResponse struct {
	Craftable bool `json:"craftable"`
	Missing   []struct {
		ItemID int `json:"itemId"`
	} `json:"missing"`
}

type rpcResponse struct {
	Result interface{} `json:"result"`
	Error  string      `json:"error"`
}

func createItem(t *testing.T, name string, price int) int {
	t.Helper()
	resp, body := makeRequest(t, "POST", "/api/v1/items", map[string]interface{}{
		"name":     name,
		"price":    price,
		"category": "Staging",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Create item %s: expected 200, got %d: %s", name, resp.StatusCode, body)
	}
	var item itemResponse
	decode(t, body, &item)
	if item.ID == 0 {
		t.Fatalf("Create item %s: no id returned", name)
	}
	t.Cleanup(func() { makeRequest(t, "DELETE", fmt.Sprintf("/api/v1/items/%d", item.ID), nil) })
	return item.ID
}

func setQuantity(t *testing.T, itemID, amount int) {
	t.Helper()
	resp, body := makeRequest(t, "PUT", "/api/v1/inventory", map[string]int{"itemId": itemID, "amount": amount})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Set quantity: expected 200, got %d: %s", resp.StatusCode, body)
	}
}

// TestCraftCycle walks the full create, stock, craft, verify loop
func TestCraftCycle(t *testing.T) {
	ore := createItem(t, "Staging Ore", 10)
	ingot := createItem(t, "Staging Ingot", 30)
	setQuantity(t, ore, 2)

	resp, body := makeRequest(t, "POST", "/api/v1/recipes", map[string]interface{}{
		"name":          "Staging Smelt",
		"category":      "Staging",
		"successChance": 100,
		"costs":         []map[string]interface{}{{"itemId": ore, "amount": 2, "remove": true}},
		"results":       []map[string]interface{}{{"itemId": ingot, "amount": 1, "type": "success"}},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Save recipe: expected 200, got %d: %s", resp.StatusCode, body)
	}
	var rec recipeResponse
	decode(t, body, &rec)
	t.Cleanup(func() { makeRequest(t, "DELETE", fmt.Sprintf("/api/v1/recipes/%d", rec.ID), nil) })

	resp, body = makeRequest(t, "GET", fmt.Sprintf("/api/v1/recipes/%d/check", rec.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Check: expected 200, got %d", resp.StatusCode)
	}
	var check checkResponse
	decode(t, body, &check)
	if !check.Craftable {
		t.Fatalf("Expected recipe to be craftable, missing %v", check.Missing)
	}

	resp, body = makeRequest(t, "POST", fmt.Sprintf("/api/v1/recipes/%d/craft", rec.ID), map[string]string{"outcome": "success"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Craft: expected 200, got %d: %s", resp.StatusCode, body)
	}

	// Second attempt has nothing left to consume
	resp, _ = makeRequest(t, "POST", fmt.Sprintf("/api/v1/recipes/%d/craft", rec.ID), map[string]string{"outcome": "success"})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Second craft: expected 409, got %d", resp.StatusCode)
	}

	resp, body = makeRequest(t, "GET", "/api/v1/inventory", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Inventory: expected 200, got %d", resp.StatusCode)
	}
	var records []struct {
		ItemID int `json:"itemId"`
		Amount int `json:"amount"`
	}
	decode(t, body, &records)
	amounts := map[int]int{}
	for _, r := range records {
		amounts[r.ItemID] = r.Amount
	}
	if amounts[ore] != 0 {
		t.Errorf("Expected ore consumed, got %d", amounts[ore])
	}
	if amounts[ingot] != 1 {
		t.Errorf("Expected 1 ingot, got %d", amounts[ingot])
	}
}

func TestRPCListItems(t *testing.T) {
	resp, body := makeRequest(t, "POST", "/api/v1/rpc", map[string]string{"method": "items.list"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}
	var out rpcResponse
	decode(t, body, &out)
	if out.Error != "" {
		t.Errorf("Unexpected error: %s", out.Error)
	}
}

func TestRPCUnknownMethod(t *testing.T) {
	resp, _ := makeRequest(t, "POST", "/api/v1/rpc", map[string]string{"method": "nope.nothing"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
