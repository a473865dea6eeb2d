package extraction

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is sent to the extraction endpoint as a structured-output
// constraint and also used locally to validate whatever comes back.
func BuildInvoiceJSONSchema() map[string]any {
	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string", "minLength": 1},
			"unitPrice":   map[string]any{"type": "number"},
			"quantity":    map[string]any{"type": "number"},
			"total":       map[string]any{"type": "number"},
		},
		"required": []string{"description", "unitPrice", "quantity", "total"},
	}

	vendor := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "minLength": 1},
			"address": map[string]any{"type": "string"},
			"taxId":   map[string]any{"type": "string"},
		},
		"required": []string{"name"},
	}

	details := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"number":     map[string]any{"type": "string", "minLength": 1},
			"date":       map[string]any{"type": "string", "minLength": 1},
			"currency":   map[string]any{"type": "string"},
			"subtotal":   map[string]any{"type": "number"},
			"taxPercent": map[string]any{"type": "number"},
			"total":      map[string]any{"type": "number"},
			"poNumber":   map[string]any{"type": "string"},
			"poDate":     map[string]any{"type": "string"},
			"lineItems":  map[string]any{"type": "array", "items": lineItem},
		},
		"required": []string{"number", "date", "lineItems"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"vendor":  vendor,
			"invoice": details,
		},
		"required": []string{"vendor", "invoice"},
	}
}
