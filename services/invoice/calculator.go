package invoice

import "billify/models"

// Calculate derives each line's total and the bill's grand total from a draft
// item list. It is pure: whatever totals the caller supplied are discarded
// and recomputed, and running it again over its own output changes nothing.
// Validation happens before this step; Calculate assumes its input is valid.
func Calculate(items []models.LineItemInput) ([]models.LineItem, int64) {
	out := make([]models.LineItem, 0, len(items))
	var grandTotal int64
	for _, item := range items {
		total := item.Price * item.Quantity
		out = append(out, models.LineItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    total,
		})
		grandTotal += total
	}
	return out, grandTotal
}
