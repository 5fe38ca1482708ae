package services

import "fmt"

// CartItem is one line of a checkout submission. The price is the unit price
// the client saw at browse time; it is captured as-is, not re-checked against
// the catalog.
type CartItem struct {
	ID       int     `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderSubmission is a single checkout request.
type OrderSubmission struct {
	UserID    int        `json:"userId"`
	CartItems []CartItem `json:"cartItems"`
	Address   string     `json:"address"`
}

// InvalidSubmissionError reports a structurally invalid checkout submission.
// InvalidItems lists every offending cart line so the client can point at the
// exact entries that failed.
type InvalidSubmissionError struct {
	Reason       string
	InvalidItems []CartItem
}

func (e *InvalidSubmissionError) Error() string {
	if len(e.InvalidItems) > 0 {
		return fmt.Sprintf("%s (%d invalid items)", e.Reason, len(e.InvalidItems))
	}
	return e.Reason
}

// ValidateOrderSubmission checks the structural and numeric integrity of a
// submission before any persistence happens: owner and address present, at
// least one line, and every line with a positive product ID, a positive
// quantity and a non-negative price. It does not verify that product IDs exist
// in the catalog.
func ValidateOrderSubmission(sub OrderSubmission) *InvalidSubmissionError {
	if sub.UserID <= 0 || len(sub.CartItems) == 0 || sub.Address == "" {
		return &InvalidSubmissionError{
			Reason: "Invalid order data. User ID, cart items, and address are required.",
		}
	}

	var invalid []CartItem
	for _, item := range sub.CartItems {
		if item.ID <= 0 || item.Quantity <= 0 || item.Price < 0 {
			invalid = append(invalid, item)
		}
	}
	if len(invalid) > 0 {
		return &InvalidSubmissionError{
			Reason:       "All cart items must have a valid product ID (positive integer), quantity (positive integer), and price (non-negative number).",
			InvalidItems: invalid,
		}
	}

	return nil
}
