package agent

import (
	"fmt"
	"strings"

	"shopagent/model"
)

// Fixed reply strings. Downstream consumers match on these, so changing them
// is a compatibility break.
const (
	Greeting = "Hello! How can I help you today? (Type 'bye' to exit)"
	Farewell = "Goodbye! Have a nice day!"

	ReplyNoProducts = "Sorry I couldn't find any products for your search."
	ReplyFallback   = "I'm not sure how to respond to that."
	ReplyRefusal    = "Sorry! I cannot process this request."
)

// DefaultExitToken ends a session when a user line equals it,
// case-insensitively.
const DefaultExitToken = "bye"

func errorReply(err error) string {
	return fmt.Sprintf("Sorry, I encountered an error: %v", err)
}

// GreetingFor renders the session greeting naming the exit token. Greeting
// is this string for the default token.
func GreetingFor(exitToken string) string {
	return fmt.Sprintf("Hello! How can I help you today? (Type '%s' to exit)", exitToken)
}

// FormatSearchResults renders a product list as a single reply line. An
// empty list gets the distinct no-products message, never a bare prefix.
func FormatSearchResults(products []model.Product) string {
	if len(products) == 0 {
		return ReplyNoProducts
	}

	parts := make([]string, len(products))
	for i, p := range products {
		parts[i] = fmt.Sprintf("%s (ID: %s)", p.Name, p.ID)
	}
	return "Here are the products I found: " + strings.Join(parts, ", ")
}

// FormatProductDetails renders a single product's detail line.
func FormatProductDetails(p model.Product) string {
	return fmt.Sprintf("Product %s: price: $%.2f - %s", p.ID, p.Price, p.Description)
}

// FormatProductNotFound renders the miss message for an unknown product ID.
func FormatProductNotFound(productID string) string {
	return fmt.Sprintf("Product %s not found", productID)
}
