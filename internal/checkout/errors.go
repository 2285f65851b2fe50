package checkout

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
	ErrNoAddress          = errors.New("a delivery address is required")
	ErrCheckoutInFlight   = errors.New("a checkout attempt is already in progress")
	ErrMissingRedirectURL = errors.New("checkout session response has no redirect url")
)
