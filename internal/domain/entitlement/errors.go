package entitlement

import "errors"

var (
	ErrEntitlementNotFound = errors.New("Entitlement not found")
)
