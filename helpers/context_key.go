package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyCaller is a specific key for identifying the authenticated "caller" added to the http request
var ContextKeyCaller = ContextKey("caller")

// ContextKeyInvoice is a specific key for identifying "invoice" contexts added to the http request
var ContextKeyInvoice = ContextKey("invoice")

// ContextKeyDispute is a specific key for identifying "dispute" contexts added to the http request
var ContextKeyDispute = ContextKey("dispute")
