package models

// OutgoingGatewayRequest is the request sent to the gateway to initiate a transaction
type OutgoingGatewayRequest struct {
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
	ReturnURL   string `json:"return_url"`
	Description string `json:"description"`
}

// IncomingGatewayResponse is the transaction resource returned by the gateway
type IncomingGatewayResponse struct {
	TransactionID string       `json:"transaction_id"`
	Amount        int64        `json:"amount"`
	State         State        `json:"state"`
	Reference     string       `json:"reference"`
	CreatedDate   string       `json:"created_date"`
	Links         GatewayLinks `json:"_links"`
}

// State is the current state of the transaction
type State struct {
	Status   string `json:"status"`
	Finished bool   `json:"finished"`
	Code     string `json:"code"`
}

// GatewayLinks contains links for this transaction, including the next_url to continue the journey
type GatewayLinks struct {
	Self    Link `json:"self"`
	NextURL Link `json:"next_url"`
}

// Link is a single gateway hypermedia link
type Link struct {
	HREF   string `json:"href"`
	Method string `json:"method"`
}
