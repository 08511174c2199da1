package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/campusledger/fees.api/config"
	"github.com/campusledger/fees.api/mappers"
	"github.com/campusledger/fees.api/models"
)

// GatewayService talks to the external payment gateway over HTTP
type GatewayService struct {
	Config config.Config
}

// CreateTransaction asks the gateway to start a transaction for the attempt and returns the gateway's view of it
func (gw *GatewayService) CreateTransaction(attemptID string, invoice *models.InvoiceDB, amount int64) (*models.IncomingGatewayResponse, ResponseType, error) {
	gatewayRequest := models.OutgoingGatewayRequest{
		Amount:      amount,
		Reference:   invoice.ID,
		ReturnURL:   fmt.Sprintf("%s/callback/payments/%s", strings.TrimSuffix(gw.Config.PaymentsWebURL, "/"), attemptID),
		Description: invoice.Description,
	}

	requestBody, err := json.Marshal(gatewayRequest)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading gateway request: [%s]", err)
	}

	request, err := http.NewRequest(http.MethodPost, gw.transactionsURL(), bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, Error, fmt.Errorf("error generating request for gateway: [%s]", err)
	}
	gw.addHeaders(request)

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, Error, fmt.Errorf("error sending request to gateway to start transaction: [%s]", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading response from gateway: [%s]", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, Error, fmt.Errorf("error status [%v] back from gateway: [%s]", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	gatewayResponse := &models.IncomingGatewayResponse{}
	err = json.Unmarshal(body, gatewayResponse)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading response from gateway: [%s]", err)
	}
	if gatewayResponse.TransactionID == "" {
		return nil, Error, fmt.Errorf("gateway response has no transaction id")
	}

	return gatewayResponse, Success, nil
}

// CheckTransactionStatus gets the transaction from the gateway and maps its state onto an attempt status
func (gw *GatewayService) CheckTransactionStatus(transactionID string) (*models.StatusResponse, ResponseType, error) {
	request, err := http.NewRequest(http.MethodGet, gw.transactionsURL()+"/"+transactionID, nil)
	if err != nil {
		return nil, Error, fmt.Errorf("error generating request for gateway: [%s]", err)
	}
	gw.addHeaders(request)

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, Error, fmt.Errorf("error sending request to gateway to check transaction status: [%s]", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, NotFound, fmt.Errorf("transaction [%s] not found at gateway", transactionID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, Error, fmt.Errorf("error status [%v] back from gateway when checking transaction status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading response from gateway when checking transaction status: [%s]", err)
	}

	gatewayResponse := &models.IncomingGatewayResponse{}
	err = json.Unmarshal(body, gatewayResponse)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading response from gateway when checking transaction status: [%s]", err)
	}

	return &models.StatusResponse{Status: mappers.MapGatewayStateToAttemptStatus(gatewayResponse.State)}, Success, nil
}

func (gw *GatewayService) transactionsURL() string {
	return strings.TrimSuffix(gw.Config.GatewayURL, "/") + "/transactions"
}

func (gw *GatewayService) addHeaders(request *http.Request) {
	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+gw.Config.GatewayBearerToken)
	request.Header.Add("content-type", "application/json")
}
