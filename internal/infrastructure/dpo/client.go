package dpo

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/payquill/dpo-payment-service/internal/domain"
)

const resultTokenCreated = "000"

// Client talks to the DPO Pay API3G endpoint. Both operations are plain
// request/response XML posts; the caller owns all retry policy.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

func NewClient(apiURL string, timeout time.Duration) *Client {
	return &Client{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type createTokenRequest struct {
	XMLName      xml.Name         `xml:"API3G"`
	CompanyToken string           `xml:"CompanyToken"`
	Request      string           `xml:"Request"`
	Transaction  tokenTransaction `xml:"Transaction"`
	Services     tokenServices    `xml:"Services"`
}

type tokenTransaction struct {
	PaymentAmount     string `xml:"PaymentAmount"`
	PaymentCurrency   string `xml:"PaymentCurrency"`
	CompanyRef        string `xml:"CompanyRef"`
	RedirectURL       string `xml:"RedirectURL"`
	BackURL           string `xml:"BackURL"`
	CustomerFirstName string `xml:"customerFirstName"`
	CustomerLastName  string `xml:"customerLastName"`
	CustomerAddress   string `xml:"customerAddress"`
	CustomerCity      string `xml:"customerCity"`
	CustomerCountry   string `xml:"customerCountry"`
	CustomerZip       string `xml:"customerZip"`
	CustomerPhone     string `xml:"customerPhone"`
	CustomerDialCode  string `xml:"customerDialCode"`
	CustomerEmail     string `xml:"customerEmail"`
}

type tokenServices struct {
	Service tokenService `xml:"Service"`
}

type tokenService struct {
	ServiceType        string `xml:"ServiceType"`
	ServiceDescription string `xml:"ServiceDescription"`
	ServiceDate        string `xml:"ServiceDate"`
}

type verifyTokenRequest struct {
	XMLName          xml.Name `xml:"API3G"`
	CompanyToken     string   `xml:"CompanyToken"`
	Request          string   `xml:"Request"`
	TransactionToken string   `xml:"TransactionToken"`
}

// apiResponse covers both createToken and verifyToken replies. Numeric
// fields stay strings here so one junk digit does not reject the whole
// document before we can read the result code.
type apiResponse struct {
	XMLName             xml.Name `xml:"API3G"`
	Result              string   `xml:"Result"`
	ResultExplanation   string   `xml:"ResultExplanation"`
	TransToken          string   `xml:"TransToken"`
	TransRef            string   `xml:"TransRef"`
	TransactionAmount   string   `xml:"TransactionAmount"`
	AllocationAmount    string   `xml:"AllocationAmount"`
	TransactionCurrency string   `xml:"TransactionCurrency"`
	TransactionRef      string   `xml:"TransactionRef"`
}

func (c *Client) CreateToken(ctx context.Context, trans *domain.Transaction) (*domain.TokenResult, error) {
	req := createTokenRequest{
		CompanyToken: trans.CompanyToken,
		Request:      "createToken",
		Transaction: tokenTransaction{
			PaymentAmount:     strconv.FormatFloat(trans.PaymentAmount, 'f', 2, 64),
			PaymentCurrency:   trans.PaymentCurrency,
			CompanyRef:        trans.CompanyRef,
			RedirectURL:       trans.RedirectURL,
			BackURL:           trans.RedirectURL,
			CustomerFirstName: trans.CustomerFirstName,
			CustomerLastName:  trans.CustomerLastName,
			CustomerAddress:   trans.CustomerAddress,
			CustomerCity:      trans.CustomerCity,
			CustomerCountry:   trans.CustomerCountry,
			CustomerZip:       trans.CustomerZip,
			CustomerPhone:     trans.CustomerPhone,
			CustomerDialCode:  trans.CustomerDialCode,
			CustomerEmail:     trans.CustomerEmail,
		},
		Services: tokenServices{
			Service: tokenService{
				ServiceType:        trans.ServiceType,
				ServiceDescription: trans.CompanyRef,
				ServiceDate:        time.Now().Format("2006/01/02 15:04"),
			},
		},
	}

	body, err := c.post(ctx, "createToken", req)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return &domain.TokenResult{Success: false}, nil
	}

	return &domain.TokenResult{
		Success:           resp.Result == resultTokenCreated,
		Result:            resp.Result,
		ResultExplanation: resp.ResultExplanation,
		TransToken:        resp.TransToken,
		TransRef:          resp.TransRef,
	}, nil
}

func (c *Client) Verify(ctx context.Context, companyToken, transToken string) (*domain.VerificationResult, error) {
	req := verifyTokenRequest{
		CompanyToken:     companyToken,
		Request:          "verifyToken",
		TransactionToken: transToken,
	}

	body, err := c.post(ctx, "verifyToken", req)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return &domain.VerificationResult{WellFormed: false}, nil
	}
	if resp.Result == "" {
		return &domain.VerificationResult{WellFormed: false}, nil
	}

	transactionAmount, amountErr := parseAmount(resp.TransactionAmount)
	allocationAmount, allocErr := parseAmount(resp.AllocationAmount)
	if amountErr != nil || allocErr != nil {
		return &domain.VerificationResult{WellFormed: false}, nil
	}

	return &domain.VerificationResult{
		WellFormed:          true,
		Result:              resp.Result,
		ResultExplanation:   resp.ResultExplanation,
		TransactionAmount:   transactionAmount,
		AllocationAmount:    allocationAmount,
		TransactionCurrency: resp.TransactionCurrency,
		TransactionRef:      resp.TransactionRef,
	}, nil
}

func (c *Client) post(ctx context.Context, op string, payload any) ([]byte, error) {
	reqBody, err := xml.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", op, err)
	}
	reqBody = append([]byte(xml.Header), reqBody...)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/xml")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
	}

	return body, nil
}

// parseAmount tolerates the empty string the gateway sends for fields it
// omits, but rejects anything else that is not a number.
func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
