package domain

// Transaction is the outbound createToken payload. It lives for one
// initiation attempt and is discarded after the payer is redirected.
type Transaction struct {
	CompanyToken      string
	ServiceType       string
	CustomerPhone     string
	CustomerDialCode  string
	CustomerZip       string
	CustomerCountry   string
	CustomerAddress   string
	CustomerCity      string
	CustomerEmail     string
	CustomerFirstName string
	CustomerLastName  string
	PaymentAmount     float64
	PaymentCurrency   string
	CompanyRef        string
	RedirectURL       string
	TransToken        string
}

type TokenResult struct {
	Success           bool
	Result            string
	ResultExplanation string
	TransToken        string
	TransRef          string
}

// VerificationResult is the parsed verifyToken response. When WellFormed
// is false the gateway returned something that did not parse as the
// expected document and none of the financial fields may be used.
type VerificationResult struct {
	WellFormed          bool
	Result              string
	ResultExplanation   string
	TransactionAmount   float64
	AllocationAmount    float64
	TransactionCurrency string
	TransactionRef      string
}

type Outcome string

const (
	OutcomePaid      Outcome = "PAID"
	OutcomeDeclined  Outcome = "DECLINED"
	OutcomeCancelled Outcome = "CANCELLED"
	OutcomeFailed    Outcome = "FAILED"
	OutcomeMalformed Outcome = "MALFORMED"
)
