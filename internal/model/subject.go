package model

// SubjectType classifies the kind of identifier under investigation
type SubjectType string

const (
	SubjectPhone    SubjectType = "phone"
	SubjectBank     SubjectType = "bank"
	SubjectWebsite  SubjectType = "website"
	SubjectFacebook SubjectType = "facebook"
)

// Label returns the Vietnamese display label used in directives and reports
func (t SubjectType) Label() string {
	switch t {
	case SubjectPhone:
		return "Số điện thoại"
	case SubjectBank:
		return "Số tài khoản"
	case SubjectWebsite:
		return "Website/Tên miền"
	case SubjectFacebook:
		return "Tài khoản Facebook"
	default:
		return string(t)
	}
}

// Subject is the single entity being investigated in one request.
// Immutable once built by the normalizer.
type Subject struct {
	Type     SubjectType `json:"type"`
	Value    string      `json:"value"`
	BankName string      `json:"bank_name,omitempty"` // Supplementary context for bank subjects
}

// CheckRequest carries the raw caller input. At most one of the five kind
// fields is pursued per request; the normalizer applies a fixed priority
// order when several are populated.
type CheckRequest struct {
	PhoneNumber string `json:"phone_number,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
	BankName    string `json:"bank_name,omitempty"`
	WebsiteURL  string `json:"website_url,omitempty"`
	FacebookURL string `json:"facebook_url,omitempty"`

	// ImageData is a screenshot of a conversation/transaction, either as a
	// data URI or as bare base64
	ImageData string `json:"image_data,omitempty"`
}
