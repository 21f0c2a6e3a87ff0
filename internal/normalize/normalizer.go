// Package normalize resolves raw multi-field check requests into exactly one
// investigation input: a typed subject or an image payload.
package normalize

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"

	"github.com/vietcheck/vietcheck/internal/model"
	"golang.org/x/net/publicsuffix"
)

// Input is the resolved investigation input. Exactly one of Subject and
// Image is set.
type Input struct {
	Subject   *model.Subject
	Image     []byte
	ImageMIME string
}

const defaultImageMIME = "image/jpeg"

var dataURIPrefix = regexp.MustCompile(`^data:(image/[a-zA-Z0-9.+-]+);base64,`)

// Resolve picks the single subject to pursue. Priority when several fields
// are populated: image > phone > bank account > website > facebook; the rest
// are treated as absent. An all-blank request is rejected before any
// external call.
func Resolve(req model.CheckRequest) (*Input, error) {
	if strings.TrimSpace(req.ImageData) != "" {
		return resolveImage(req.ImageData)
	}

	if v := strings.TrimSpace(req.PhoneNumber); v != "" {
		return &Input{Subject: &model.Subject{Type: model.SubjectPhone, Value: v}}, nil
	}
	if v := strings.TrimSpace(req.BankAccount); v != "" {
		return &Input{Subject: &model.Subject{
			Type:     model.SubjectBank,
			Value:    v,
			BankName: strings.TrimSpace(req.BankName),
		}}, nil
	}
	if v := strings.TrimSpace(req.WebsiteURL); v != "" {
		return &Input{Subject: &model.Subject{Type: model.SubjectWebsite, Value: NormalizeDomain(v)}}, nil
	}
	if v := strings.TrimSpace(req.FacebookURL); v != "" {
		return &Input{Subject: &model.Subject{Type: model.SubjectFacebook, Value: v}}, nil
	}

	return nil, model.NewValidationError(model.MsgNoSubject)
}

// resolveImage strips an optional data-URI header and decodes the payload
func resolveImage(data string) (*Input, error) {
	data = strings.TrimSpace(data)
	mime := defaultImageMIME

	if m := dataURIPrefix.FindStringSubmatch(data); m != nil {
		mime = m[1]
		data = data[len(m[0]):]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		// Some callers emit unpadded base64
		raw, err = base64.RawStdEncoding.DecodeString(data)
	}
	if err != nil || len(raw) == 0 {
		return nil, model.NewValidationError(model.MsgInvalidImage)
	}

	return &Input{Image: raw, ImageMIME: mime}, nil
}

// NormalizeDomain reduces a pasted website value to its registrable domain
// so registry queries target "example.com" rather than a full URL. Falls
// back to the trimmed raw value when the input cannot be parsed.
func NormalizeDomain(raw string) string {
	s := strings.TrimSpace(raw)

	host := s
	if strings.Contains(s, "/") || strings.Contains(s, ":") {
		candidate := s
		if !strings.Contains(candidate, "://") {
			candidate = "https://" + candidate
		}
		if u, err := url.Parse(candidate); err == nil && u.Hostname() != "" {
			host = u.Hostname()
		}
	}

	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld
	}
	return host
}
