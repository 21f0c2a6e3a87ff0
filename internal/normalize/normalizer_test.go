package normalize

import (
	"encoding/base64"
	"testing"

	"github.com/vietcheck/vietcheck/internal/model"
)

func TestResolve_PriorityOrder(t *testing.T) {
	imageData := base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))

	tests := []struct {
		name     string
		req      model.CheckRequest
		wantType model.SubjectType
		wantImg  bool
	}{
		{
			name: "image wins over everything",
			req: model.CheckRequest{
				PhoneNumber: "0912345678",
				BankAccount: "19036224",
				WebsiteURL:  "example.com",
				FacebookURL: "https://facebook.com/p",
				ImageData:   imageData,
			},
			wantImg: true,
		},
		{
			name: "phone wins over bank, website, facebook",
			req: model.CheckRequest{
				PhoneNumber: "0912345678",
				BankAccount: "19036224",
				WebsiteURL:  "example.com",
				FacebookURL: "https://facebook.com/p",
			},
			wantType: model.SubjectPhone,
		},
		{
			name: "bank wins over website, facebook",
			req: model.CheckRequest{
				BankAccount: "19036224",
				WebsiteURL:  "example.com",
				FacebookURL: "https://facebook.com/p",
			},
			wantType: model.SubjectBank,
		},
		{
			name: "website wins over facebook",
			req: model.CheckRequest{
				WebsiteURL:  "example.com",
				FacebookURL: "https://facebook.com/p",
			},
			wantType: model.SubjectWebsite,
		},
		{
			name:     "facebook alone",
			req:      model.CheckRequest{FacebookURL: "https://facebook.com/p"},
			wantType: model.SubjectFacebook,
		},
		{
			name:     "whitespace-only fields are treated as absent",
			req:      model.CheckRequest{PhoneNumber: "   ", BankAccount: "19036224"},
			wantType: model.SubjectBank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := Resolve(tt.req)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if tt.wantImg {
				if input.Image == nil {
					t.Fatal("Expected image input")
				}
				if input.Subject != nil {
					t.Error("Expected no subject for image input")
				}
				return
			}
			if input.Subject == nil {
				t.Fatal("Expected a subject")
			}
			if input.Subject.Type != tt.wantType {
				t.Errorf("Expected subject type %s, got %s", tt.wantType, input.Subject.Type)
			}
		})
	}
}

func TestResolve_AllBlank(t *testing.T) {
	_, err := Resolve(model.CheckRequest{})
	if err == nil {
		t.Fatal("Expected error for all-blank request")
	}
	if !model.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if model.UserMessage(err) != model.MsgNoSubject {
		t.Errorf("Expected message %q, got %q", model.MsgNoSubject, model.UserMessage(err))
	}
}

func TestResolve_BankNameCarried(t *testing.T) {
	input, err := Resolve(model.CheckRequest{BankAccount: " 19036224 ", BankName: " Techcombank "})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if input.Subject.Value != "19036224" {
		t.Errorf("Expected trimmed account, got %q", input.Subject.Value)
	}
	if input.Subject.BankName != "Techcombank" {
		t.Errorf("Expected trimmed bank name, got %q", input.Subject.BankName)
	}
}

func TestResolve_DataURIStripped(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	input, err := Resolve(model.CheckRequest{ImageData: dataURI})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(input.Image) != string(payload) {
		t.Error("Expected decoded payload to match original bytes")
	}
	if input.ImageMIME != "image/png" {
		t.Errorf("Expected MIME image/png, got %s", input.ImageMIME)
	}
}

func TestResolve_BareBase64DefaultsMIME(t *testing.T) {
	input, err := Resolve(model.CheckRequest{
		ImageData: base64.StdEncoding.EncodeToString([]byte("raw")),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if input.ImageMIME != "image/jpeg" {
		t.Errorf("Expected default MIME image/jpeg, got %s", input.ImageMIME)
	}
}

func TestResolve_InvalidImage(t *testing.T) {
	_, err := Resolve(model.CheckRequest{ImageData: "not--valid--base64!!!"})
	if err == nil {
		t.Fatal("Expected error for undecodable image data")
	}
	if !model.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com"},
		{"https://example.com/path?q=1", "example.com"},
		{"http://shop.example.com", "example.com"},
		{"EXAMPLE.COM.", "example.com"},
		{"shop-giare.net", "shop-giare.net"},
	}
	for _, tt := range tests {
		if got := NormalizeDomain(tt.in); got != tt.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
