package strategy

import (
	"strings"
	"testing"

	"github.com/vietcheck/vietcheck/internal/model"
)

func newTestBuilder() *Builder {
	return NewBuilder(model.DefaultStrategyConfig())
}

func TestBuild_WebsiteDirective(t *testing.T) {
	b := newTestBuilder()
	directive := b.Build(model.Subject{Type: model.SubjectWebsite, Value: "shop-giare.net"})

	// Trust/malware scanners are mandatory for website subjects
	for _, site := range []string{"chongluadao.vn", "scamadviser.com", "virustotal.com"} {
		if !strings.Contains(directive, "site:"+site+" shop-giare.net") {
			t.Errorf("Expected website directive to query site:%s", site)
		}
	}

	// Profile-identifier extraction belongs to facebook subjects only
	if strings.Contains(directive, "Trích xuất ID hoặc Username") {
		t.Error("Expected website directive to NOT include profile-identifier extraction")
	}

	// Website subjects get the second keyword set
	if !strings.Contains(directive, `"shop-giare.net phishing"`) {
		t.Error("Expected website keyword expansion to include phishing")
	}
}

func TestBuild_FacebookDirective(t *testing.T) {
	b := newTestBuilder()
	value := "https://facebook.com/someprofile"
	directive := b.Build(model.Subject{Type: model.SubjectFacebook, Value: value})

	if !strings.Contains(directive, "Trích xuất ID hoặc Username") {
		t.Error("Expected facebook directive to include profile-identifier extraction")
	}
	if !strings.Contains(directive, "Tìm kiếm chính xác link Profile/Page") {
		t.Error("Expected facebook directive to use broad literal-URL search")
	}
	if strings.Contains(directive, "virustotal.com") {
		t.Error("Expected facebook directive to NOT include malware-scan registries")
	}
	if !strings.Contains(directive, "site:checkscam.vn "+value) {
		t.Error("Expected facebook directive to query peer-reported scam trackers")
	}
	// Literal search replaces the site:facebook.com templates
	if strings.Contains(directive, "site:facebook.com "+value) {
		t.Error("Expected facebook directive to NOT use site:facebook.com templates on itself")
	}
}

func TestBuild_PhoneDirective(t *testing.T) {
	b := newTestBuilder()
	directive := b.Build(model.Subject{Type: model.SubjectPhone, Value: "0912345678"})

	if !strings.Contains(directive, "https://checkscam.vn/?qh_ss=0912345678") {
		t.Error("Expected phone directive to include the direct lookup URL")
	}
	if !strings.Contains(directive, "site:toiuytin.com 0912345678") {
		t.Error("Expected phone directive to query phone/bank registries")
	}
	if !strings.Contains(directive, `"site:facebook.com 0912345678 lừa đảo"`) {
		t.Error("Expected phone directive to include facebook keyword search")
	}
	// All nine base risk keywords are expanded
	for _, kw := range model.DefaultStrategyConfig().RiskKeywords {
		if !strings.Contains(directive, `"0912345678 `+kw+`"`) {
			t.Errorf("Expected keyword expansion for %q", kw)
		}
	}
	if strings.Contains(directive, "phishing") {
		t.Error("Expected phone directive to NOT include website-only keywords")
	}
}

func TestBuild_BankNameInterpolated(t *testing.T) {
	b := newTestBuilder()

	with := b.Build(model.Subject{Type: model.SubjectBank, Value: "19036224", BankName: "Techcombank"})
	if !strings.Contains(with, "Ngân hàng: Techcombank") {
		t.Error("Expected bank name as supplementary context")
	}

	without := b.Build(model.Subject{Type: model.SubjectBank, Value: "19036224"})
	if strings.Contains(without, "Ngân hàng:") {
		t.Error("Expected no bank line when bank name is absent")
	}
}

func TestBuild_AnswerSkeletonUniform(t *testing.T) {
	b := newTestBuilder()

	subjects := []model.Subject{
		{Type: model.SubjectPhone, Value: "0912345678"},
		{Type: model.SubjectBank, Value: "19036224"},
		{Type: model.SubjectWebsite, Value: "example.com"},
		{Type: model.SubjectFacebook, Value: "https://facebook.com/p"},
	}
	directives := make([]string, 0, len(subjects)+1)
	for _, s := range subjects {
		directives = append(directives, b.Build(s))
	}
	directives = append(directives, b.BuildImage())

	for i, d := range directives {
		for _, marker := range []string{RiskLevelMarker, SummaryMarker, DetailsMarker, riskLabelSet} {
			if !strings.Contains(d, marker) {
				t.Errorf("Directive %d missing skeleton marker %q", i, marker)
			}
		}
	}
}

func TestBuild_NationalRegistriesAlwaysScanned(t *testing.T) {
	b := newTestBuilder()
	for _, typ := range []model.SubjectType{model.SubjectPhone, model.SubjectBank, model.SubjectWebsite, model.SubjectFacebook} {
		directive := b.Build(model.Subject{Type: typ, Value: "subject-value"})
		for _, site := range []string{"canhbao.ncsc.gov.vn", "tinnhiemmang.vn", "phongchongluadao.vn"} {
			if !strings.Contains(directive, "site:"+site+" subject-value") {
				t.Errorf("Expected %s directive to scan %s", typ, site)
			}
		}
	}
}

func TestBuildImage_InstructsExtractionAndSearch(t *testing.T) {
	b := newTestBuilder()
	directive := b.BuildImage()

	if !strings.Contains(directive, "OCR") {
		t.Error("Expected image directive to instruct OCR extraction")
	}
	if !strings.Contains(directive, "Google Search") {
		t.Error("Expected image directive to instruct independent search of extracted entities")
	}
	if !strings.Contains(directive, "fake bill") {
		t.Error("Expected image directive to name fraud-pattern heuristics")
	}
}

func TestNewsPrompt(t *testing.T) {
	prompt := NewsPrompt(6, 7)
	if !strings.Contains(prompt, "6 tin tức") {
		t.Errorf("Expected item count in prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "7 ngày") {
		t.Errorf("Expected window in prompt, got %q", prompt)
	}
}
