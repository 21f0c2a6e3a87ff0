// Package strategy composes the investigation directive sent to the external
// search-augmented model. The directive encodes a per-subject-type search
// strategy, the classification policy, and the fixed answer skeleton that
// the verdict parser depends on.
package strategy

import (
	"fmt"
	"strings"

	"github.com/vietcheck/vietcheck/internal/model"
)

// Answer-skeleton markers. The directive repeats these identically for every
// subject type so parsing stays uniform.
const (
	RiskLevelMarker = "Mức độ rủi ro:"
	SummaryMarker   = "Tóm tắt:"
	DetailsMarker   = "Chi tiết:"

	riskLabelSet = "[AN TOÀN | CẢNH BÁO | RỦI RO CAO | KHÔNG RÕ]"
)

// Builder composes directives from the configured registry and keyword tables
type Builder struct {
	cfg model.StrategyConfig
}

// NewBuilder creates a builder over the given strategy tables
func NewBuilder(cfg model.StrategyConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Build composes the text directive for a phone/bank/website/facebook subject
func (b *Builder) Build(subject model.Subject) string {
	var sb strings.Builder

	sb.WriteString("Bạn là một chuyên gia điều tra an ninh mạng và phát hiện lừa đảo trực tuyến (OSINT) tại Việt Nam.\n\n")

	sb.WriteString("ĐỐI TƯỢNG ĐIỀU TRA:\n")
	fmt.Fprintf(&sb, "- Loại: %s\n", subject.Type.Label())
	fmt.Fprintf(&sb, "- Giá trị: %q\n", subject.Value)
	if subject.Type == model.SubjectBank && subject.BankName != "" {
		fmt.Fprintf(&sb, "- Ngân hàng: %s\n", subject.BankName)
	}
	sb.WriteString("\n")

	sb.WriteString("NHIỆM VỤ CẤP BÁCH:\n")
	sb.WriteString("Sử dụng công cụ Google Search để thực hiện \"Deep Search\" (Tìm kiếm sâu) nhằm tìm ra bất kỳ dấu vết tiêu cực (\"phốt\") nào liên quan đến đối tượng trên.\n\n")

	sb.WriteString("CHIẾN LƯỢC TÌM KIẾM MỞ RỘNG (BẮT BUỘC):\n\n")

	sb.WriteString("1. QUÉT CÁC KHO DỮ LIỆU TÍN NHIỆM & CẢNH BÁO QUỐC GIA:\n")
	b.writeRegistryQueries(&sb, b.cfg.NationalRegistries, subject.Value)
	sb.WriteString("\n")

	sb.WriteString("2. QUÉT CÁC KHO DỮ LIỆU CỘNG ĐỒNG CHUYÊN BIỆT:\n")
	b.writeCommunityBlock(&sb, subject)
	sb.WriteString("\n")

	sb.WriteString("3. QUÉT FACEBOOK TOÀN DIỆN:\n")
	b.writeFacebookBlock(&sb, subject)
	sb.WriteString("\n")

	sb.WriteString("4. TÌM KIẾM TỪ KHÓA MỞ RỘNG TRÊN GOOGLE:\n")
	sb.WriteString("   - Kết hợp với các từ khóa rủi ro:\n")
	b.writeKeywordBlock(&sb, subject)
	sb.WriteString("\n")

	sb.WriteString(classificationPolicy)
	sb.WriteString(answerSkeleton)

	return sb.String()
}

// BuildImage composes the directive for a screenshot check. Entity
// extraction and fraud-pattern analysis are delegated to the model.
func (b *Builder) BuildImage() string {
	var sb strings.Builder

	sb.WriteString("Bạn là một chuyên gia an ninh mạng và điều tra lừa đảo trực tuyến (OSINT).\n\n")
	sb.WriteString("NHIỆM VỤ CỦA BẠN:\n")
	sb.WriteString("1. Phân tích hình ảnh được cung cấp (đây là ảnh chụp màn hình tin nhắn, giao dịch ngân hàng, hoặc hồ sơ mạng xã hội).\n")
	sb.WriteString("2. Sử dụng khả năng OCR để đọc toàn bộ văn bản trong ảnh.\n")
	sb.WriteString("3. Trích xuất các thực thể quan trọng: Số điện thoại, Số tài khoản ngân hàng, Tên người nhận, Link Website, Tên Facebook, Mã giao dịch...\n")
	sb.WriteString("4. Phân tích ngữ nghĩa và ngữ cảnh: Tìm kiếm các dấu hiệu lừa đảo như tin nhắn giả mạo brandname, dụ dỗ việc nhẹ lương cao, biên lai chuyển tiền giả (fake bill), đe dọa, hoặc thông báo trúng thưởng giả.\n\n")

	sb.WriteString("HÀNH ĐỘNG TÌM KIẾM (Tự động):\n")
	fmt.Fprintf(&sb, "- Nếu trích xuất được SĐT, STK, Website, hãy sử dụng Google Search để kiểm tra xem chúng có nằm trong danh sách đen (%s) hay không.\n", b.registryNames())
	sb.WriteString("- Tìm kiếm các từ khóa liên quan đến nội dung tin nhắn nếu nó có dấu hiệu kịch bản lừa đảo phổ biến.\n\n")

	sb.WriteString("ĐỊNH DẠNG TRẢ LỜI (VĂN BẢN THUẦN - MARKDOWN):\n")
	sb.WriteString("---------------------------------------------------\n")
	fmt.Fprintf(&sb, "%s %s\n", RiskLevelMarker, riskLabelSet)
	fmt.Fprintf(&sb, "%s [Tóm tắt ngắn gọn nội dung ảnh và kết luận rủi ro]\n", SummaryMarker)
	fmt.Fprintf(&sb, "%s\n", DetailsMarker)
	sb.WriteString(`[Báo cáo chi tiết:
 - **Phân tích hình ảnh**: Liệt kê các thông tin trích xuất được (SĐT, STK...). Nhận xét về tính xác thực của hình ảnh (font chữ, layout có bị chỉnh sửa không).
 - **Dấu hiệu đáng ngờ**: Chỉ ra các điểm bất thường trong nội dung tin nhắn/giao dịch.
 - **Kết quả kiểm tra dữ liệu**: Kết quả tìm kiếm các thông tin trích xuất được trên mạng.
 - **Lời khuyên**: Cần làm gì tiếp theo.]
`)
	sb.WriteString("---------------------------------------------------\n")

	return sb.String()
}

// NewsPrompt requests recent scam-warning news from mainstream outlets
func NewsPrompt(count, windowDays int) string {
	return fmt.Sprintf(
		"Tìm kiếm %d tin tức mới nhất về cảnh báo lừa đảo trực tuyến, tội phạm mạng tại Việt Nam trong %d ngày qua từ các báo chính thống.",
		count, windowDays,
	)
}

func (b *Builder) writeRegistryQueries(sb *strings.Builder, queries []model.RegistryQuery, value string) {
	for _, q := range queries {
		if q.Keyword != "" {
			fmt.Fprintf(sb, "   - \"site:%s %s %s\"\n", q.Site, value, q.Keyword)
		} else {
			fmt.Fprintf(sb, "   - \"site:%s %s\"\n", q.Site, value)
		}
	}
}

// writeCommunityBlock picks the registry list per subject type: website
// subjects get trust/malware scanners, everything else gets peer-reported
// scam trackers, with a direct lookup URL for phone/bank values.
func (b *Builder) writeCommunityBlock(sb *strings.Builder, subject model.Subject) {
	switch subject.Type {
	case model.SubjectWebsite:
		b.writeRegistryQueries(sb, b.cfg.WebsiteRegistries, subject.Value)
	case model.SubjectFacebook:
		b.writeRegistryQueries(sb, b.cfg.FacebookRegistries, subject.Value)
	default:
		if b.cfg.LookupURLTemplate != "" {
			fmt.Fprintf(sb, "   - Truy cập đường dẫn định danh: %q\n",
				fmt.Sprintf(b.cfg.LookupURLTemplate, subject.Value))
		}
		b.writeRegistryQueries(sb, b.cfg.PhoneBankRegistries, subject.Value)
	}
}

func (b *Builder) writeFacebookBlock(sb *strings.Builder, subject model.Subject) {
	if subject.Type == model.SubjectFacebook {
		sb.WriteString("   - Tìm kiếm chính xác link Profile/Page này trên Google để xem có bài đăng cảnh báo nào từ các trang web khác không.\n")
		fmt.Fprintf(sb, "   - Cú pháp: \"%s lừa đảo\", \"%s phốt\"\n", subject.Value, subject.Value)
		return
	}
	sb.WriteString("   - Cú pháp:\n")
	fmt.Fprintf(sb, "     - \"site:facebook.com %s\"\n", subject.Value)
	for _, kw := range []string{"lừa đảo", "phốt", "cảnh báo"} {
		fmt.Fprintf(sb, "     - \"site:facebook.com %s %s\"\n", subject.Value, kw)
	}
}

func (b *Builder) writeKeywordBlock(sb *strings.Builder, subject model.Subject) {
	for _, kw := range b.cfg.RiskKeywords {
		fmt.Fprintf(sb, "     - \"%s %s\"\n", subject.Value, kw)
	}
	if subject.Type == model.SubjectWebsite {
		for _, kw := range b.cfg.WebsiteKeywords {
			fmt.Fprintf(sb, "     - \"%s %s\"\n", subject.Value, kw)
		}
	}
	if subject.Type == model.SubjectFacebook {
		fmt.Fprintf(sb, "     - Trích xuất ID hoặc Username từ link Facebook %q để tìm kiếm.\n", subject.Value)
		sb.WriteString("     - Tìm kiếm các bài viết trong các Group \"Chống lừa đảo\", \"Bóc phốt\" có chứa link Facebook này.\n")
	}
}

// registryNames renders a short comma list of known trackers for the image
// directive
func (b *Builder) registryNames() string {
	names := make([]string, 0, 4)
	seen := make(map[string]bool)
	for _, q := range append(append([]model.RegistryQuery{}, b.cfg.PhoneBankRegistries...), b.cfg.WebsiteRegistries...) {
		name := strings.TrimSuffix(q.Site, ".vn")
		name = strings.TrimSuffix(name, ".com")
		name = strings.TrimSuffix(name, ".net")
		if seen[q.Site] || len(names) >= 4 {
			continue
		}
		seen[q.Site] = true
		names = append(names, name)
	}
	return strings.Join(names, ", ") + "..."
}

// classificationPolicy states the grading guidance. The final label is still
// re-derived locally because the model's stated label and its prose are not
// always consistent.
const classificationPolicy = `QUY TRÌNH PHÂN TÍCH VÀ KẾT LUẬN:

- RỦI RO CAO:
  - Xuất hiện trên Cổng cảnh báo NCSC, checkscam, mmo4me, scam.vn, chongluadao...
  - Có bài đăng tố cáo chi tiết trên Facebook/Diễn đàn (Otofun, Voz...).
- CẢNH BÁO:
  - Thông tin không rõ ràng, nick ảo, web mới, hoặc có người nghi ngờ nhưng chưa kết luận.
  - Dấu hiệu nick clone, mới tạo, bán hàng giá rẻ bất thường.
- AN TOÀN/KHÔNG RÕ:
  - Không tìm thấy thông tin xấu (Không rõ).
  - Được xác thực bởi Tín Nhiệm Mạng hoặc các nguồn uy tín (An toàn).

`

var answerSkeleton = "ĐỊNH DẠNG TRẢ LỜI (VĂN BẢN THUẦN - KHÔNG DÙNG JSON):\n" +
	"---------------------------------------------------\n" +
	RiskLevelMarker + " " + riskLabelSet + "\n" +
	SummaryMarker + " [Viết 2-3 câu tóm tắt ngắn gọn, súc tích bằng ngôn ngữ tự nhiên]\n" +
	DetailsMarker + "\n" +
	`[Viết một bài báo cáo phân tích chi tiết, dễ đọc, thân thiện.
 Tuyệt đối KHÔNG dùng định dạng code block hay JSON.
 Sử dụng Markdown để trình bày đẹp mắt:
 - Dùng gạch đầu dòng (-) cho các ý.
 - Dùng in đậm (**) để nhấn mạnh các từ khóa quan trọng hoặc tên nguồn dữ liệu.
 - Chia đoạn rõ ràng.]
---------------------------------------------------
`
