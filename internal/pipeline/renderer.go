package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/vietcheck/vietcheck/internal/model"
)

// Renderer writes verdicts and news lists to files and the terminal
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the verdict as indented JSON
func (r *Renderer) RenderJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderMarkdown writes a human-readable verdict report
func (r *Renderer) RenderMarkdown(verdict *model.Verdict, path string) error {
	var sb strings.Builder

	sb.WriteString("# Kết quả kiểm tra uy tín\n\n")
	if verdict.Subject != nil {
		fmt.Fprintf(&sb, "- **%s**: `%s`\n", verdict.Subject.Type.Label(), verdict.Subject.Value)
		if verdict.Subject.BankName != "" {
			fmt.Fprintf(&sb, "- **Ngân hàng**: %s\n", verdict.Subject.BankName)
		}
	} else {
		sb.WriteString("- **Đối tượng**: Ảnh chụp màn hình\n")
	}
	fmt.Fprintf(&sb, "- **Mức độ rủi ro**: %s\n", verdict.RiskLevel.Display())
	fmt.Fprintf(&sb, "- **Thời điểm kiểm tra**: %s\n\n", verdict.CheckedAt.Format("2006-01-02 15:04 UTC"))

	if verdict.Summary != "" {
		sb.WriteString("## Tóm tắt\n\n")
		sb.WriteString(verdict.Summary + "\n\n")
	}
	if verdict.Details != "" {
		sb.WriteString("## Chi tiết\n\n")
		sb.WriteString(verdict.Details + "\n\n")
	}

	if len(verdict.Sources) > 0 {
		sb.WriteString("## Nguồn tham khảo\n\n")
		for _, s := range verdict.Sources {
			fmt.Fprintf(&sb, "- [%s](%s)\n", s.Title, s.URI)
		}
		sb.WriteString("\n")
	}

	if r.includeFooter {
		sb.WriteString("---\n")
		sb.WriteString("*Kết quả mang tính tham khảo, dựa trên dữ liệu công khai. ")
		if verdict.Model != "" {
			fmt.Fprintf(&sb, "Phân tích bởi %s.*\n", verdict.Model)
		} else {
			sb.WriteString("*\n")
		}
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// RenderSummary prints a short verdict block to stdout
func (r *Renderer) RenderSummary(verdict *model.Verdict) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  Mức độ rủi ro: %s\n", verdict.RiskLevel.Display())
	fmt.Println("═══════════════════════════════════════════════════════════")
	if verdict.Summary != "" {
		fmt.Println()
		fmt.Println(verdict.Summary)
	}
	if len(verdict.Sources) > 0 {
		fmt.Println()
		fmt.Printf("Nguồn (%d):\n", len(verdict.Sources))
		for _, s := range verdict.Sources {
			fmt.Printf("  - %s\n    %s\n", s.Title, s.URI)
		}
	}
	fmt.Println()
}

// RenderNews prints the news list to stdout
func (r *Renderer) RenderNews(items []model.NewsItem) {
	if len(items) == 0 {
		fmt.Println("Không tải được tin tức. Vui lòng thử lại sau.")
		return
	}
	fmt.Println()
	for i, item := range items {
		fmt.Printf("%d. %s\n", i+1, item.Title)
		if item.Source != "" || item.PublishedDate != "" {
			fmt.Printf("   %s | %s\n", item.Source, item.PublishedDate)
		}
		if item.Summary != "" {
			fmt.Printf("   %s\n", item.Summary)
		}
		fmt.Printf("   %s\n\n", item.URL)
	}
}
