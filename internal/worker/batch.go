package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vietcheck/vietcheck/internal/model"
)

// Checker defines the interface for running one reputation check
type Checker interface {
	CheckReputation(ctx context.Context, req model.CheckRequest) (*model.Verdict, error)
}

// CheckJob is one batch line turned into a check request
type CheckJob struct {
	Line    string
	Request model.CheckRequest
	Checker Checker
}

// Execute runs the check
func (j *CheckJob) Execute(ctx context.Context) Result {
	verdict, err := j.Checker.CheckReputation(ctx, j.Request)
	return &CheckResult{Line: j.Line, Verdict: verdict, Error: err}
}

// CheckResult is the outcome of one batch line
type CheckResult struct {
	Line    string
	Verdict *model.Verdict
	Error   error
}

// GetError returns the error from the check result
func (r *CheckResult) GetError() error {
	return r.Error
}

// BatchProcessor runs many checks concurrently
type BatchProcessor struct {
	checker     Checker
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(checker Checker, concurrency int) *BatchProcessor {
	return &BatchProcessor{checker: checker, concurrency: concurrency}
}

// ProcessFile reads subject lines from a file and checks them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*CheckResult, error) {
	lines, err := readLines(filePath)
	if err != nil {
		return nil, err
	}
	return b.ProcessLines(ctx, lines), nil
}

// ProcessLines checks the given subject lines concurrently
func (b *BatchProcessor) ProcessLines(ctx context.Context, lines []string) []*CheckResult {
	if len(lines) == 0 {
		return []*CheckResult{}
	}

	jobs := make([]Job, 0, len(lines))
	for _, line := range lines {
		req, err := ParseLine(line)
		if err != nil {
			// Surface parse failures as results so one bad line does not
			// abort the batch
			jobs = append(jobs, &failedJob{line: line, err: err})
			continue
		}
		jobs = append(jobs, &CheckJob{Line: line, Request: req, Checker: b.checker})
	}

	pool := NewPool(b.concurrency)
	results := pool.Run(ctx, jobs)

	checkResults := make([]*CheckResult, len(results))
	for i, result := range results {
		checkResults[i] = result.(*CheckResult)
	}
	return checkResults
}

type failedJob struct {
	line string
	err  error
}

func (j *failedJob) Execute(ctx context.Context) Result {
	return &CheckResult{Line: j.line, Error: j.err}
}

// ParseLine turns a "kind:value" batch line into a check request. Supported
// kinds: phone, bank (value may carry "@<bank name>"), website, facebook.
func ParseLine(line string) (model.CheckRequest, error) {
	kind, value, found := strings.Cut(line, ":")
	if !found {
		return model.CheckRequest{}, fmt.Errorf("malformed line %q (want kind:value)", line)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return model.CheckRequest{}, fmt.Errorf("empty value in line %q", line)
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "phone":
		return model.CheckRequest{PhoneNumber: value}, nil
	case "bank":
		account, bankName, _ := strings.Cut(value, "@")
		return model.CheckRequest{
			BankAccount: strings.TrimSpace(account),
			BankName:    strings.TrimSpace(bankName),
		}, nil
	case "website":
		return model.CheckRequest{WebsiteURL: value}, nil
	case "facebook":
		return model.CheckRequest{FacebookURL: value}, nil
	default:
		return model.CheckRequest{}, fmt.Errorf("unknown kind %q in line %q", kind, line)
	}
}

// readLines reads non-empty, non-comment lines, deduplicated
func readLines(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var lines []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return lines, nil
}
