package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/readmekit/projectinfo/entity"
	"github.com/readmekit/projectinfo/errors"
	"github.com/readmekit/projectinfo/ui"
	"github.com/spf13/afero"
)

// GenerateReport runs the three collectors in order, writes the report and
// prints the summary. Only manifest read errors, scan errors and write errors
// are returned; everything else is downgraded to a warning.
func (c *Controller) GenerateReport(ctx context.Context, req *entity.ReportRequest) (*entity.ProjectReport, error) {
	report, err := c.CollectReport(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.SaveReport(req.Fs, req.Config, report); err != nil {
		return nil, err
	}
	return report, nil
}

// CollectReport builds the report without touching the output file.
func (c *Controller) CollectReport(ctx context.Context, req *entity.ReportRequest) (*entity.ProjectReport, error) {
	cfg := req.Config

	report := &entity.ProjectReport{
		GitInfo: c.CollectGitInfo(ctx, req.Git, cfg.Root),
	}

	deps, err := c.CollectDependencies(req.Fs, cfg.Root)
	if err != nil {
		return nil, err
	}
	report.Dependencies = deps

	structure, err := c.ScanDirectory(req.Fs, cfg)
	if err != nil {
		return nil, err
	}
	report.Structure = structure

	return report, nil
}

// SaveReport writes the report and, once it is on disk, prints the summary.
func (c *Controller) SaveReport(fs afero.Fs, cfg entity.ReportConfig, report *entity.ProjectReport) error {
	if err := c.WriteReport(fs, OutputPath(cfg), report); err != nil {
		return err
	}
	c.PrintSummary(report, cfg.Output)
	return nil
}

// OutputPath resolves the output file against the root unless it is absolute.
func OutputPath(cfg entity.ReportConfig) string {
	if filepath.IsAbs(cfg.Output) {
		return cfg.Output
	}
	return filepath.Join(cfg.Root, cfg.Output)
}

// EncodeReport renders the report with two-space indentation. Non-ASCII text
// and HTML characters are written as-is.
func EncodeReport(report *entity.ProjectReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteReport overwrites path unconditionally.
func (c *Controller) WriteReport(fs afero.Fs, path string, report *entity.ProjectReport) error {
	data, err := EncodeReport(report)
	if err != nil {
		return fmt.Errorf("%w %v", errors.OutputWriteFailed, err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("%w %v", errors.OutputWriteFailed, err)
	}
	return nil
}

// PrintSummary deliberately has no doc-file count.
func (c *Controller) PrintSummary(report *entity.ProjectReport, output string) {
	c.console.Printf("\nProject information has been collected and saved to %s\n", c.console.Bold(fmt.Sprintf("'%s'", output)))
	c.console.Println("\nPlease provide this file along with any additional context when requesting the README generation.")
	c.console.Println("\nSummary of collected information:")
	c.console.Printf("%s", ui.UnorderedList([]string{
		fmt.Sprintf("Found %d Python dependencies", len(report.Dependencies.Python)),
		fmt.Sprintf("Found %d Node.js dependencies", len(report.Dependencies.Node)),
		fmt.Sprintf("Scanned %d directories", len(report.Structure.Directories)),
		fmt.Sprintf("Identified %d key files", len(report.Structure.KeyFiles)),
		fmt.Sprintf("Found %d test files", len(report.Structure.TestFiles)),
	}))
}
