package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/dataprof-cli/internal/profile"
)

func TestProfileCommandWritesJSON(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "orders.csv")
	data := "id,amount,city\n1,10,NYC\n2,20,LA\n3,,NYC\n"
	if err := os.WriteFile(csvPath, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	outPath := filepath.Join(dir, "profile.json")

	rootCmd.SetArgs([]string{"profile", csvPath, "--format", "json", "-o", outPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("profile command: %v", err)
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var p profile.DatasetProfile
	if err := json.Unmarshal(b, &p); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if p.RowCount != 3 || p.ColumnCount != 3 {
		t.Fatalf("unexpected shape: %d rows, %d cols", p.RowCount, p.ColumnCount)
	}
	if p.Columns[1].Type != profile.NumericType {
		t.Fatalf("amount should be numeric, got %s", p.Columns[1].Type)
	}
	if p.Columns[1].MissingCount != 1 {
		t.Fatalf("expected 1 missing amount, got %d", p.Columns[1].MissingCount)
	}
}

func TestReportCommandRendersSavedProfile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "orders.csv")
	data := "id,amount\n1,10\n2,20\n"
	if err := os.WriteFile(csvPath, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	jsonPath := filepath.Join(dir, "profile.json")
	mdPath := filepath.Join(dir, "report.md")

	rootCmd.SetArgs([]string{"profile", csvPath, "--format", "json", "-o", jsonPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("profile command: %v", err)
	}
	rootCmd.SetArgs([]string{"report", jsonPath, "-o", mdPath, "--name", "orders.csv"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("report command: %v", err)
	}

	b, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	md := string(b)
	if !strings.Contains(md, "[DATA QUALITY REPORT]") {
		t.Fatalf("report missing header:\n%s", md)
	}
	if !strings.Contains(md, "orders.csv") {
		t.Fatalf("report missing dataset name:\n%s", md)
	}
}

func TestProfileCommandRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "x.csv")
	if err := os.WriteFile(csvPath, []byte("a\n1\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	rootCmd.SetArgs([]string{"profile", csvPath, "--format", "xml"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
