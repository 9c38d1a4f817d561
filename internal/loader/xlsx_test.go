package loader

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeXLSXFixture assembles a minimal workbook with inline and shared
// strings, good enough to exercise the sheet selection and cell decoding
// paths.
func writeXLSXFixture(t *testing.T) string {
	t.Helper()

	workbook := `<?xml version="1.0"?>
<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="Data" sheetId="1" r:id="rId1"/>
    <sheet name="Other" sheetId="2" r:id="rId2"/>
  </sheets>
</workbook>`
	rels := `<?xml version="1.0"?>
<Relationships>
  <Relationship Id="rId1" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId2" Target="worksheets/sheet2.xml"/>
</Relationships>`
	sharedStrings := `<?xml version="1.0"?>
<sst><si><t>amount</t></si><si><t>city</t></si><si><t>Oslo</t></si><si><t>Bergen</t></si></sst>`
	sheet1 := `<?xml version="1.0"?>
<worksheet>
  <sheetData>
    <row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c></row>
    <row r="2"><c r="A2"><v>10.5</v></c><c r="B2" t="s"><v>2</v></c></row>
    <row r="3"><c r="A3"><v>11</v></c><c r="B3" t="s"><v>3</v></c></row>
    <row r="4"><c r="B4" t="s"><v>2</v></c></row>
  </sheetData>
</worksheet>`
	sheet2 := `<?xml version="1.0"?>
<worksheet>
  <sheetData>
    <row r="1"><c r="A1" t="inlineStr"><is><t>only</t></is></c></row>
    <row r="2"><c r="A2"><v>1</v></c></row>
  </sheetData>
</worksheet>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := map[string]string{
		"xl/workbook.xml":            workbook,
		"xl/_rels/workbook.xml.rels": rels,
		"xl/sharedStrings.xml":       sharedStrings,
		"xl/worksheets/sheet1.xml":   sheet1,
		"xl/worksheets/sheet2.xml":   sheet2,
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadXLSXByName(t *testing.T) {
	path := writeXLSXFixture(t)
	opt := DefaultOptions()
	opt.SheetName = "Data"
	tbl, err := LoadXLSX(path, opt)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.NumCols() != 2 || tbl.NumRows() != 3 {
		t.Fatalf("dims = %dx%d, want 3x2", tbl.NumRows(), tbl.NumCols())
	}
	if tbl.Columns[0].Name != "amount" || tbl.Columns[1].Name != "city" {
		t.Fatalf("headers = %q, %q", tbl.Columns[0].Name, tbl.Columns[1].Name)
	}
	if got := tbl.Columns[0].Values[0].Raw; got != "10.5" {
		t.Fatalf("A2 = %q, want 10.5", got)
	}
	if got := tbl.Columns[1].Values[1].Raw; got != "Bergen" {
		t.Fatalf("B3 = %q, want Bergen (shared string)", got)
	}
	// Row 4 has no A cell: must load as null to stay rectangular.
	if !tbl.Columns[0].Values[2].Null {
		t.Fatal("absent cell must load as null")
	}
	if err := tbl.Validate(); err != nil {
		t.Fatalf("loaded table must validate: %v", err)
	}
}

func TestLoadXLSXByIndex(t *testing.T) {
	path := writeXLSXFixture(t)
	opt := DefaultOptions()
	opt.SheetIndex = 2
	tbl, err := LoadXLSX(path, opt)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.NumCols() != 1 || tbl.Columns[0].Name != "only" {
		t.Fatalf("sheet 2 header = %#v", tbl.Columns)
	}
	if tbl.NumRows() != 1 || tbl.Columns[0].Values[0].Raw != "1" {
		t.Fatalf("sheet 2 data = %#v", tbl.Columns[0].Values)
	}
}

func TestLoadXLSXUnknownSheet(t *testing.T) {
	path := writeXLSXFixture(t)
	opt := DefaultOptions()
	opt.SheetName = "Missing"
	if _, err := LoadXLSX(path, opt); err == nil {
		t.Fatal("expected error for unknown sheet name")
	}
}

func TestColIndexFromRef(t *testing.T) {
	cases := map[string]int{"A1": 0, "B12": 1, "Z3": 25, "AA7": 26, "AB1": 27}
	for ref, want := range cases {
		if got := colIndexFromRef(ref); got != want {
			t.Fatalf("colIndexFromRef(%s) = %d, want %d", ref, got, want)
		}
	}
}
