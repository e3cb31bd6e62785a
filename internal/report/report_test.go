package report

import (
	"bytes"
	"slices"
	"testing"

	"fireReport/internal/domain"
)

func TestFormatCondition(t *testing.T) {
	cases := []struct {
		in   domain.Condition
		want string
	}{
		{domain.Condition{}, "NO"},
		{domain.Condition{Present: false, Detail: "brazo"}, "NO"},
		{domain.Condition{Present: true}, "SÍ"},
		{domain.Condition{Present: true, Detail: "brazo izquierdo"}, "SÍ - brazo izquierdo"},
	}
	for _, c := range cases {
		if got := FormatCondition(c.in); got != c.want {
			t.Errorf("FormatCondition(%+v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCoordinates(t *testing.T) {
	if got := FormatCoordinates(nil); got != Placeholder {
		t.Fatalf("expected placeholder, got %q", got)
	}
	got := FormatCoordinates(&domain.LatLng{Lat: -34.9828, Lng: -71.2394})
	if got != "-34.982800, -71.239400" {
		t.Fatalf("unexpected coordinates %q", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	cases := []struct {
		date, clock, want string
	}{
		{"2024-03-01", "08:05", "01/03/2024 08:05"},
		{"2024-12-31", "23:59", "31/12/2024 23:59"},
		{"", "08:05", Placeholder},
		{"2024-03-01", "", Placeholder},
		{"01-03-2024", "08:05", Placeholder},
	}
	for _, c := range cases {
		if got := FormatDateTime(c.date, c.clock); got != c.want {
			t.Errorf("FormatDateTime(%q, %q) = %q, want %q", c.date, c.clock, got, c.want)
		}
	}
}

func TestFormatCommand(t *testing.T) {
	cases := []struct {
		in   domain.Command
		want string
	}{
		{domain.Command{}, Placeholder},
		{domain.Command{Name: "Pedro"}, Placeholder},
		{domain.Command{Name: "Pedro", Rank: domain.RankCommander1, Company: "3"}, "Pedro - Comandante 1°"},
		{domain.Command{Name: "Pedro", Rank: domain.RankCaptain, Company: "6"}, "Pedro - Capitán - Sexta"},
		{domain.Command{Name: "Pedro", Rank: domain.RankLieutenant2}, "Pedro - Teniente 2°"},
	}
	for _, c := range cases {
		if got := FormatCommand(c.in); got != c.want {
			t.Errorf("FormatCommand(%+v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatIDCode(t *testing.T) {
	if got := FormatIDCode("12345678-5"); got != "12.345.678-5" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatIDCode("1234"); got != "1234" {
		t.Fatalf("invalid codes are printed as typed, got %q", got)
	}
	if got := FormatIDCode(""); got != Placeholder {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestCompose_EmptyListsUseNoRecordsRow(t *testing.T) {
	rep := Compose(domain.NewDocument())

	if rep.Title != Title || rep.Organization != Organization {
		t.Fatalf("unexpected header %q / %q", rep.Title, rep.Organization)
	}
	if len(rep.Tables) != 9 {
		t.Fatalf("expected 9 tables, got %d", len(rep.Tables))
	}
	for _, tbl := range rep.Tables[3:] {
		if len(tbl.Header) != 0 || len(tbl.Rows) != 1 || tbl.Rows[0][0] != NoRecords {
			t.Fatalf("table %q: expected one %q row, got %+v", tbl.Title, NoRecords, tbl)
		}
		if len(tbl.Widths) != 1 || tbl.Widths[0] != 180 {
			t.Fatalf("table %q: expected full width, got %v", tbl.Title, tbl.Widths)
		}
	}
}

func TestCompose_Patients(t *testing.T) {
	doc := domain.NewDocument()
	age := 30
	doc.Patients = []domain.Patient{{
		IDCode: "12345678-5",
		Name:   "Ana",
		Age:    &age,
		Gender: domain.GenderFemale,
		Conditions: map[domain.ConditionName]domain.Condition{
			domain.ConditionBleeding: {Present: true, Detail: "brazo"},
			domain.ConditionTrauma:   {Present: true},
		},
	}}

	tbl := Compose(doc).Tables[3]
	wantHeader := []string{"RUT", "Nombre", "Edad", "Género", "Sangramiento", "Dolor", "Lesión cervical", "Traumatismo"}
	if !slices.Equal(tbl.Header, wantHeader) {
		t.Fatalf("unexpected header %q", tbl.Header)
	}
	wantRow := []string{"12.345.678-5", "Ana", "30", "Femenino", "SÍ - brazo", "NO", "NO", "SÍ"}
	if !slices.Equal(tbl.Rows[0], wantRow) {
		t.Fatalf("unexpected row %q", tbl.Rows[0])
	}

	var total float64
	for _, w := range tbl.Widths {
		total += w
	}
	if total != 180 || len(tbl.Widths) != len(wantHeader) {
		t.Fatalf("widths must span the content width, got %v", tbl.Widths)
	}
	if got := tbl.Grid(); len(got) != 2 || !slices.Equal(got[0], wantHeader) {
		t.Fatalf("grid must start with the header row")
	}
}

func TestRenderer_PageBreakIfNeeded(t *testing.T) {
	r := NewRenderer()

	if r.Cursor() != MarginTop {
		t.Fatalf("cursor must start at the top margin, got %v", r.Cursor())
	}

	free := r.pageHeight - MarginBottom - r.Cursor()
	if r.PageBreakIfNeeded(free) {
		t.Fatalf("a block that exactly fits must not break")
	}
	if r.PageCount() != 1 {
		t.Fatalf("expected one page")
	}
	if !r.PageBreakIfNeeded(free + 0.1) {
		t.Fatalf("an overflowing block must break")
	}
	if r.PageCount() != 2 || r.Cursor() != MarginTop {
		t.Fatalf("expected page 2 with cursor at top, got pages=%d cursor=%v", r.PageCount(), r.Cursor())
	}
}

func TestRenderer_RenderHeaderAdvancesCursor(t *testing.T) {
	r := NewRenderer()
	r.RenderHeader()
	if r.Cursor() != MarginTop+25 {
		t.Fatalf("expected cursor %v, got %v", MarginTop+25, r.Cursor())
	}
}

func TestRenderer_RenderTableAdvancesCursor(t *testing.T) {
	r := NewRenderer()
	start := r.Cursor()

	r.RenderTable([][]string{{"a", ""}, {"b", "c"}, {"d"}}, []float64{90, 90}, DefaultRowHeight)

	want := start + 3*DefaultRowHeight + TableGap
	if r.Cursor() != want {
		t.Fatalf("expected cursor %v, got %v", want, r.Cursor())
	}
}

func TestRenderer_TableBreaksOnceForWholeBlock(t *testing.T) {
	r := NewRenderer()

	// leave room for two rows, then draw a table of three
	r.y = r.pageHeight - MarginBottom - 2*DefaultRowHeight
	r.RenderTable([][]string{{"1"}, {"2"}, {"3"}}, []float64{180}, DefaultRowHeight)

	if r.PageCount() != 2 {
		t.Fatalf("expected the table to move to page 2, got %d pages", r.PageCount())
	}
	if want := MarginTop + 3*DefaultRowHeight + TableGap; r.Cursor() != want {
		t.Fatalf("expected cursor %v, got %v", want, r.Cursor())
	}
}

func TestRenderer_TallTableOverflowsWithoutPerRowBreaks(t *testing.T) {
	r := NewRenderer()

	rows := make([][]string, 40)
	for i := range rows {
		rows[i] = []string{"x"}
	}
	r.RenderTable(rows, []float64{180}, DefaultRowHeight)

	if r.PageCount() != 2 {
		t.Fatalf("expected exactly one break before the table, got %d pages", r.PageCount())
	}
	if r.Cursor() <= r.pageHeight-MarginBottom {
		t.Fatalf("a table taller than a page runs past the bottom margin, cursor=%v", r.Cursor())
	}
}

func TestGenerate_WritesPDF(t *testing.T) {
	doc := domain.NewDocument()
	doc.Incident.Address = "Av. España 123, Curicó"
	doc.Incident.Notes = "Se controla el fuego a las 09:10. Sin lesionados entre el personal."
	doc.FireUnits = []domain.FireUnit{{Code: "B-6"}, {Code: "RX-6"}}
	doc.Volunteers = []domain.Volunteer{{Code: "12", Name: "José Muñoz", Rank: domain.RosterCaptain}}

	var buf bytes.Buffer
	if err := Generate(doc, &buf); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestGenerate_ManyRowsAddPages(t *testing.T) {
	doc := domain.NewDocument()
	for i := 0; i < 25; i++ {
		doc.Volunteers = append(doc.Volunteers, domain.Volunteer{Code: "1", Name: "Voluntario", Rank: domain.RosterVolunteer})
	}

	r := NewRenderer()
	r.RenderReport(Compose(doc))
	if r.PageCount() < 2 {
		t.Fatalf("expected the roster to push the report onto a second page, got %d", r.PageCount())
	}

	var buf bytes.Buffer
	if err := r.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
}
