package report

import (
	"strconv"

	"fireReport/internal/domain"
)

const (
	Title        = "PARTE DE CONCURRENCIA A EMERGENCIAS"
	Organization = "Sexta Compañía de Bomberos - Curicó"

	// NoRecords fills the single row of an empty list table.
	NoRecords = "Sin registros"
)

// Table is one titled grid of the report. Header is empty for key/value tables.
type Table struct {
	Title  string
	Header []string
	Widths []float64
	Rows   [][]string
}

// Grid returns the header row followed by the body rows.
func (t Table) Grid() [][]string {
	if len(t.Header) == 0 {
		return t.Rows
	}
	return append([][]string{t.Header}, t.Rows...)
}

type Report struct {
	Title        string
	Organization string
	Tables       []Table
	Notes        string
}

// Compose lays a document out as report tables.
func Compose(doc domain.Document) Report {
	inc := doc.Incident

	rep := Report{
		Title:        Title,
		Organization: Organization,
		Notes:        inc.Notes,
	}

	rep.Tables = append(rep.Tables,
		Table{
			Title:  "Información General",
			Widths: []float64{60, 120},
			Rows: [][]string{
				{"Salida", FormatDateTime(inc.Date, inc.DepartureTime)},
				{"Llegada", FormatDateTime(inc.Date, inc.ArrivalTime)},
				{"Tipo de emergencia", orPlaceholder(inc.IncidentType)},
				{"Magnitud", orPlaceholder(inc.Severity)},
				{"Punto de origen", orPlaceholder(inc.Origin)},
			},
		},
		Table{
			Title:  "Mando",
			Widths: []float64{60, 120},
			Rows: [][]string{
				{"OBAC", FormatCommand(inc.OfficerInCharge)},
				{"Mando de Compañía", FormatCommand(inc.CompanyCommand)},
			},
		},
		Table{
			Title:  "Ubicación",
			Widths: []float64{60, 120},
			Rows: [][]string{
				{"Dirección", orPlaceholder(inc.Address)},
				{"Coordenadas", FormatCoordinates(inc.Coordinates)},
			},
		},
		patientsTable(doc.Patients),
		vehiclesTable(doc.Vehicles),
		fireUnitsTable(doc.FireUnits),
		policeUnitsTable(doc.PoliceUnits),
		ambulanceUnitsTable(doc.AmbulanceUnits),
		rosterTable(doc.Volunteers),
	)

	return rep
}

func listTable(title string, header []string, widths []float64, rows [][]string) Table {
	if len(rows) == 0 {
		var total float64
		for _, w := range widths {
			total += w
		}
		return Table{Title: title, Widths: []float64{total}, Rows: [][]string{{NoRecords}}}
	}
	return Table{Title: title, Header: header, Widths: widths, Rows: rows}
}

func patientsTable(patients []domain.Patient) Table {
	header := []string{"RUT", "Nombre", "Edad", "Género"}
	for _, c := range domain.ConditionNames {
		header = append(header, c.Label())
	}

	rows := make([][]string, 0, len(patients))
	for _, p := range patients {
		row := []string{FormatIDCode(p.IDCode), orPlaceholder(p.Name), formatAge(p.Age), orPlaceholder(p.Gender.Label())}
		for _, c := range domain.ConditionNames {
			row = append(row, FormatCondition(p.Conditions[c]))
		}
		rows = append(rows, row)
	}
	return listTable("Pacientes", header, []float64{24, 32, 12, 20, 23, 23, 23, 23}, rows)
}

func vehiclesTable(vehicles []domain.Vehicle) Table {
	rows := make([][]string, 0, len(vehicles))
	for _, v := range vehicles {
		rows = append(rows, []string{
			orPlaceholder(v.Type.Label()),
			orPlaceholder(v.Plate),
			orPlaceholder(v.Make),
			orPlaceholder(v.Model),
			formatYear(v.Year),
		})
	}
	return listTable("Vehículos",
		[]string{"Tipo", "Matrícula", "Marca", "Modelo", "Año"},
		[]float64{55, 30, 35, 40, 20}, rows)
}

func fireUnitsTable(units []domain.FireUnit) Table {
	rows := make([][]string, 0, len(units))
	for i, u := range units {
		rows = append(rows, []string{strconv.Itoa(i + 1), orPlaceholder(u.Code)})
	}
	return listTable("Unidades de Bomberos", []string{"N°", "Código"}, []float64{20, 160}, rows)
}

func policeUnitsTable(units []domain.PoliceUnit) Table {
	rows := make([][]string, 0, len(units))
	for _, u := range units {
		rows = append(rows, []string{orPlaceholder(u.Code), orPlaceholder(u.Station)})
	}
	return listTable("Unidades de Carabineros", []string{"Código", "Comisaría"}, []float64{60, 120}, rows)
}

func ambulanceUnitsTable(units []domain.AmbulanceUnit) Table {
	rows := make([][]string, 0, len(units))
	for _, u := range units {
		rows = append(rows, []string{
			orPlaceholder(u.Code),
			orPlaceholder(u.Operator),
			orPlaceholder(u.OperatorRank),
			orPlaceholder(u.Base),
		})
	}
	return listTable("Unidades de Ambulancia",
		[]string{"Código", "Encargado", "Cargo", "Base"},
		[]float64{40, 55, 40, 45}, rows)
}

func rosterTable(volunteers []domain.Volunteer) Table {
	rows := make([][]string, 0, len(volunteers))
	for _, v := range volunteers {
		rows = append(rows, []string{orPlaceholder(v.Code), orPlaceholder(v.Name), orPlaceholder(v.Rank.Label())})
	}
	return listTable("Lista de Asistencia", []string{"Código", "Nombre", "Cargo"}, []float64{30, 100, 50}, rows)
}
