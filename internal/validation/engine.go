// Package validation checks a whole report document before it can be
// rendered, and gives inline verdicts on single field values.
package validation

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"fireReport/internal/domain"
	"fireReport/internal/metrics"
	"fireReport/pkg/codes"
)

// GenericError replaces the message list when a check fails unexpectedly.
const GenericError = "Error en la validación del formulario"

type Rules struct {
	MinPatients        int
	MinVehicles        int
	MinFireUnits       int
	MinVolunteers      int
	MaxResponseMinutes int
}

func DefaultRules() Rules {
	return Rules{
		MinFireUnits:       1,
		MinVolunteers:      1,
		MaxResponseMinutes: 30,
	}
}

type Engine struct {
	rules  Rules
	now    func() time.Time
	logger *slog.Logger
}

func New(rules Rules, logger *slog.Logger, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{rules: rules, now: now, logger: logger}
}

func (en *Engine) Rules() Rules { return en.rules }

type collector struct {
	errs []string
}

func (c *collector) add(format string, args ...any) {
	c.errs = append(c.errs, fmt.Sprintf(format, args...))
}

// Validate runs every check in a fixed order and never returns an error:
// a panic inside a check is logged and reported as GenericError.
func (en *Engine) Validate(doc domain.Document) (res domain.ValidationResult) {
	c := &collector{errs: []string{}}

	defer func() {
		if r := recover(); r != nil {
			en.logger.Error("validation panicked", slog.Any("panic", r))
			c.errs = append(c.errs, GenericError)
			res = domain.ValidationResult{Valid: false, Errors: c.errs}
			metrics.RecordValidation(false)
		}
	}()

	en.checkRequired(doc.Incident, c)
	en.checkCommand(doc.Incident, c)
	en.checkResponseTime(doc.Incident, c)
	en.checkLocation(doc.Incident, c)
	en.checkPatients(doc.Patients, c)
	en.checkVehicles(doc.Vehicles, c)
	en.checkUnits(doc, c)
	en.checkRoster(doc.Volunteers, c)

	res = domain.ValidationResult{Valid: len(c.errs) == 0, Errors: c.errs}
	metrics.RecordValidation(res.Valid)
	return res
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// humanize turns a camelCase key into lower-case words: "horaSalida" -> "hora salida".
func humanize(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func (en *Engine) checkRequired(inc domain.IncidentInfo, c *collector) {
	required := []struct {
		key   string
		value string
	}{
		{"fecha", inc.Date},
		{"horaSalida", inc.DepartureTime},
		{"horaLlegada", inc.ArrivalTime},
		{"tipoEmergencia", inc.IncidentType},
		{"magnitud", inc.Severity},
	}
	for _, f := range required {
		if blank(f.value) {
			c.add("El campo %s es obligatorio", humanize(f.key))
		}
	}
}

func (en *Engine) checkCommand(inc domain.IncidentInfo, c *collector) {
	obac := inc.OfficerInCharge
	if blank(obac.Name) || obac.Rank == "" {
		c.add("La información del OBAC es obligatoria")
	}
	if obac.Rank.RequiresCompany() && obac.Company == "" {
		c.add("Debe especificar la compañía del OBAC")
	}

	mando := inc.CompanyCommand
	if blank(mando.Name) || mando.Rank == "" {
		c.add("La información del Mando de Compañía es obligatoria")
	}
}

// checkResponseTime treats an arrival earlier than the departure as the next day.
// Unparseable dates or times skip the check.
func (en *Engine) checkResponseTime(inc domain.IncidentInfo, c *collector) {
	if blank(inc.Date) || blank(inc.DepartureTime) || blank(inc.ArrivalTime) {
		return
	}

	departure, err := time.Parse("2006-01-02 15:04", inc.Date+" "+inc.DepartureTime)
	if err != nil {
		return
	}
	arrival, err := time.Parse("2006-01-02 15:04", inc.Date+" "+inc.ArrivalTime)
	if err != nil {
		return
	}
	if arrival.Before(departure) {
		arrival = arrival.AddDate(0, 0, 1)
	}

	if arrival.Sub(departure) > time.Duration(en.rules.MaxResponseMinutes)*time.Minute {
		c.add("El tiempo de respuesta excede el máximo permitido (%d minutos)", en.rules.MaxResponseMinutes)
	}
}

func (en *Engine) checkLocation(inc domain.IncidentInfo, c *collector) {
	if blank(inc.Address) {
		c.add("La dirección es obligatoria")
	}
	if inc.Coordinates == nil || !inc.Coordinates.Valid() {
		c.add("Debe seleccionar la ubicación en el mapa")
	}
}

func (en *Engine) checkPatients(patients []domain.Patient, c *collector) {
	if len(patients) < en.rules.MinPatients {
		c.add("Se requiere al menos %d paciente(s)", en.rules.MinPatients)
		return
	}

	for i, p := range patients {
		n := i + 1
		if !codes.ValidateIDCode(p.IDCode) {
			c.add("Paciente %d: RUT inválido", n)
		}
		if blank(p.Name) {
			c.add("Paciente %d: Falta nombre", n)
		}
		if p.Age == nil || !codes.ValidateAge(*p.Age) {
			c.add("Paciente %d: Edad inválida", n)
		}
		if p.Gender == "" {
			c.add("Paciente %d: Falta género", n)
		}
		for _, name := range domain.ConditionNames {
			cond, ok := p.Conditions[name]
			if ok && cond.Present && blank(cond.Detail) {
				c.add("Paciente %d: Falta detalle de %s", n, name)
			}
		}
	}
}

func (en *Engine) checkVehicles(vehicles []domain.Vehicle, c *collector) {
	if len(vehicles) < en.rules.MinVehicles {
		c.add("Se requiere al menos %d vehículo(s)", en.rules.MinVehicles)
		return
	}

	year := en.now()
	for i, v := range vehicles {
		n := i + 1
		spec, ok := v.Type.Spec()
		if !ok {
			c.add("Vehículo %d: Falta tipo de vehículo", n)
			continue
		}

		if spec.RequiresPlate && !codes.ValidatePlate(v.Plate, spec.Plate) {
			c.add("Vehículo %d: Matrícula inválida", n)
		}
		if blank(v.Make) {
			c.add("Vehículo %d: Falta marca", n)
		}
		if blank(v.Model) {
			c.add("Vehículo %d: Falta modelo", n)
		}
		if !codes.ValidateYear(v.Year, year) {
			c.add("Vehículo %d: Año inválido", n)
		}
	}
}

func (en *Engine) checkUnits(doc domain.Document, c *collector) {
	if len(doc.FireUnits) < en.rules.MinFireUnits {
		c.add("Se requiere al menos %d unidad(es) de bomberos", en.rules.MinFireUnits)
	}
	for i, u := range doc.FireUnits {
		if !codes.ValidateUnitCode(u.Code, codes.UnitFire) {
			c.add("Unidad de bomberos %d: Código inválido", i+1)
		}
	}

	for i, u := range doc.PoliceUnits {
		if !codes.ValidateUnitCode(strings.TrimSpace(u.Code), codes.UnitPolice) {
			c.add("Unidad de carabineros %d: Código inválido", i+1)
		}
		if blank(u.Station) {
			c.add("Unidad de carabineros %d: Falta comisaría", i+1)
		}
	}

	for i, u := range doc.AmbulanceUnits {
		if !codes.ValidateUnitCode(strings.TrimSpace(u.Code), codes.UnitAmbulance) {
			c.add("Unidad de ambulancia %d: Código inválido", i+1)
		}
		if blank(u.Operator) || blank(u.OperatorRank) || blank(u.Base) {
			c.add("Unidad de ambulancia %d: Información incompleta", i+1)
		}
	}
}

func (en *Engine) checkRoster(volunteers []domain.Volunteer, c *collector) {
	if len(volunteers) < en.rules.MinVolunteers {
		c.add("Se requiere al menos %d voluntario(s) en la lista de asistencia", en.rules.MinVolunteers)
		return
	}

	for i, v := range volunteers {
		n := i + 1
		if !codes.ValidateVolunteerCode(strings.TrimSpace(v.Code)) {
			c.add("Voluntario %d: Código inválido", n)
		}
		if blank(v.Name) {
			c.add("Voluntario %d: Falta nombre", n)
		}
		if v.Rank == "" {
			c.add("Voluntario %d: Falta cargo", n)
		}
	}
}
