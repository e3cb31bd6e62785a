package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Section names one independently replaceable part of a Document.
type Section string

const (
	SectionIncident       Section = "emergencia"
	SectionPatients       Section = "pacientes"
	SectionVehicles       Section = "vehiculos"
	SectionFireUnits      Section = "unidadesBomberos"
	SectionPoliceUnits    Section = "unidadesCarabineros"
	SectionAmbulanceUnits Section = "unidadesAmbulancia"
	SectionVolunteers     Section = "voluntarios"

	// SectionAll is the wildcard subscription channel.
	SectionAll Section = "*"
	// SectionStep carries form step changes.
	SectionStep Section = "step"
)

// Sections lists every document section in document order.
var Sections = []Section{
	SectionIncident,
	SectionPatients,
	SectionVehicles,
	SectionFireUnits,
	SectionPoliceUnits,
	SectionAmbulanceUnits,
	SectionVolunteers,
}

func (s Section) Valid() bool {
	for _, v := range Sections {
		if v == s {
			return true
		}
	}
	return false
}

// IsList reports whether the section holds a list of keyed entities.
func (s Section) IsList() bool {
	return s.Valid() && s != SectionIncident
}

// Document is the whole report being filled in.
type Document struct {
	Incident       IncidentInfo    `json:"emergencia"`
	Patients       []Patient       `json:"pacientes"`
	Vehicles       []Vehicle       `json:"vehiculos"`
	FireUnits      []FireUnit      `json:"unidadesBomberos"`
	PoliceUnits    []PoliceUnit    `json:"unidadesCarabineros"`
	AmbulanceUnits []AmbulanceUnit `json:"unidadesAmbulancia"`
	Volunteers     []Volunteer     `json:"voluntarios"`
}

// NewDocument returns the empty document.
func NewDocument() Document {
	return Document{
		Incident: IncidentInfo{
			CompanyCommand: Command{Company: CompanySixth},
		},
		Patients:       []Patient{},
		Vehicles:       []Vehicle{},
		FireUnits:      []FireUnit{},
		PoliceUnits:    []PoliceUnit{},
		AmbulanceUnits: []AmbulanceUnit{},
		Volunteers:     []Volunteer{},
	}
}

// Normalize restores invariants that do not depend on user input: nil lists
// become empty and the company command always belongs to the sixth company.
func (d *Document) Normalize() {
	d.Incident.CompanyCommand.Company = CompanySixth
	if d.Patients == nil {
		d.Patients = []Patient{}
	}
	if d.Vehicles == nil {
		d.Vehicles = []Vehicle{}
	}
	if d.FireUnits == nil {
		d.FireUnits = []FireUnit{}
	}
	if d.PoliceUnits == nil {
		d.PoliceUnits = []PoliceUnit{}
	}
	if d.AmbulanceUnits == nil {
		d.AmbulanceUnits = []AmbulanceUnit{}
	}
	if d.Volunteers == nil {
		d.Volunteers = []Volunteer{}
	}
	for i := range d.Vehicles {
		d.Vehicles[i].NormalizePlate()
	}
}

// Section returns the value held by s, or nil for an unknown section.
func (d *Document) Section(s Section) any {
	switch s {
	case SectionIncident:
		return d.Incident
	case SectionPatients:
		return d.Patients
	case SectionVehicles:
		return d.Vehicles
	case SectionFireUnits:
		return d.FireUnits
	case SectionPoliceUnits:
		return d.PoliceUnits
	case SectionAmbulanceUnits:
		return d.AmbulanceUnits
	case SectionVolunteers:
		return d.Volunteers
	case SectionAll:
		return *d
	}
	return nil
}

// Command identifies an officer in a command role.
type Command struct {
	Name    string  `json:"nombre"`
	Rank    Rank    `json:"cargo"`
	Company Company `json:"compania"`
}

// IncidentInfo is the general information block of the report.
type IncidentInfo struct {
	OfficerInCharge Command `json:"obac"`
	CompanyCommand  Command `json:"mandoCompania"`
	Date            string  `json:"fecha"`
	DepartureTime   string  `json:"horaSalida"`
	ArrivalTime     string  `json:"horaLlegada"`
	Address         string  `json:"direccion"`
	Coordinates     *LatLng `json:"coordenadas"`
	IncidentType    string  `json:"tipoEmergencia"`
	Severity        string  `json:"magnitud"`
	Origin          string  `json:"puntoOrigen"`
	Notes           string  `json:"observaciones"`
}

// LatLng is a WGS84 coordinate pair encoded as [lat, lng].
type LatLng struct {
	Lat float64
	Lng float64
}

func (p LatLng) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lat, p.Lng})
}

func (p *LatLng) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinates need exactly 2 values, got %d", len(pair))
	}
	p.Lat, p.Lng = pair[0], pair[1]
	return nil
}

// Valid reports whether the pair lies within WGS84 bounds.
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Keyed carries the store-assigned identity of a list entity.
type Keyed struct {
	ID uuid.UUID `json:"id"`
}

func (k Keyed) Key() uuid.UUID { return k.ID }

// EnsureKey assigns a fresh id when none is set and returns the id.
func (k *Keyed) EnsureKey() uuid.UUID {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return k.ID
}

// Condition records whether a patient presents a condition and where.
type Condition struct {
	Present bool   `json:"presenta"`
	Detail  string `json:"detalle"`
}

type Patient struct {
	Keyed
	IDCode     string                      `json:"documento"`
	Name       string                      `json:"nombre"`
	Age        *int                        `json:"edad"`
	Gender     Gender                      `json:"genero"`
	BloodType  string                      `json:"tipoSangre,omitempty"`
	Conditions map[ConditionName]Condition `json:"condiciones"`
}

type Vehicle struct {
	Keyed
	Type  VehicleType `json:"tipo"`
	Plate string      `json:"matricula"`
	Make  string      `json:"marca"`
	Model string      `json:"modelo"`
	Year  int         `json:"anio"`
}

// NormalizePlate forces the no-plate sentinel on types that carry no plate.
func (v *Vehicle) NormalizePlate() {
	if spec, ok := v.Type.Spec(); ok && !spec.RequiresPlate {
		v.Plate = NoPlate
	}
}

type FireUnit struct {
	Keyed
	Code string `json:"codigo"`
}

type PoliceUnit struct {
	Keyed
	Code    string `json:"codigo"`
	Station string `json:"comisaria"`
}

type AmbulanceUnit struct {
	Keyed
	Code         string `json:"codigo"`
	Operator     string `json:"encargado"`
	OperatorRank string `json:"cargo"`
	Base         string `json:"base"`
}

type Volunteer struct {
	Keyed
	Code string     `json:"codigo"`
	Name string     `json:"nombre"`
	Rank RosterRank `json:"cargo"`
}

// FormState is the metadata persisted next to the document.
type FormState struct {
	CurrentStep Step       `json:"currentStep"`
	IsDirty     bool       `json:"isDirty"`
	LastUpdate  *time.Time `json:"lastUpdate"`
}

func NewFormState() FormState {
	return FormState{CurrentStep: StepIncident}
}
