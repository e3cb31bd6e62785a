package domain

import (
	"fmt"

	"fireReport/pkg/codes"
)

// Rank is the command rank of a firefighter.
type Rank string

const (
	RankCommander1  Rank = "comandante1"
	RankCommander2  Rank = "comandante2"
	RankCommander3  Rank = "comandante3"
	RankCaptain     Rank = "capitan"
	RankLieutenant1 Rank = "teniente1"
	RankLieutenant2 Rank = "teniente2"
	RankLieutenant3 Rank = "teniente3"
	RankVolunteer   Rank = "voluntario"
)

var rankLabels = map[Rank]string{
	RankCommander1:  "Comandante 1°",
	RankCommander2:  "Comandante 2°",
	RankCommander3:  "Comandante 3°",
	RankCaptain:     "Capitán",
	RankLieutenant1: "Teniente 1°",
	RankLieutenant2: "Teniente 2°",
	RankLieutenant3: "Teniente 3°",
	RankVolunteer:   "Voluntario",
}

func (r Rank) Valid() bool {
	_, ok := rankLabels[r]
	return ok
}

// Label returns the display label, or the raw value for unknown ranks.
func (r Rank) Label() string {
	if l, ok := rankLabels[r]; ok {
		return l
	}
	return string(r)
}

// RequiresCompany reports whether an officer of this rank belongs to a
// specific company that must be stated.
func (r Rank) RequiresCompany() bool {
	switch r {
	case RankLieutenant1, RankLieutenant2, RankLieutenant3, RankCaptain, RankVolunteer:
		return true
	}
	return false
}

func (r *Rank) UnmarshalText(b []byte) error {
	v, err := parseEnum(b, Rank.Valid, "rank")
	*r = v
	return err
}

// RosterRank is the subset of ranks allowed on the attendance roster.
type RosterRank string

const (
	RosterCaptain     RosterRank = RosterRank(RankCaptain)
	RosterLieutenant1 RosterRank = RosterRank(RankLieutenant1)
	RosterLieutenant2 RosterRank = RosterRank(RankLieutenant2)
	RosterLieutenant3 RosterRank = RosterRank(RankLieutenant3)
	RosterVolunteer   RosterRank = RosterRank(RankVolunteer)
)

func (r RosterRank) Valid() bool {
	switch r {
	case RosterCaptain, RosterLieutenant1, RosterLieutenant2, RosterLieutenant3, RosterVolunteer:
		return true
	}
	return false
}

func (r RosterRank) Label() string { return Rank(r).Label() }

func (r *RosterRank) UnmarshalText(b []byte) error {
	v, err := parseEnum(b, RosterRank.Valid, "roster rank")
	*r = v
	return err
}

// Company is a company number "1".."8".
type Company string

// CompanySixth is the company that files the report.
const CompanySixth Company = "6"

var companyLabels = map[Company]string{
	"1": "Primera",
	"2": "Segunda",
	"3": "Tercera",
	"4": "Cuarta",
	"5": "Quinta",
	"6": "Sexta",
	"7": "Séptima",
	"8": "Octava",
}

func (c Company) Valid() bool {
	_, ok := companyLabels[c]
	return ok
}

func (c Company) Label() string {
	if l, ok := companyLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c *Company) UnmarshalText(b []byte) error {
	v, err := parseEnum(b, Company.Valid, "company")
	*c = v
	return err
}

type Gender string

const (
	GenderMale   Gender = "masculino"
	GenderFemale Gender = "femenino"
	GenderOther  Gender = "otro"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Masculino"
	case GenderFemale:
		return "Femenino"
	case GenderOther:
		return "Otro"
	}
	return string(g)
}

func (g *Gender) UnmarshalText(b []byte) error {
	v, err := parseEnum(b, Gender.Valid, "gender")
	*g = v
	return err
}

// ConditionName names a clinical condition tracked per patient.
type ConditionName string

const (
	ConditionBleeding       ConditionName = "sangramiento"
	ConditionPain           ConditionName = "dolor"
	ConditionCervicalInjury ConditionName = "lesionCervical"
	ConditionTrauma         ConditionName = "traumatismo"
)

// ConditionNames lists conditions in report order.
var ConditionNames = []ConditionName{
	ConditionBleeding,
	ConditionPain,
	ConditionCervicalInjury,
	ConditionTrauma,
}

func (c ConditionName) Valid() bool {
	switch c {
	case ConditionBleeding, ConditionPain, ConditionCervicalInjury, ConditionTrauma:
		return true
	}
	return false
}

func (c ConditionName) Label() string {
	switch c {
	case ConditionBleeding:
		return "Sangramiento"
	case ConditionPain:
		return "Dolor"
	case ConditionCervicalInjury:
		return "Lesión cervical"
	case ConditionTrauma:
		return "Traumatismo"
	}
	return string(c)
}

func (c *ConditionName) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("empty condition name")
	}
	v, err := parseEnum(b, ConditionName.Valid, "condition")
	*c = v
	return err
}

type VehicleType string

const (
	VehicleCar          VehicleType = "automovil"
	VehicleTwoWheels    VehicleType = "dos_ruedas"
	VehicleThreeWheels  VehicleType = "tres_ruedas"
	VehicleAnimalDrawn  VehicleType = "traccion_animal"
	VehiclePassenger    VehicleType = "transporte_personas"
	VehicleCargo        VehicleType = "transporte_carga"
	VehicleAgricultural VehicleType = "agricola"
	VehicleBicycle      VehicleType = "bicicleta"
)

// NoPlate is the plate sentinel for vehicle types that carry none.
const NoPlate = "-"

type VehicleSpec struct {
	Label         string
	RequiresPlate bool
	Plate         codes.PlateClass
}

var vehicleSpecs = map[VehicleType]VehicleSpec{
	VehicleCar:          {Label: "Automóvil", RequiresPlate: true, Plate: codes.PlateCar},
	VehicleTwoWheels:    {Label: "Vehículo de dos ruedas", RequiresPlate: true, Plate: codes.PlateMotorcycle},
	VehicleThreeWheels:  {Label: "Vehículo de tres ruedas", RequiresPlate: true, Plate: codes.PlateCar},
	VehicleAnimalDrawn:  {Label: "Vehículo de tracción animal", RequiresPlate: false, Plate: codes.PlateNone},
	VehiclePassenger:    {Label: "Transporte de personas", RequiresPlate: true, Plate: codes.PlateCar},
	VehicleCargo:        {Label: "Transporte de carga", RequiresPlate: true, Plate: codes.PlateCar},
	VehicleAgricultural: {Label: "Vehículo agrícola", RequiresPlate: true, Plate: codes.PlateCar},
	VehicleBicycle:      {Label: "Bicicleta", RequiresPlate: false, Plate: codes.PlateNone},
}

func (v VehicleType) Spec() (VehicleSpec, bool) {
	s, ok := vehicleSpecs[v]
	return s, ok
}

func (v VehicleType) Valid() bool {
	_, ok := vehicleSpecs[v]
	return ok
}

func (v VehicleType) Label() string {
	if s, ok := vehicleSpecs[v]; ok {
		return s.Label
	}
	return string(v)
}

func (v *VehicleType) UnmarshalText(b []byte) error {
	t, err := parseEnum(b, VehicleType.Valid, "vehicle type")
	*v = t
	return err
}

// Step is the page of the form the user is on.
type Step string

const (
	StepIncident   Step = "emergencia"
	StepAttendance Step = "asistencia"
)

func (s Step) Valid() bool {
	return s == StepIncident || s == StepAttendance
}

// parseEnum accepts the empty value and any value valid reports true for.
func parseEnum[T ~string](b []byte, valid func(T) bool, name string) (T, error) {
	v := T(b)
	if v == "" || valid(v) {
		return v, nil
	}
	return "", fmt.Errorf("unknown %s %q", name, string(b))
}
