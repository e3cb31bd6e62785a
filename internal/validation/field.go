package validation

import (
	"fmt"
	"strconv"
	"strings"

	"fireReport/internal/domain"
	"fireReport/pkg/codes"
	"fireReport/pkg/e"
)

// Field names accepted by CheckField.
const (
	FieldIDCode            = "documento"
	FieldAge               = "edad"
	FieldFireUnitCode      = "codigoBomberos"
	FieldPoliceUnitCode    = "codigoCarabineros"
	FieldAmbulanceUnitCode = "codigoAmbulancia"
	FieldPlate             = "matricula"
	FieldYear              = "anio"
	FieldVolunteerCode     = "codigoVoluntario"
	FieldRequired          = "requerido"
)

const msgRequired = "Este campo es requerido"

var plateExamples = map[codes.PlateClass]string{
	codes.PlateCar:        "BBBB99 o BB9999",
	codes.PlateMotorcycle: "BK17GJ o OT784",
}

func pass() domain.FieldCheckResponse { return domain.FieldCheckResponse{Valid: true} }

func fail(msg string) domain.FieldCheckResponse {
	return domain.FieldCheckResponse{Valid: false, Message: msg}
}

// CheckField gives the inline verdict for one value while it is being typed.
// For FieldPlate, Kind carries the vehicle type.
func (en *Engine) CheckField(req domain.FieldCheckRequest) (domain.FieldCheckResponse, error) {
	value := strings.TrimSpace(req.Value)

	switch req.Field {
	case FieldIDCode:
		return checkIDCode(value), nil
	case FieldAge:
		return checkAge(value), nil
	case FieldFireUnitCode:
		return checkFireUnitCode(value), nil
	case FieldPoliceUnitCode:
		if !codes.ValidateUnitCode(value, codes.UnitPolice) {
			return fail("Formato inválido. Ejemplo: Z-105"), nil
		}
		return pass(), nil
	case FieldAmbulanceUnitCode:
		if !codes.ValidateUnitCode(value, codes.UnitAmbulance) {
			return fail("Formato inválido. Ejemplo: SAMU-6"), nil
		}
		return pass(), nil
	case FieldPlate:
		return checkPlate(value, domain.VehicleType(req.Kind)), nil
	case FieldYear:
		return en.checkYear(value), nil
	case FieldVolunteerCode:
		if value == "" {
			return fail(msgRequired), nil
		}
		if !codes.ValidateVolunteerCode(value) {
			return fail("El código debe contener solo números"), nil
		}
		return pass(), nil
	case FieldRequired:
		if value == "" {
			return fail(msgRequired), nil
		}
		return pass(), nil
	}
	return domain.FieldCheckResponse{}, e.Wrap(fmt.Sprintf("validation.CheckField %q", req.Field), e.ErrInvalidInput)
}

// checkIDCode accepts an empty value; the document check reports it later.
func checkIDCode(value string) domain.FieldCheckResponse {
	if value == "" {
		return pass()
	}
	number, check, found := strings.Cut(value, "-")
	if !found || len(check) != 1 || len(number) < 7 || len(number) > 8 || codes.ComputeCheckDigit(number) == "" {
		return fail("Formato inválido. Use: 12345678-9")
	}
	if !codes.ValidateIDCode(value) {
		return fail("RUT inválido")
	}
	return pass()
}

func checkAge(value string) domain.FieldCheckResponse {
	age, err := strconv.Atoi(value)
	if err != nil {
		return fail("Ingrese un número válido")
	}
	if !codes.ValidateAge(age) {
		return fail(fmt.Sprintf("La edad debe estar entre %d y %d años", codes.MinAge, codes.MaxAge))
	}
	return pass()
}

func checkFireUnitCode(value string) domain.FieldCheckResponse {
	prefix, _ := codes.SplitUnitCode(value)
	switch {
	case codes.IsCompanyUnitPrefix(prefix):
		if !codes.ValidateUnitCode(value, codes.UnitFire) {
			return fail("Formato inválido. Ejemplo: B-6 o RX-6")
		}
	case codes.IsCorpsUnitPrefix(prefix):
		if !codes.ValidateUnitCode(value, codes.UnitFire) {
			return fail("Formato inválido. Ejemplo: K-1 o S-2")
		}
	default:
		return fail("Código de unidad no reconocido")
	}
	return pass()
}

// checkPlate accepts an empty plate and any plate of a type that needs none.
func checkPlate(value string, vt domain.VehicleType) domain.FieldCheckResponse {
	spec, known := vt.Spec()
	if !known || !spec.RequiresPlate || value == "" {
		return pass()
	}
	if !codes.ValidatePlate(value, spec.Plate) {
		return fail("Formato inválido. Use: " + plateExamples[spec.Plate])
	}
	return pass()
}

func (en *Engine) checkYear(value string) domain.FieldCheckResponse {
	year, err := strconv.Atoi(value)
	if err != nil {
		return fail("Ingrese un año válido")
	}
	now := en.now()
	if !codes.ValidateYear(year, now) {
		return fail(fmt.Sprintf("El año debe estar entre %d y %d", codes.MinYear, now.Year()+1))
	}
	return pass()
}
