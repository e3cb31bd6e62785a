package validation

import (
	"errors"
	"testing"

	"fireReport/internal/domain"
	"fireReport/pkg/e"
)

func TestCheckField(t *testing.T) {
	cases := []struct {
		name  string
		req   domain.FieldCheckRequest
		valid bool
		msg   string
	}{
		{"id empty", domain.FieldCheckRequest{Field: FieldIDCode, Value: ""}, true, ""},
		{"id ok", domain.FieldCheckRequest{Field: FieldIDCode, Value: "12345678-5"}, true, ""},
		{"id lower k", domain.FieldCheckRequest{Field: FieldIDCode, Value: "10000030-k"}, true, ""},
		{"id format", domain.FieldCheckRequest{Field: FieldIDCode, Value: "12.345.678-5"}, false, "Formato inválido. Use: 12345678-9"},
		{"id checksum", domain.FieldCheckRequest{Field: FieldIDCode, Value: "12345678-4"}, false, "RUT inválido"},
		{"age text", domain.FieldCheckRequest{Field: FieldAge, Value: "treinta"}, false, "Ingrese un número válido"},
		{"age range", domain.FieldCheckRequest{Field: FieldAge, Value: "130"}, false, "La edad debe estar entre 0 y 120 años"},
		{"age ok", domain.FieldCheckRequest{Field: FieldAge, Value: "0"}, true, ""},
		{"fire company", domain.FieldCheckRequest{Field: FieldFireUnitCode, Value: "b-9"}, false, "Formato inválido. Ejemplo: B-6 o RX-6"},
		{"fire corps", domain.FieldCheckRequest{Field: FieldFireUnitCode, Value: "K-x"}, false, "Formato inválido. Ejemplo: K-1 o S-2"},
		{"fire unknown", domain.FieldCheckRequest{Field: FieldFireUnitCode, Value: "ZZ-1"}, false, "Código de unidad no reconocido"},
		{"fire ok", domain.FieldCheckRequest{Field: FieldFireUnitCode, Value: "rx-6"}, true, ""},
		{"police", domain.FieldCheckRequest{Field: FieldPoliceUnitCode, Value: "105"}, false, "Formato inválido. Ejemplo: Z-105"},
		{"police ok", domain.FieldCheckRequest{Field: FieldPoliceUnitCode, Value: " Z-105 "}, true, ""},
		{"ambulance", domain.FieldCheckRequest{Field: FieldAmbulanceUnitCode, Value: "SAMU6"}, false, "Formato inválido. Ejemplo: SAMU-6"},
		{"plate car", domain.FieldCheckRequest{Field: FieldPlate, Value: "AB12", Kind: "automovil"}, false, "Formato inválido. Use: BBBB99 o BB9999"},
		{"plate moto", domain.FieldCheckRequest{Field: FieldPlate, Value: "ABCD12", Kind: "dos_ruedas"}, false, "Formato inválido. Use: BK17GJ o OT784"},
		{"plate bicycle", domain.FieldCheckRequest{Field: FieldPlate, Value: "???", Kind: "bicicleta"}, true, ""},
		{"plate empty", domain.FieldCheckRequest{Field: FieldPlate, Value: "", Kind: "automovil"}, true, ""},
		{"year text", domain.FieldCheckRequest{Field: FieldYear, Value: "dos mil"}, false, "Ingrese un año válido"},
		{"year range", domain.FieldCheckRequest{Field: FieldYear, Value: "2030"}, false, "El año debe estar entre 1900 y 2025"},
		{"volunteer empty", domain.FieldCheckRequest{Field: FieldVolunteerCode, Value: " "}, false, "Este campo es requerido"},
		{"volunteer letters", domain.FieldCheckRequest{Field: FieldVolunteerCode, Value: "12a"}, false, "El código debe contener solo números"},
		{"required", domain.FieldCheckRequest{Field: FieldRequired, Value: ""}, false, "Este campo es requerido"},
	}

	en := testEngine()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := en.CheckField(c.req)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.Valid != c.valid || got.Message != c.msg {
				t.Fatalf("got %+v, want valid=%v msg=%q", got, c.valid, c.msg)
			}
		})
	}
}

func TestCheckField_UnknownField(t *testing.T) {
	_, err := testEngine().CheckField(domain.FieldCheckRequest{Field: "color"})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
