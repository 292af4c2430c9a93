package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"historial-clinico-core/internal/modules/pacientes/dto"
)

func requestValido() *dto.RegistrarPacienteRequest {
	return &dto.RegistrarPacienteRequest{
		Nombre:          "Ana Quispe",
		DNI:             "12345678",
		FechaNacimiento: "1990-04-12",
		Sexo:            SexoFemenino,
	}
}

func TestValidarRegistro_CamposRequeridos(t *testing.T) {
	casos := []struct {
		nombre string
		mutar  func(*dto.RegistrarPacienteRequest)
		code   string
	}{
		{"sin nombre", func(r *dto.RegistrarPacienteRequest) { r.Nombre = "  " }, "CAMPO_REQUERIDO"},
		{"sin dni", func(r *dto.RegistrarPacienteRequest) { r.DNI = "" }, "CAMPO_REQUERIDO"},
		{"dni corto", func(r *dto.RegistrarPacienteRequest) { r.DNI = "1234567" }, "DNI_INVALIDO"},
		{"dni largo", func(r *dto.RegistrarPacienteRequest) { r.DNI = "123456789" }, "DNI_INVALIDO"},
		{"sin fecha", func(r *dto.RegistrarPacienteRequest) { r.FechaNacimiento = "" }, "CAMPO_REQUERIDO"},
		{"sexo inválido", func(r *dto.RegistrarPacienteRequest) { r.Sexo = "Otro" }, "SEXO_INVALIDO"},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			req := requestValido()
			caso.mutar(req)

			err := validarRegistro(req)

			require.Error(t, err)
			valErr, ok := err.(*dto.ValidationError)
			require.True(t, ok)
			assert.Equal(t, caso.code, valErr.Code)
		})
	}
}

func TestValidarRegistro_Valido(t *testing.T) {
	assert.NoError(t, validarRegistro(requestValido()))

	masculino := requestValido()
	masculino.Sexo = SexoMasculino
	assert.NoError(t, validarRegistro(masculino))
}

func TestNormalizarCamposGineco_Masculino(t *testing.T) {
	menarca := "12 años"
	embarazos := "2"

	req := requestValido()
	req.Sexo = SexoMasculino
	req.Menarca = &menarca
	req.RitmoMenstrual = &menarca
	req.UsoAnticonceptivos = &menarca
	req.NumeroEmbarazos = &embarazos

	normalizarCamposGineco(req)

	assert.Nil(t, req.Menarca)
	assert.Nil(t, req.RitmoMenstrual)
	assert.Nil(t, req.UsoAnticonceptivos)
	assert.Nil(t, req.NumeroEmbarazos)
}

func TestNormalizarCamposGineco_Femenino(t *testing.T) {
	menarca := "12 años"
	embarazos := "2"

	req := requestValido()
	req.Menarca = &menarca
	req.NumeroEmbarazos = &embarazos

	normalizarCamposGineco(req)

	require.NotNil(t, req.Menarca)
	assert.Equal(t, "12 años", *req.Menarca)
	require.NotNil(t, req.NumeroEmbarazos)
	assert.Equal(t, "2", *req.NumeroEmbarazos)
}

func TestCalcularEdad(t *testing.T) {
	ahora := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		nombre     string
		nacimiento time.Time
		esperado   int
	}{
		{"cumpleaños pasado", time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), 34},
		{"cumpleaños pendiente", time.Date(1990, 9, 1, 0, 0, 0, 0, time.UTC), 33},
		{"cumpleaños hoy", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), 34},
		{"recién nacido", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			assert.Equal(t, caso.esperado, CalcularEdad(caso.nacimiento, ahora))
		})
	}
}
