package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehouse-manager/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Component("stock").Info().Str("product", "Apple").Msg("stock agregado")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "stock", entry["component"])
	assert.Equal(t, "Apple", entry["product"])
	assert.Equal(t, "stock agregado", entry["message"])
}

func TestNew_RespetaElNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("sí aparece")
	assert.Contains(t, buf.String(), "sí aparece")
}

func TestNew_CamposDelProceso(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Service: "warehouse-manager", Warehouse: "norte", Out: &buf})

	log.Info().Msg("iniciando aplicación")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warehouse-manager", entry["service"])
	assert.Equal(t, "norte", entry["warehouse"])
}

func TestNew_NivelVacioEsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Out: &buf})

	log.Debug().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())
	log.Info().Msg("sí aparece")
	assert.NotZero(t, buf.Len())
}
