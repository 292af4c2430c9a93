package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextoConHeader(valor string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	if valor != "" {
		c.Request.Header.Set("Authorization", valor)
	}
	return c
}

func TestExtractBearerToken(t *testing.T) {
	casos := []struct {
		nombre   string
		header   string
		esperado string
	}{
		{"token válido", "Bearer abc-123", "abc-123"},
		{"bearer minúsculas", "bearer abc-123", "abc-123"},
		{"sin header", "", ""},
		{"esquema incorrecto", "Basic abc-123", ""},
		{"sin token", "Bearer", ""},
		{"con espacios", "Bearer   abc-123", "abc-123"},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			c := contextoConHeader(caso.header)
			assert.Equal(t, caso.esperado, extractBearerToken(c))
		})
	}
}

func TestSessionFromContext_SinSesion(t *testing.T) {
	c := contextoConHeader("")

	session, ok := SessionFromContext(c)
	assert.False(t, ok)
	assert.Nil(t, session)
}
