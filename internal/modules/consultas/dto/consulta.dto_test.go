package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponerPresion(t *testing.T) {
	sis := "120"
	dia := "80"
	vacio := "  "

	t.Run("ambos presentes", func(t *testing.T) {
		presion := ComponerPresion(&sis, &dia)
		require.NotNil(t, presion)
		assert.Equal(t, "120/80", *presion)
	})

	t.Run("falta sistólica", func(t *testing.T) {
		assert.Nil(t, ComponerPresion(nil, &dia))
	})

	t.Run("falta diastólica", func(t *testing.T) {
		assert.Nil(t, ComponerPresion(&sis, nil))
	})

	t.Run("valor en blanco", func(t *testing.T) {
		assert.Nil(t, ComponerPresion(&sis, &vacio))
		assert.Nil(t, ComponerPresion(&vacio, &dia))
	})

	t.Run("recorta espacios", func(t *testing.T) {
		conEspacios := " 120 "
		presion := ComponerPresion(&conEspacios, &dia)
		require.NotNil(t, presion)
		assert.Equal(t, "120/80", *presion)
	})
}
