package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnnotation_TrimsAndDefaultsAuthor(t *testing.T) {
	a, err := NewAnnotation(1, "  Técnico acionado  ", "")
	require.NoError(t, err)

	assert.Equal(t, "Técnico acionado", a.Text())
	assert.Equal(t, AnonymousAuthor, a.Author())
	assert.False(t, a.IsSystem())
	assert.False(t, a.CreatedAt().IsZero())
}

func TestNewAnnotation_EmptyTextRejected(t *testing.T) {
	a, err := NewAnnotation(1, "   ", "OPERADOR")
	require.Error(t, err)
	assert.Nil(t, a)
}

func TestNewSystemAnnotation(t *testing.T) {
	a, err := NewSystemAnnotation(1, "Arquivo anexado: laudo.pdf (por OPERADOR)")
	require.NoError(t, err)

	assert.Equal(t, SystemAuthor, a.Author())
	assert.True(t, a.IsSystem())
}

func TestAnnotation_SetIDOnlyOnce(t *testing.T) {
	a, err := NewAnnotation(1, "texto", "")
	require.NoError(t, err)

	require.NoError(t, a.SetID(10))
	assert.Error(t, a.SetID(11))

	b, err := NewAnnotation(1, "outro", "")
	require.NoError(t, err)
	assert.Error(t, b.SetID(0))
}

func TestNewAttachment_SizeCap(t *testing.T) {
	a, err := NewAttachment(1, "f-1.bin", "grande.bin", MaxAttachmentSize, "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, int64(MaxAttachmentSize), a.Size())

	a, err = NewAttachment(1, "f-2.bin", "grande-demais.bin", MaxAttachmentSize+1, "application/octet-stream")
	require.Error(t, err)
	assert.Nil(t, a)
}

func TestNewAttachment_RequiredFields(t *testing.T) {
	_, err := NewAttachment(0, "f.bin", "o.bin", 1, "")
	assert.Error(t, err)

	_, err = NewAttachment(1, "", "o.bin", 1, "")
	assert.Error(t, err)

	_, err = NewAttachment(1, "f.bin", "", 1, "")
	assert.Error(t, err)
}
