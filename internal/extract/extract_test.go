package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFromPDFBytes_NotAPDF(t *testing.T) {
	_, err := TextFromPDFBytes([]byte("this is plain text, not a pdf"))
	assert.Error(t, err)
}

func TestTextFromPDF_MissingFile(t *testing.T) {
	_, err := TextFromPDF("does-not-exist.pdf")
	assert.ErrorContains(t, err, "failed to read pdf file")
}
