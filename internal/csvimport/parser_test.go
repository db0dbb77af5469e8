package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineQuoting(t *testing.T) {
	assert.Equal(t, []string{"A", "B,C", `D"E`}, parseLine(`"A","B,C","D""E"`))
	assert.Equal(t, []string{"plain", "", "last"}, parseLine("plain,,last"))
	assert.Equal(t, []string{"a", "b"}, parseLine("a,b"))
	assert.Equal(t, []string{""}, parseLine(""))
}

func TestParseHeadersLowerCased(t *testing.T) {
	records, err := Parse("Name,Description,PRICE\nDal,Good dal,80\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Dal", records[0]["name"])
	assert.Equal(t, "Good dal", records[0]["description"])
	assert.Equal(t, "80", records[0]["price"])
}

func TestParseMissingTrailingFields(t *testing.T) {
	records, err := Parse("name,description,price\nDal\n")
	require.NoError(t, err)
	assert.Equal(t, "Dal", records[0]["name"])
	assert.Equal(t, "", records[0]["description"])
	assert.Equal(t, "", records[0]["price"])
}

func TestParseSkipsBlankLinesAndCRLF(t *testing.T) {
	records, err := Parse("name,price\r\n\r\nDal,80\r\n\r\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "80", records[0]["price"])
}

func TestParseRequiresHeaderAndRow(t *testing.T) {
	_, err := Parse("name,price\n")
	assert.ErrorIs(t, err, ErrTooShort)
	_, err = Parse("")
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestParseEmbeddedCommaInsideQuotes(t *testing.T) {
	records, err := Parse("name,description\n\"Dal, premium\",\"says \"\"best\"\" in town\"\n")
	require.NoError(t, err)
	assert.Equal(t, "Dal, premium", records[0]["name"])
	assert.Equal(t, `says "best" in town`, records[0]["description"])
}
