package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"anna", "Anna"},
		{"ANNA", "Anna"},
		{"  anna   karen  ", "Anna Karen"},
		{"anna\tkaren", "Anna Karen"},
		{"o'neill", "O'Neill"},
		{"anna-marie", "Anna-Marie"},
		{"aNNa-mArIe o'BRIEN", "Anna-Marie O'Brien"},
		{"", ""},
		{"   ", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeName(c.raw), "raw: %q", c.raw)
	}
}

func TestNormalizeName_WhitespaceAndCaseVariantsCollapse(t *testing.T) {
	variants := []string{
		"anna karen",
		"Anna Karen",
		"ANNA KAREN",
		"  anna   karen",
		"anna karen  ",
		"\tanna\nkaren\t",
	}

	for _, v := range variants {
		assert.Equal(t, "Anna Karen", NormalizeName(v), "variant: %q", v)
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"Anna", "Anna Karen", "O'Neill", "Anna-Marie", "Ält Üser"}
	for _, name := range valid {
		assert.NoError(t, ValidateName(name), "name: %q", name)
	}

	invalid := []string{"", "Anna3", "Anna_Karen", "Anna!", "R2-D2", "@nna"}
	for _, name := range invalid {
		assert.ErrorIs(t, ValidateName(name), ErrInvalidName, "name: %q", name)
	}
}

func TestParseName(t *testing.T) {
	name, err := ParseName("  o'neill   SMITH ")
	assert.NoError(t, err)
	assert.Equal(t, "O'Neill Smith", name)

	_, err = ParseName("   ")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = ParseName("anna 42")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestParseGradeInput_Values(t *testing.T) {
	for _, raw := range []string{"0", "100", "57"} {
		in := ParseGradeInput(raw)
		assert.Equal(t, GradeInputValue, in.Kind, "raw: %q", raw)
	}

	assert.Equal(t, Grade(0), ParseGradeInput("0").Value)
	assert.Equal(t, Grade(100), ParseGradeInput("100").Value)
}

func TestParseGradeInput_Invalid(t *testing.T) {
	for _, raw := range []string{"101", "-1", "abc", "9.5", "", "1e2"} {
		in := ParseGradeInput(raw)
		assert.Equal(t, GradeInputInvalid, in.Kind, "raw: %q", raw)
	}
}

func TestParseGradeInput_Sentinel(t *testing.T) {
	for _, raw := range []string{"done", "DONE", "Done", "dOnE"} {
		in := ParseGradeInput(raw)
		assert.Equal(t, GradeInputSentinel, in.Kind, "raw: %q", raw)
	}
}
