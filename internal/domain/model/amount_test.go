package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount_Valid(t *testing.T) {
	a, err := ParseAmount("1500.00")
	assert.NoError(t, err)
	assert.Equal(t, "1500.00", a.String())
}

func TestParseAmount_RoundsToTwoDecimals(t *testing.T) {
	a, err := ParseAmount("10.999")
	assert.NoError(t, err)
	assert.Equal(t, "11.00", a.String())
}

func TestParseAmount_Zero(t *testing.T) {
	a, err := ParseAmount("0")
	assert.NoError(t, err)
	assert.Equal(t, "0.00", a.String())
}

func TestParseAmount_Negative(t *testing.T) {
	_, err := ParseAmount("-1.00")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestParseAmount_NotANumber(t *testing.T) {
	_, err := ParseAmount("abc")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAmount_MarshalJSON_FixedPrecision(t *testing.T) {
	a, err := ParseAmount("1500")
	assert.NoError(t, err)

	b, err := json.Marshal(a)
	assert.NoError(t, err)
	assert.Equal(t, `"1500.00"`, string(b))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var a Amount
	assert.NoError(t, json.Unmarshal([]byte(`"42.50"`), &a))
	assert.Equal(t, "42.50", a.String())

	// bare numbers are accepted too
	assert.NoError(t, json.Unmarshal([]byte(`7`), &a))
	assert.Equal(t, "7.00", a.String())

	assert.Error(t, json.Unmarshal([]byte(`"-5"`), &a))
}
