package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := MustParseMoney("1499.50")
	b := NewMoney(500)

	assert.Equal(t, "1999.50", a.Add(b).String())
	assert.Equal(t, "999.50", a.Sub(b).String())
	assert.Equal(t, "4498.50", a.Times(3).String())
	assert.Equal(t, "499.83", a.DivideBy(3).String())
	assert.True(t, a.DivideBy(0).IsZero())

	assert.True(t, b.LessThan(a))
	assert.True(t, a.GreaterThan(b))
	assert.True(t, NewMoney(10).Equals(MustParseMoney("10.00")))
	assert.True(t, b.Sub(a).IsNegative())
	assert.True(t, Zero().IsZero())
}

func TestMoney_Rupees(t *testing.T) {
	assert.Equal(t, "₹899", NewMoney(899).Rupees())
	assert.Equal(t, "₹60,498", NewMoney(60498).Rupees())
	assert.Equal(t, "₹12,34,567.50", MustParseMoney("1234567.5").Rupees())
	assert.Equal(t, "-₹1,499", NewMoney(-1499).Rupees())
	assert.Equal(t, "₹0", Zero().Rupees())
}

func TestParseMoney_Invalid(t *testing.T) {
	_, err := ParseMoney("12,50")
	assert.Error(t, err)
}

func TestMoney_JSON(t *testing.T) {
	t.Run("marshals as a bare number", func(t *testing.T) {
		out, err := json.Marshal(struct {
			Price Money `json:"price"`
		}{Price: MustParseMoney("58999.5")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"price":58999.5}`, string(out))
	})

	t.Run("accepts numbers, strings and null", func(t *testing.T) {
		var v struct {
			A Money `json:"a"`
			B Money `json:"b"`
			C Money `json:"c"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a":12.25,"b":"7.5","c":null}`), &v))
		assert.Equal(t, "12.25", v.A.String())
		assert.Equal(t, "7.50", v.B.String())
		assert.True(t, v.C.IsZero())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var m Money
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
	})
}
