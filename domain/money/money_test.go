package money_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pizzamanager/domain/money"
)

func TestNew(t *testing.T) {
	m, err := money.New(3, 75)
	require.NoError(t, err)
	require.Equal(t, 3, m.Dollars())
	require.Equal(t, 75, m.Cents())
	require.Equal(t, 375, m.TotalCents())

	for _, tc := range []struct {
		Dollars, Cents int
	}{
		{Dollars: -1, Cents: 0},
		{Dollars: 0, Cents: -1},
		{Dollars: 0, Cents: 100},
	} {
		_, err := money.New(tc.Dollars, tc.Cents)
		require.ErrorIs(t, err, money.ErrInvalidArgument, "%d.%d", tc.Dollars, tc.Cents)
	}
}

func TestMoney_Add(t *testing.T) {
	got := money.Must(4, 50).Add(money.Must(3, 75))
	require.Equal(t, money.Must(8, 25), got)

	got = money.Must(0, 0).Add(money.Must(2, 25))
	require.Equal(t, money.Must(2, 25), got)

	got = money.Must(0, 99).Add(money.Must(0, 1))
	require.Equal(t, money.Must(1, 0), got)
}

func TestMoney_Compare(t *testing.T) {
	require.Equal(t, -1, money.Must(2, 50).Compare(money.Must(3, 0)))
	require.Equal(t, 1, money.Must(3, 1).Compare(money.Must(3, 0)))
	require.Equal(t, 0, money.Must(3, 0).Compare(money.Must(3, 0)))
}

func TestMoney_String(t *testing.T) {
	require.Equal(t, "$3.00", money.Must(3, 0).String())
	require.Equal(t, "$3.75", money.Must(3, 75).String())
	require.Equal(t, "$0.05", money.Must(0, 5).String())
	require.Equal(t, "$12.50", money.Must(12, 50).String())
}

func TestMoney_Float64(t *testing.T) {
	require.InDelta(t, 4.5, money.Must(4, 50).Float64(), 0.0001)
}

func TestMoney_Validate(t *testing.T) {
	require.NoError(t, money.Must(1, 1).Validate(context.Background()))
	require.True(t, money.Money{}.IsZero())
}
