package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderState(t *testing.T) {
	tests := []struct {
		value    string
		expected OrderState
	}{
		{"PENDIENTE", OrderStatePending},
		{"EN_CURSO", OrderStateInProgress},
		{"FINALIZADO", OrderStateFinalized},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseOrderState(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseOrderState_Unknown(t *testing.T) {
	for _, value := range []string{"ENTREGADO", "pendiente", "", "Pendiente"} {
		_, err := ParseOrderState(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestOrderState_JSON(t *testing.T) {
	data, err := json.Marshal(OrderStateInProgress)
	require.NoError(t, err)
	assert.Equal(t, `"EN_CURSO"`, string(data))

	var state OrderState
	require.NoError(t, json.Unmarshal([]byte(`"FINALIZADO"`), &state))
	assert.Equal(t, OrderStateFinalized, state)

	// Legacy numeric payloads still decode
	require.NoError(t, json.Unmarshal([]byte(`1`), &state))
	assert.Equal(t, OrderStateInProgress, state)

	assert.Error(t, json.Unmarshal([]byte(`"ENTREGADO"`), &state))
}

func TestPaymentMethod_IsValid(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentMethodCash, PaymentMethodTransfer, PaymentMethodCard, PaymentMethodMercadoPago} {
		assert.True(t, m.IsValid(), "method %q", m)
	}
	assert.False(t, PaymentMethod("Cheque").IsValid())
	assert.False(t, PaymentMethod("efectivo").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}

func TestPaymentMethod_RequiresInstallments(t *testing.T) {
	assert.True(t, PaymentMethodCard.RequiresInstallments())
	assert.False(t, PaymentMethodCash.RequiresInstallments())
	assert.False(t, PaymentMethodTransfer.RequiresInstallments())
	assert.False(t, PaymentMethodMercadoPago.RequiresInstallments())
}
