package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
)

func TestOrderAcknowledger_Acknowledge(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the acknowledgment when the letter is sent", func(t *testing.T) {
		// Given
		writer := &fakeLetterWriter{}
		sender := &fakeSender{result: order.Sent}
		acknowledger := services.NewOrderAcknowledger(writer, sender)
		placed := mustPrice(t, newUnvalidatedOrder())

		// When
		ack := acknowledger.Acknowledge(ctx, placed)

		// Then
		require.NotNil(t, ack)
		assert.Equal(t, "ord1", ack.OrderID.String())
		assert.Equal(t, "jane@example.com", ack.EmailAddress.String())
		require.Len(t, sender.sent, 1)
		assert.Equal(t, order.HTMLString("<p>Order ord1</p>"), sender.sent[0].Letter)
		assert.Equal(t, "jane@example.com", sender.sent[0].EmailAddress.String())
	})

	t.Run("should return nil when the letter is not sent", func(t *testing.T) {
		writer := &fakeLetterWriter{}
		sender := &fakeSender{result: order.NotSent}
		acknowledger := services.NewOrderAcknowledger(writer, sender)

		ack := acknowledger.Acknowledge(ctx, mustPrice(t, newUnvalidatedOrder()))

		assert.Nil(t, ack)
		assert.Equal(t, 1, writer.calls)
		assert.Len(t, sender.sent, 1)
	})
}
