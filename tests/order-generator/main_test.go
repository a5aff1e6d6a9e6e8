package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

func TestSignedNotification(t *testing.T) {
	msg, err := signedNotification(webhookSecret, "order-1")
	require.NoError(t, err)

	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "Stripe-Signature", msg.Headers[0].Key)

	event, err := webhook.ConstructEventWithOptions(msg.Value, string(msg.Headers[0].Value), webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	require.NoError(t, err)
	assert.Equal(t, stripe.EventType("checkout.session.completed"), event.Type)
	assert.Equal(t, string(msg.Key), event.ID)

	var session stripe.CheckoutSession
	require.NoError(t, json.Unmarshal(event.Data.Raw, &session))
	assert.Equal(t, "order-1", session.Metadata["orderId"])

	_, err = webhook.ConstructEventWithOptions(msg.Value, string(msg.Headers[0].Value), "whsec_other",
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	assert.Error(t, err)
}
